// Package content holds the reference material printed by 101-linux: the embedded command
// catalog and the lesson providers used by the list command.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/linux101/cli/pkg/textutil"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Entry is the cheat-sheet entry of one Linux command.
type Entry struct {
	Name    string   `yaml:"name"`
	Summary string   `yaml:"summary"`
	Example string   `yaml:"example"`
	Options []Option `yaml:"options"`
}

// Option describes one commonly used option of a command.
type Option struct {
	Flag        string `yaml:"flag"`
	Description string `yaml:"description"`
}

var loadCatalog = sync.OnceValues(func() ([]Entry, error) {
	return ParseCatalog(catalogYAML)
})

// Catalog returns the embedded entries in listing order.
func Catalog() ([]Entry, error) {
	entries, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return slices.Clone(entries), nil
}

// ParseCatalog decodes a YAML catalog document. Every entry needs a unique name and a summary.
func ParseCatalog(data []byte) ([]Entry, error) {
	var doc struct {
		Commands []Entry `yaml:"commands"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(doc.Commands))
	for i, e := range doc.Commands {
		switch {
		case e.Name == "":
			return nil, fmt.Errorf("catalog entry %d: missing name", i)
		case e.Summary == "":
			return nil, fmt.Errorf("catalog entry %q: missing summary", e.Name)
		case seen[e.Name]:
			return nil, fmt.Errorf("catalog entry %q: duplicate name", e.Name)
		}
		seen[e.Name] = true
	}
	if len(doc.Commands) == 0 {
		return nil, errors.New("catalog has no commands")
	}
	return doc.Commands, nil
}

// Find returns the entry named name, ignoring case.
func Find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Search returns the entries whose name or summary contains term, ignoring case. Name matches
// come first, each group in catalog order.
func Search(entries []Entry, term string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var byName, bySummary []Entry
	for _, e := range entries {
		switch {
		case strings.Contains(strings.ToLower(e.Name), term):
			byName = append(byName, e)
		case strings.Contains(strings.ToLower(e.Summary), term):
			bySummary = append(bySummary, e)
		}
	}
	return append(byName, bySummary...)
}

// Line formats the entry for listings, e.g. "ls - List directory contents.".
func (e Entry) Line() string {
	return e.Name + " - " + e.Summary
}

// Markdown renders the entry as a markdown document.
func (e Entry) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n", e.Name, e.Summary)
	if e.Example != "" {
		fmt.Fprintf(&b, "\n## Example\n\n```sh\n%s\n```\n", e.Example)
	}
	if len(e.Options) > 0 {
		b.WriteString("\n## Common options\n\n")
		for _, o := range e.Options {
			fmt.Fprintf(&b, "- `%s` %s\n", o.Flag, o.Description)
		}
	}
	return b.String()
}

// Text renders the entry as plain text for non-terminal output.
func (e Entry) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", e.Name, e.Summary)
	if e.Example != "" {
		fmt.Fprintf(&b, "\nExample:\n%s\n", textutil.Indent(e.Example, "  "))
	}
	if len(e.Options) > 0 {
		b.WriteString("\nCommon options:\n")
		width := 0
		for _, o := range e.Options {
			width = max(width, len(o.Flag))
		}
		for _, o := range e.Options {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, o.Flag, o.Description)
		}
	}
	return b.String()
}
