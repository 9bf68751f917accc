package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Lesson is one titled entry of the listing.
type Lesson struct {
	Title string
	// Example is an optional sample invocation.
	Example string
	// Path is the markdown file the lesson was read from, empty for catalog lessons.
	Path string
}

// Provider supplies lessons in listing order.
type Provider interface {
	Lessons() ([]Lesson, error)
}

// CatalogProvider lists catalog entries as "name - summary" lessons.
type CatalogProvider struct {
	Entries []Entry
}

func (p CatalogProvider) Lessons() ([]Lesson, error) {
	lessons := make([]Lesson, 0, len(p.Entries))
	for _, e := range p.Entries {
		lessons = append(lessons, Lesson{Title: e.Line(), Example: e.Example})
	}
	return lessons, nil
}

// DirProvider lists the markdown files of a lesson directory, such as the ebook's
// "ebook/en/content", sorted by file name. Files are named "NNN-slug.md"; the title is derived
// from the name unless the file starts with YAML front matter carrying a title.
type DirProvider struct {
	Dir string
}

// Lessons returns no lessons and no error when the directory does not exist.
func (p DirProvider) Lessons() ([]Lesson, error) {
	dirEntries, err := os.ReadDir(p.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read lessons: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.Type().IsRegular() && strings.EqualFold(filepath.Ext(de.Name()), ".md") {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)

	lessons := make([]Lesson, 0, len(names))
	for _, name := range names {
		path := filepath.Join(p.Dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read lesson: %w", err)
		}
		meta, err := parseFrontMatter(data)
		if err != nil {
			return nil, fmt.Errorf("lesson %s: %w", name, err)
		}
		title := meta.Title
		if title == "" {
			title = FormatTitle(strings.TrimSuffix(name, filepath.Ext(name)))
		}
		lessons = append(lessons, Lesson{Title: title, Example: meta.Example, Path: path})
	}
	return lessons, nil
}

type frontMatter struct {
	Title   string `mapstructure:"title"`
	Example string `mapstructure:"example"`
}

// parseFrontMatter decodes a leading "---" delimited YAML block. Files without one yield an
// empty frontMatter.
func parseFrontMatter(data []byte) (frontMatter, error) {
	var meta frontMatter
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return meta, nil
	}
	_, body, _ := bytes.Cut(data, []byte("\n"))
	block, _, found := bytes.Cut(body, []byte("\n---"))
	if !found {
		return meta, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(block, &raw); err != nil {
		return meta, fmt.Errorf("front matter: %w", err)
	}
	if err := mapstructure.WeakDecode(raw, &meta); err != nil {
		return meta, fmt.Errorf("front matter: %w", err)
	}
	return meta, nil
}

// FormatTitle turns a lesson file stem into a title: "001-the-ls-command" becomes
// "001 The Ls Command" and "intro-to-linux" becomes "Intro To Linux".
func FormatTitle(stem string) string {
	prefix, slug, _ := strings.Cut(stem, "-")
	if !isDigits(prefix) {
		return titleWords(stem)
	}
	return strings.TrimSpace(prefix + " " + titleWords(slug))
}

func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
