package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/linux101/cli"
	"github.com/linux101/cli/internal/content"
	"github.com/linux101/cli/pkg/suggest"
)

func (a *app) showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		ShortHelp: "Show the cheat sheet for a Linux command.",
		Params: []cli.Param{
			{Name: "command", Kind: cli.Positional, Required: true, Help: "Linux command to describe, e.g. grep."},
			verboseParam("Enable verbose output for this command."),
		},
		Before: verboseOption,
		Exec:   a.show,
	}
}

func (a *app) searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     ProgramName + " search <term...>",
		ShortHelp: "Search the cheat sheets by name or description.",
		Params: []cli.Param{
			{Name: "term", Kind: cli.Positional, Required: true, Help: "Text to look for."},
			verboseParam("Enable verbose output for this command."),
		},
		Before: verboseOption,
		Exec:   a.search,
	}
}

func (a *app) show(_ context.Context, s *cli.State) error {
	inv := s.Invocation()
	name := inv.String("command")
	if name == "" {
		return a.fail(s, "Error: Missing argument 'COMMAND'.\nHint: Run '%s --help' for usage.", s.Path())
	}
	entries, err := content.Catalog()
	if err != nil {
		return err
	}
	entry, ok := content.Find(entries, name)
	if !ok {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name)
		}
		msg := fmt.Sprintf("No cheat sheet entry for '%s'.", name)
		if similar := suggest.FindSimilar(name, names, 3); len(similar) > 0 {
			msg += " Did you mean: " + strings.Join(similar, ", ") + "?"
		}
		return a.fail(s, "%s", msg)
	}

	if !isTerminal(s.Stdout) {
		fmt.Fprint(s.Stdout, entry.Text())
		return nil
	}
	out, err := a.renderMarkdown(entry.Markdown())
	if err != nil {
		s.Logger().Debug("Markdown rendering failed, printing plain text", "err", err)
		fmt.Fprint(s.Stdout, entry.Text())
		return nil
	}
	fmt.Fprint(s.Stdout, out)
	return nil
}

func (a *app) renderMarkdown(md string) (string, error) {
	style := glamour.WithAutoStyle()
	if a.env.Config.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (a *app) search(_ context.Context, s *cli.State) error {
	term := strings.TrimSpace(strings.Join(append([]string{s.Invocation().String("term")}, s.Args...), " "))
	if term == "" {
		return a.fail(s, "Error: Missing argument 'TERM'.\nHint: Run '%s --help' for usage.", s.Path())
	}
	entries, err := content.Catalog()
	if err != nil {
		return err
	}
	matches := content.Search(entries, term)
	s.Logger().Debug("Searched catalog", "term", term, "matches", len(matches))
	if len(matches) == 0 {
		return a.fail(s, "No commands match '%s'.", term)
	}
	for _, e := range matches {
		fmt.Fprintln(s.Stdout, e.Line())
	}
	return nil
}
