package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/linux101/cli"
	"github.com/linux101/cli/internal/content"
)

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		ShortHelp: "List available Linux command lessons.",
		LongHelp: "Lessons come from the content directory when one is configured (content_dir in the " +
			"config file, or LINUX101_CONTENT_DIR), otherwise from the built-in catalog.",
		Params: []cli.Param{
			{Name: "limit", Short: "l", Kind: cli.Option, Help: "Limit the number of commands displayed. Shows all when omitted."},
			{Name: "examples", Short: "e", Kind: cli.Flag, Help: "Show an example for each command."},
			verboseParam("Enable verbose output for this command."),
		},
		Before: verboseOption,
		Exec:   a.list,
	}
}

func (a *app) lessonProvider() (content.Provider, error) {
	if a.env.Lessons != nil {
		return a.env.Lessons, nil
	}
	if a.env.Config.ContentDir != "" {
		return content.DirProvider{Dir: a.env.Config.ContentDir}, nil
	}
	entries, err := content.Catalog()
	if err != nil {
		return nil, err
	}
	return content.CatalogProvider{Entries: entries}, nil
}

func (a *app) list(_ context.Context, s *cli.State) error {
	inv := s.Invocation()
	limit := 0
	if inv.Has("limit") {
		raw := inv.String("limit")
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return a.fail(s, "Error: Invalid value for '--limit': %q is not an integer of at least 1.", raw)
		}
		limit = n
	}

	provider, err := a.lessonProvider()
	if err != nil {
		return err
	}
	lessons, err := provider.Lessons()
	if err != nil {
		return err
	}
	total := len(lessons)
	log := s.Logger()
	log.Debug(fmt.Sprintf("Located %d command lessons", total))

	if total == 0 {
		fmt.Fprintln(s.Stdout, "No command lessons found.")
		return nil
	}

	shown := total
	if limit > 0 {
		shown = min(limit, total)
		log.Debug(fmt.Sprintf("Limiting output to %d entries", shown))
	}

	p := a.palette(s.Stdout)
	for _, lesson := range lessons[:shown] {
		fmt.Fprintln(s.Stdout, lesson.Title)
		if inv.Bool("examples") && lesson.Example != "" {
			fmt.Fprintf(s.Stdout, "     %s %s\n", p.magenta("Example:"), lesson.Example)
		}
	}
	return nil
}
