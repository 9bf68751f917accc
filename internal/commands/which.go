package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/linux101/cli"
)

func (a *app) whichCommand() *cli.Command {
	return &cli.Command{
		Name:      "which",
		ShortHelp: "Locate a program file in the user's PATH.",
		Params: []cli.Param{
			{Name: "name", Kind: cli.Positional, Required: true, Help: "Program name to locate."},
			{Name: "all", Short: "a", Kind: cli.Flag, Help: "Show all matches in PATH."},
			verboseParam("Enable verbose output for this command."),
		},
		Before: verboseOption,
		Exec:   a.which,
	}
}

func (a *app) which(_ context.Context, s *cli.State) error {
	inv := s.Invocation()
	name := inv.String("name")
	if !inv.Given("name") || name == "" {
		return a.fail(s, "Error: Missing argument 'NAME'.\nHint: Run '%s --help' for usage.", s.Path())
	}

	matches := a.findExecutables(name, inv.Bool("all"))
	s.Logger().Debug("Searched PATH", "name", name, "matches", len(matches))
	if len(matches) == 0 {
		return a.fail(s, "%s not found", name)
	}
	for _, m := range matches {
		fmt.Fprintln(s.Stdout, m)
	}
	return nil
}

// findExecutables searches the directories of PATH in order. A name containing a path separator
// is checked as is.
func (a *app) findExecutables(name string, all bool) []string {
	if strings.ContainsRune(name, filepath.Separator) {
		if isExecutable(name) {
			return []string{name}
		}
		return nil
	}

	var matches []string
	for _, dir := range filepath.SplitList(a.env.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if !isExecutable(candidate) {
			continue
		}
		matches = append(matches, candidate)
		if !all {
			break
		}
	}
	return matches
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
