// Package commands assembles the 101-linux command tree and implements its leaf commands.
package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/linux101/cli"
	"github.com/linux101/cli/internal/config"
	"github.com/linux101/cli/internal/content"
	"github.com/linux101/cli/internal/version"
)

// ProgramName is the root command name, used in help and hints.
const ProgramName = "101-linux"

// Env carries the collaborators the commands depend on. Zero fields fall back to the process
// environment.
type Env struct {
	Config config.Config

	// Lessons overrides the lesson provider chosen from Config.
	Lessons content.Provider

	Getenv func(string) string
	Now    func() time.Time
}

type app struct {
	env Env
}

// Root builds the complete command tree. It panics on wiring defects, which registration
// detects before any dispatch.
func Root(env Env) *cli.Command {
	if env.Getenv == nil {
		env.Getenv = os.Getenv
	}
	if env.Now == nil {
		env.Now = time.Now
	}
	a := &app{env: env}

	root := &cli.Command{
		Name:      ProgramName,
		ShortHelp: "101 Linux Commands CLI",
		LongHelp:  "Print reference information about common Linux commands and try a few small example commands.",
		Params: []cli.Param{
			{Name: "verbose", Short: "v", Kind: cli.Flag, Help: "Enable verbose debug output for all commands."},
			{Name: "version", Kind: cli.Flag, Help: "Print the version and exit."},
		},
		Before: a.rootOptions,
	}
	root.MustRegister(nil, a.helloCommand())
	root.MustRegister(nil, a.listCommand())
	root.MustRegister(nil, a.countCommand())
	root.MustRegister(nil, a.whichCommand())
	root.MustRegister(nil, a.buildCommand())
	root.MustRegister(nil, a.showCommand())
	root.MustRegister(nil, a.searchCommand())
	root.MustRegister(nil, a.versionCommand())
	return root
}

// rootOptions processes the global options before anything below the root runs.
func (a *app) rootOptions(_ context.Context, s *cli.State) error {
	if s.Invocation().Bool("verbose") {
		cli.SetVerbose(s, true)
		s.Logger().Debug("Verbose mode enabled")
	}
	if s.Invocation().Bool("version") {
		fmt.Fprintln(s.Stdout, version.String())
		return cli.Exit(0)
	}
	return nil
}

// verboseOption handles a command's own --verbose flag.
func verboseOption(_ context.Context, s *cli.State) error {
	if s.Invocation().Bool("verbose") {
		cli.SetVerbose(s, true)
	}
	return nil
}

func verboseParam(help string) cli.Param {
	return cli.Param{Name: "verbose", Short: "v", Kind: cli.Flag, Help: help}
}

// fail prints msg in red on the state's stderr and requests exit code 1.
func (a *app) fail(s *cli.State, format string, args ...any) error {
	p := a.palette(s.Stderr)
	for _, line := range strings.Split(fmt.Sprintf(format, args...), "\n") {
		fmt.Fprintln(s.Stderr, p.red(line))
	}
	return cli.Exit(1)
}

func (a *app) versionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		ShortHelp: "Print the version string.",
		Exec: func(_ context.Context, s *cli.State) error {
			fmt.Fprintln(s.Stdout, version.String())
			return nil
		},
	}
}
