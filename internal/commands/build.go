package commands

import (
	"context"
	"fmt"

	"github.com/linux101/cli"
)

var buildSteps = []string{"Compiling markdown", "Generating PDF", "Generating EPUB"}

func (a *app) buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		ShortHelp: "Build the ebook (stub).",
		LongHelp:  "Walks through the ebook build steps and reports on each. No files are produced yet.",
		Params: []cli.Param{
			{Name: "dry-run", Kind: cli.Flag, Help: "Simulate the build process without creating files."},
			{Name: "output", Short: "o", Kind: cli.Option, Default: "output/ebook", Help: "Directory to save the built ebook."},
			verboseParam("Enable verbose output for this command."),
		},
		Strict: true,
		Before: verboseOption,
		Exec:   a.build,
	}
}

func (a *app) build(_ context.Context, s *cli.State) error {
	inv := s.Invocation()
	dryRun := inv.Bool("dry-run")
	p := a.palette(s.Stdout)

	start := a.env.Now()
	fmt.Fprintln(s.Stdout, p.blue("Starting ebook build at "+start.Format("15:04:05")))
	if dryRun {
		fmt.Fprintln(s.Stdout, p.yellow("Dry run enabled, no files will be generated."))
	} else {
		fmt.Fprintf(s.Stdout, "Building ebook in '%s'...\n", inv.String("output"))
	}

	s.Logger().Debug("Simulating each build step", "steps", len(buildSteps))
	for _, step := range buildSteps {
		if dryRun {
			fmt.Fprintf(s.Stdout, "[Dry-run] %s skipped.\n", step)
		} else {
			fmt.Fprintf(s.Stdout, "%s completed.\n", step)
		}
	}

	end := a.env.Now()
	fmt.Fprintln(s.Stdout, p.green("Build process finished at "+end.Format("15:04:05")))
	fmt.Fprintln(s.Stdout, p.cyan("Total time: "+end.Sub(start).String()))
	return nil
}
