package commands

import (
	"context"
	"fmt"

	"github.com/linux101/cli"
)

func greetParams() []cli.Param {
	return []cli.Param{
		{Name: "name", Short: "n", Kind: cli.Option, Default: "World", Help: "Name to greet."},
		verboseParam("Enable verbose output for this command."),
	}
}

// helloCommand is a group whose callback greets as well, so "hello" and "hello greet" behave the
// same. Options given to the group, as in "hello --name Linux greet", reach the subcommand.
func (a *app) helloCommand() *cli.Command {
	group := &cli.Command{
		Name:      "hello",
		ShortHelp: "Hello command group",
		Params:    greetParams(),
		Before:    verboseOption,
		Exec:      greet,
	}
	group.MustRegister(nil, &cli.Command{
		Name:      "greet",
		ShortHelp: "Say hello to someone.",
		Params:    greetParams(),
		Before:    verboseOption,
		Exec:      greet,
	})
	return group
}

func greet(_ context.Context, s *cli.State) error {
	name := cli.GetParam[string](s, "name")
	s.Logger().Debug("Greeting", "name", name)
	fmt.Fprintf(s.Stdout, "Hello, %s!\n", name)
	return nil
}
