package main

import (
	"context"
	"fmt"
	"os"

	"github.com/linux101/cli"
	"github.com/linux101/cli/internal/commands"
	"github.com/linux101/cli/internal/config"
)

func main() {
	cfg, err := config.Load(config.DefaultPath(os.Getenv), os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	root := commands.Root(commands.Env{Config: cfg})
	result := cli.Dispatch(context.Background(), root, os.Args[1:], nil)
	os.Exit(result.Code)
}
