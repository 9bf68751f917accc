package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/linux101/cli"
)

func (a *app) countCommand() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     ProgramName + " count [flags] [file...]",
		ShortHelp: "Count lines, words and bytes (simple wc-like).",
		LongHelp:  "Count lines, words and bytes for each FILE. With no FILE, or when FILE is -, read standard input.",
		Params: []cli.Param{
			{Name: "total", Short: "t", Kind: cli.Flag, Help: "Show total across files."},
			verboseParam("Enable verbose output for this command."),
		},
		Before: verboseOption,
		Exec:   a.count,
	}
}

type counts struct {
	lines, words, bytes int
}

func countText(data []byte) counts {
	return counts{
		lines: bytes.Count(data, []byte("\n")),
		words: len(bytes.Fields(data)),
		bytes: len(data),
	}
}

func (c *counts) add(o counts) {
	c.lines += o.lines
	c.words += o.words
	c.bytes += o.bytes
}

func (c counts) format(name string) string {
	line := fmt.Sprintf("%7d %7d %7d", c.lines, c.words, c.bytes)
	if name != "" {
		line += " " + name
	}
	return line
}

func (a *app) count(_ context.Context, s *cli.State) error {
	files := s.Args
	if len(files) == 0 {
		if isTerminal(s.Stdin) {
			fmt.Fprintln(s.Stderr, "Reading from stdin (end with Ctrl-D)...")
		}
		data, err := io.ReadAll(s.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		fmt.Fprintln(s.Stdout, countText(data).format(""))
		return nil
	}

	var total counts
	read := 0
	for _, name := range files {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(s.Stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintln(s.Stderr, a.palette(s.Stderr).red("✖ File not found: "+name))
			continue
		case err != nil:
			fmt.Fprintln(s.Stderr, a.palette(s.Stderr).red(fmt.Sprintf("✖ %s: %v", name, err)))
			continue
		}
		c := countText(data)
		total.add(c)
		read++
		fmt.Fprintln(s.Stdout, c.format(name))
	}

	if cli.GetParam[bool](s, "total") && len(files) > 1 {
		fmt.Fprintln(s.Stdout, total.format("total"))
	}
	s.Logger().Debug("Counted files", "read", read, "requested", len(files))
	if read == 0 {
		return cli.Exit(1)
	}
	return nil
}
