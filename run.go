package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/linux101/cli/pkg/suggest"
)

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Result is the outcome of one dispatch. A nil Err means the dispatch completed, either normally
// (Code 0), by showing help (Code 0) or because a command returned [Exit]. A non-nil Err is an
// [*Error] describing why the dispatch failed; Code is then non-zero.
type Result struct {
	Code int
	Err  error
}

// Failed reports whether the dispatch failed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Dispatch resolves args against the command tree rooted at root and runs the matched command,
// writing all output to the streams in options. It executes the resolution exactly once and
// never calls os.Exit; the caller maps [Result.Code] to the process exit code.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func Dispatch(ctx context.Context, root *Command, args []string, options *RunOptions) Result {
	options = checkAndSetRunOptions(options)
	if root == nil {
		err := NewError(ErrInvalidSignature, errors.New("root command is nil"))
		fmt.Fprintf(options.Stderr, "Error: %v\n", err)
		return Result{Code: 1, Err: err}
	}
	if err := root.Validate(); err != nil {
		fmt.Fprintf(options.Stderr, "Error: %v\n", err)
		return Result{Code: 1, Err: err}
	}

	s := newCommandState(nil, root)
	s.Stdin, s.Stdout, s.Stderr = options.Stdin, options.Stdout, options.Stderr
	return resolveGroup(ctx, root, s, args)
}

// resolveGroup handles the Root and InGroup states: it consumes the group's own options, then
// descends into a matching child, invokes the group callback, shows help or reports an unknown
// command.
func resolveGroup(ctx context.Context, c *Command, s *State, args []string) Result {
	var consumed []string
	for {
		if len(args) == 0 {
			if c.Exec != nil {
				return invoke(ctx, c, s, consumed)
			}
			if r, done := before(ctx, c, s, consumed); done {
				return r
			}
			return showHelp(s)
		}

		tok := args[0]
		if isHelpFlag(tok) {
			return showHelp(s)
		}
		if sub := c.findSubCommand(tok); sub != nil {
			if r, done := before(ctx, c, s, consumed); done {
				return r
			}
			child := newCommandState(s, sub)
			if sub.IsGroup() {
				return resolveGroup(ctx, sub, child, args[1:])
			}
			return invoke(ctx, sub, child, args[1:])
		}
		if n := matchOwnOption(c, args); n > 0 {
			consumed = append(consumed, args[:n]...)
			args = args[n:]
			continue
		}
		if c.Exec != nil {
			return invoke(ctx, c, s, append(consumed, args...))
		}
		return unknownCommand(s, tok)
	}
}

// matchOwnOption reports how many tokens at the head of args form one of c's declared named
// parameters, or 0 when args[0] is not one.
func matchOwnOption(c *Command, args []string) int {
	if !isFlag(args[0]) || args[0] == "--" {
		return 0
	}
	name, _, _, short := splitFlag(args[0])
	if c.lookupParam(name, short) == nil {
		return 0
	}
	_, _, extra := scanFlag(c.Params, args, 0)
	return 1 + extra
}

// invoke handles the Resolved state.
func invoke(ctx context.Context, c *Command, s *State, tokens []string) Result {
	if hasHelpFlag(tokens) {
		return showHelp(s)
	}
	if r, done := before(ctx, c, s, tokens); done {
		return r
	}
	return finish(s, c.Exec(ctx, s))
}

// before parses tokens into s and runs the command's Before hook. It reports done when the
// dispatch must stop there.
func before(ctx context.Context, c *Command, s *State, tokens []string) (Result, bool) {
	if c.Strict {
		inv, err := parseStrict(c.Params, tokens)
		if err != nil {
			fmt.Fprintf(s.Stderr, "Error: %v\n", err)
			fmt.Fprintf(s.Stderr, "Hint: Run '%s --help' for usage.\n", s.Path())
			return Result{Code: 1, Err: NewError(ErrUsage, fmt.Errorf("command %q: %w", s.Path(), err))}, true
		}
		s.inv = inv
	} else {
		s.inv = ParseInvocation(c.Params, tokens)
	}
	s.Args = s.inv.Extras

	if c.Before == nil {
		return Result{}, false
	}
	if err := c.Before(ctx, s); err != nil {
		return finish(s, err), true
	}
	return Result{}, false
}

func finish(s *State, err error) Result {
	if err == nil {
		return Result{}
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return Result{Code: exitErr.Code}
	}
	fmt.Fprintf(s.Stderr, "Error: %v\n", err)
	return Result{Code: 1, Err: NewError(ErrOperation, fmt.Errorf("command %q: %w", s.Path(), err))}
}

func showHelp(s *State) Result {
	fmt.Fprintln(s.Stdout, DefaultUsage(s))
	return Result{}
}

func unknownCommand(s *State, name string) Result {
	var known []string
	for _, sub := range s.cmd.SubCommands {
		known = append(known, sub.Name)
	}
	fmt.Fprintf(s.Stderr, "Error: No such command '%s'.\n", name)
	if suggestions := suggest.FindSimilar(name, known, 3); len(suggestions) > 0 {
		fmt.Fprintf(s.Stderr, "Did you mean one of these?\n\t%s\n", strings.Join(suggestions, "\n\t"))
	}
	fmt.Fprintf(s.Stderr, "Hint: Run '%s --help' to see available commands.\n", s.Root().cmd.Name)
	return Result{
		Code: 1,
		Err:  NewError(ErrUnknownCommand, fmt.Errorf("no such command %q under %q", name, s.Path())),
	}
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--h" || arg == "-help" || arg == "--help"
}

func hasHelpFlag(tokens []string) bool {
	for _, tok := range tokens {
		if tok == "--" {
			return false
		}
		if isHelpFlag(tok) {
			return true
		}
	}
	return false
}

func checkAndSetRunOptions(options *RunOptions) *RunOptions {
	opt := &RunOptions{}
	if options != nil {
		*opt = *options
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
