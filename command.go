package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// NoExecError is returned when a leaf command has no execution function.
type NoExecError struct {
	Command *Command
	path    string
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.path)
}

// Command represents a CLI command or group within the application's command hierarchy. A command
// with SubCommands is a group; any other command is a leaf.
type Command struct {
	// Name is always a single word representing the command's name. It is used to identify the
	// command in the command hierarchy and in help text.
	Name string

	// Usage provides the command's full usage pattern. When empty it is synthesized from the
	// command path, the declared parameters and the subcommands.
	//
	// Example: "101-linux count [flags] [file...]"
	Usage string

	// ShortHelp is a brief description of the command's purpose. It is displayed in the parent's
	// command listing and at the top of the command's own help.
	ShortHelp string

	// LongHelp is an optional detailed description shown after ShortHelp in the command's help.
	LongHelp string

	// Params is the command's declared signature, in order. It is checked at registration time.
	Params []Param

	// SubCommands is a list of nested commands that exist under this command.
	SubCommands []*Command

	// Before runs after the command's own options have been parsed and before the dispatcher
	// descends into a subcommand, shows help, or calls Exec. Groups use it to process options
	// such as --verbose that must be visible to everything below them.
	Before func(ctx context.Context, s *State) error

	// Exec defines the command's execution logic. On a group it is the group callback, invoked
	// when the group is addressed with no subcommand.
	Exec func(ctx context.Context, s *State) error

	// Strict rejects flags that are not declared in Params instead of keeping them.
	Strict bool
}

// IsGroup reports whether the command has subcommands.
func (c *Command) IsGroup() bool {
	return len(c.SubCommands) > 0
}

// ParamKind describes how a parameter is supplied on the command line.
type ParamKind int

const (
	// Option is a string-valued named parameter: --name value, --name=value or -n value.
	Option ParamKind = iota
	// Flag is a boolean named parameter: --name, -n or --name=false.
	Flag
	// Positional is filled from bare tokens in declaration order, or by name like an Option.
	Positional
)

func (k ParamKind) String() string {
	switch k {
	case Option:
		return "option"
	case Flag:
		return "flag"
	case Positional:
		return "positional"
	default:
		return "ParamKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Param declares one parameter of a command's signature.
type Param struct {
	// Name is the long name, used as --name and as the key in the parsed invocation.
	Name string
	// Short is an optional single-character alias, used as -s.
	Short string
	Kind  ParamKind
	// Default is applied when the parameter is absent. Flag defaults must parse as booleans.
	Default string
	// Required marks a parameter the command cannot run without. The parser never enforces it;
	// commands check [Invocation.Has] and fail with their own message.
	Required bool
	Help     string
}

// Lookup returns the direct child with the given name, or an error wrapping [ErrNotFound].
func (c *Command) Lookup(name string) (*Command, error) {
	if sub := c.findSubCommand(name); sub != nil {
		return sub, nil
	}
	return nil, fmt.Errorf("%w: %q under %q", ErrNotFound, name, c.Name)
}

// Register inserts cmd below the group addressed by path, creating intermediate groups as
// needed. An empty path registers cmd as a direct child of c. It fails with [ErrDuplicateCommand]
// when a sibling already uses cmd's name and with [ErrInvalidSignature] when cmd or one of its
// descendants is malformed.
func (c *Command) Register(path []string, cmd *Command) error {
	if cmd == nil {
		return NewError(ErrInvalidSignature, errors.New("cannot register a nil command"))
	}
	fullPath := append(slices.Clone(path), cmd.Name)
	if err := validateCommands(cmd, append([]string{c.Name}, path...)); err != nil {
		return err
	}
	for _, name := range path {
		if err := validateName(name, fullPath); err != nil {
			return err
		}
	}

	parent := c
	for _, name := range path {
		next := parent.findSubCommand(name)
		if next == nil {
			next = &Command{Name: name}
			parent.SubCommands = append(parent.SubCommands, next)
		}
		parent = next
	}
	if parent.findSubCommand(cmd.Name) != nil {
		return NewError(ErrDuplicateCommand, fmt.Errorf("command %q is already registered",
			strings.Join(append([]string{c.Name}, fullPath...), " ")))
	}
	parent.SubCommands = append(parent.SubCommands, cmd)
	return nil
}

// MustRegister is like [Command.Register] but panics on error. Registration errors are wiring
// defects, so startup code uses it to fail before any dispatch.
func (c *Command) MustRegister(path []string, cmd *Command) {
	if err := c.Register(path, cmd); err != nil {
		panic(fmt.Sprintf("cli: register: %v", err))
	}
}

// Validate checks the whole tree rooted at c: names, sibling uniqueness and parameter
// signatures. [Dispatch] calls it before resolving anything, so hand-built trees get the same
// guarantees as registered ones.
func (c *Command) Validate() error {
	return validateCommands(c, nil)
}

// findSubCommand searches for a subcommand by name and returns it if found. Returns nil if no
// subcommand with the given name exists.
func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if strings.EqualFold(sub.Name, name) {
			return sub
		}
	}
	return nil
}

func (c *Command) lookupParam(name string, short bool) *Param {
	return lookupParam(c.Params, name, short)
}

func lookupParam(params []Param, name string, short bool) *Param {
	for i := range params {
		p := &params[i]
		if short && p.Short != "" && p.Short == name {
			return p
		}
		if !short && p.Name == name {
			return p
		}
	}
	return nil
}

func validateName(name string, path []string) error {
	if name == "" {
		return NewError(ErrInvalidSignature, fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " ")))
	}
	if strings.ContainsAny(name, " \t\n") {
		return NewError(ErrInvalidSignature, fmt.Errorf("command name %q contains spaces, must be a single word", name))
	}
	if strings.HasPrefix(name, "-") {
		return NewError(ErrInvalidSignature, fmt.Errorf("command name %q must not start with a dash", name))
	}
	return nil
}

func validateCommands(root *Command, path []string) error {
	if root.Name == "" && len(path) == 0 {
		return NewError(ErrInvalidSignature, errors.New("root command has no name"))
	}
	if err := validateName(root.Name, path); err != nil {
		return err
	}

	// Add current command to path for nested validation
	currentPath := append(slices.Clone(path), root.Name)

	if err := validateParams(root, currentPath); err != nil {
		return err
	}
	if len(path) > 0 && !root.IsGroup() && root.Exec == nil {
		return NewError(ErrInvalidSignature, &NoExecError{Command: root, path: strings.Join(currentPath, " ")})
	}

	seen := make(map[string]bool, len(root.SubCommands))
	for _, sub := range root.SubCommands {
		if sub == nil {
			return NewError(ErrInvalidSignature, fmt.Errorf("nil subcommand under %q", strings.Join(currentPath, " ")))
		}
		key := strings.ToLower(sub.Name)
		if seen[key] {
			return NewError(ErrDuplicateCommand, fmt.Errorf("command %q is already registered",
				strings.Join(append(slices.Clone(currentPath), sub.Name), " ")))
		}
		seen[key] = true
		if err := validateCommands(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}

func validateParams(c *Command, path []string) error {
	fail := func(format string, args ...any) error {
		msg := fmt.Sprintf(format, args...)
		return NewError(ErrInvalidSignature, fmt.Errorf("command %q: %s", strings.Join(path, " "), msg))
	}
	names := make(map[string]bool, len(c.Params))
	shorts := make(map[string]bool, len(c.Params))
	optionalSeen := false
	for _, p := range c.Params {
		switch {
		case p.Name == "":
			return fail("parameter has no name")
		case strings.HasPrefix(p.Name, "-") || strings.ContainsAny(p.Name, " =\t"):
			return fail("invalid parameter name %q", p.Name)
		case p.Name == "help" || p.Short == "h":
			return fail("parameter %q uses the reserved help flag", p.Name)
		case names[p.Name]:
			return fail("duplicate parameter %q", p.Name)
		}
		names[p.Name] = true

		if p.Short != "" {
			if len(p.Short) != 1 || p.Short == "-" || p.Short == "=" {
				return fail("parameter %q: short name %q must be a single character", p.Name, p.Short)
			}
			if shorts[p.Short] {
				return fail("duplicate short name %q", p.Short)
			}
			shorts[p.Short] = true
		}

		switch p.Kind {
		case Option:
		case Flag:
			if p.Required {
				return fail("boolean parameter %q cannot be required", p.Name)
			}
			if p.Default != "" {
				if _, err := strconv.ParseBool(p.Default); err != nil {
					return fail("boolean parameter %q has invalid default %q", p.Name, p.Default)
				}
			}
		case Positional:
			if p.Short != "" {
				return fail("positional parameter %q cannot have a short name", p.Name)
			}
			if p.Required && optionalSeen {
				return fail("required positional %q follows an optional one", p.Name)
			}
			if !p.Required {
				optionalSeen = true
			}
		default:
			return fail("parameter %q has unknown kind %v", p.Name, p.Kind)
		}
	}
	return nil
}
