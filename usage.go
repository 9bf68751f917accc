package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/linux101/cli/pkg/textutil"
)

const helpWidth = 80

// DefaultUsage renders the help text of the command s was created for: description, usage line,
// subcommands, its own flags and the flags inherited from the groups above it. The output only
// depends on the command tree, so repeated calls are byte-identical.
func DefaultUsage(s *State) string {
	if s == nil || s.cmd == nil {
		return ""
	}
	c := s.cmd

	var b strings.Builder

	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, helpWidth) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}
	if c.LongHelp != "" {
		for _, paragraph := range strings.Split(c.LongHelp, "\n\n") {
			for _, line := range textutil.Wrap(paragraph, helpWidth) {
				b.WriteString(line + "\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("Usage:\n")
	b.WriteString("  " + usageLine(s) + "\n")
	b.WriteString("\n")

	if len(c.SubCommands) > 0 {
		b.WriteString("Available Commands:\n")
		sortedCommands := slices.Clone(c.SubCommands)
		slices.SortFunc(sortedCommands, func(a, b *Command) int {
			return cmp.Compare(a.Name, b.Name)
		})

		maxNameLen := 0
		for _, sub := range sortedCommands {
			maxNameLen = max(maxNameLen, len(sub.Name))
		}

		nameWidth := maxNameLen + 4
		wrapWidth := helpWidth - nameWidth

		for _, sub := range sortedCommands {
			lines := textutil.Wrap(sub.ShortHelp, wrapWidth)
			if len(lines) == 0 {
				fmt.Fprintf(&b, "  %s\n", sub.Name)
				continue
			}

			padding := strings.Repeat(" ", maxNameLen-len(sub.Name)+4)
			fmt.Fprintf(&b, "  %s%s%s\n", sub.Name, padding, lines[0])

			indentPadding := strings.Repeat(" ", nameWidth+2)
			for _, line := range lines[1:] {
				fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
			}
		}
		b.WriteString("\n")
	}

	local := paramFlagSet(c.Params)
	local.BoolP("help", "h", false, "show help for "+c.Name)
	b.WriteString("Flags:\n")
	b.WriteString(local.FlagUsagesWrapped(helpWidth))
	b.WriteString("\n")

	global := pflag.NewFlagSet("global", pflag.ContinueOnError)
	for cur := s.parent; cur != nil; cur = cur.parent {
		if cur.cmd == nil {
			continue
		}
		for _, p := range cur.cmd.Params {
			if p.Kind == Positional || local.Lookup(p.Name) != nil || global.Lookup(p.Name) != nil {
				continue
			}
			short := p.Short
			if short != "" && (local.ShorthandLookup(short) != nil || global.ShorthandLookup(short) != nil) {
				short = ""
			}
			addParamFlag(global, p, short)
		}
	}
	if global.HasFlags() {
		b.WriteString("Global Flags:\n")
		b.WriteString(global.FlagUsagesWrapped(helpWidth))
		b.WriteString("\n")
	}

	if len(c.SubCommands) > 0 {
		fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n", s.Path())
	}

	return strings.TrimRight(b.String(), "\n")
}

func usageLine(s *State) string {
	c := s.cmd
	if c.Usage != "" {
		return c.Usage
	}
	usage := s.Path()
	hasFlags := false
	for _, p := range c.Params {
		if p.Kind != Positional {
			hasFlags = true
			break
		}
	}
	if hasFlags {
		usage += " [flags]"
	}
	if len(c.SubCommands) > 0 {
		usage += " <command>"
	}
	for _, p := range c.Params {
		if p.Kind != Positional {
			continue
		}
		if p.Required {
			usage += " <" + p.Name + ">"
		} else {
			usage += " [" + p.Name + "]"
		}
	}
	return usage
}

// paramFlagSet mirrors the named parameters of a signature in a pflag set, which is only used to
// render the flag sections of the help text.
func paramFlagSet(params []Param) *pflag.FlagSet {
	fset := pflag.NewFlagSet("params", pflag.ContinueOnError)
	for _, p := range params {
		if p.Kind == Positional {
			continue
		}
		addParamFlag(fset, p, p.Short)
	}
	return fset
}

func addParamFlag(fset *pflag.FlagSet, p Param, short string) {
	switch p.Kind {
	case Flag:
		def, _ := strconv.ParseBool(p.Default)
		fset.BoolP(p.Name, short, def, p.Help)
	case Option:
		fset.StringP(p.Name, short, p.Default, p.Help)
	}
}
