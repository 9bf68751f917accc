package cli

import (
	"flag"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/mfridman/xflag"
)

// Invocation is the result of parsing a command's tokens against its declared parameters.
type Invocation struct {
	// Values maps parameter names to their value: a string, or a bool for flags and bare
	// undeclared flags. Defaults of declared parameters are included.
	Values map[string]any

	// Extras holds positional tokens left over after every declared positional was filled.
	Extras []string

	given map[string]bool
}

func newInvocation() *Invocation {
	return &Invocation{
		Values: make(map[string]any),
		given:  make(map[string]bool),
	}
}

func (inv *Invocation) set(name string, value any) {
	inv.Values[name] = value
	inv.given[name] = true
}

// Has reports whether name has a value, supplied or defaulted.
func (inv *Invocation) Has(name string) bool {
	if inv == nil {
		return false
	}
	_, ok := inv.Values[name]
	return ok
}

// Given reports whether name was supplied on the command line rather than defaulted.
func (inv *Invocation) Given(name string) bool {
	return inv != nil && inv.given[name]
}

// String returns the value of name as a string. Boolean values are formatted with
// [strconv.FormatBool]; absent values are empty.
func (inv *Invocation) String(name string) string {
	if inv == nil {
		return ""
	}
	return toString(inv.Values[name])
}

// Bool returns the value of name as a bool. String values are read with [strconv.ParseBool], and
// any other non-empty string counts as true.
func (inv *Invocation) Bool(name string) bool {
	if inv == nil {
		return false
	}
	return toBool(inv.Values[name])
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func toBool(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		return v != ""
	default:
		return false
	}
}

// ParseInvocation parses tokens against params. It is permissive and never fails: undeclared
// flags are kept under their own name, missing required parameters are simply absent, and
// positionals beyond the declared ones end up in [Invocation.Extras].
func ParseInvocation(params []Param, tokens []string) *Invocation {
	inv := newInvocation()
	var positionals []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "--" {
			positionals = append(positionals, tokens[i+1:]...)
			break
		}
		if !isFlag(tok) {
			positionals = append(positionals, tok)
			continue
		}
		key, value, extra := scanFlag(params, tokens, i)
		inv.set(key, value)
		i += extra
	}
	assignPositionals(inv, params, positionals)
	applyDefaults(inv, params)
	return inv
}

// isFlag reports whether tok looks like a flag. A lone "-" is a positional (stdin by convention).
func isFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}

// splitFlag strips the dash prefix from a flag token and splits an inline "=value".
func splitFlag(tok string) (name, value string, hasValue, short bool) {
	if strings.HasPrefix(tok, "--") {
		name = tok[2:]
	} else {
		name = tok[1:]
		short = true
	}
	name, value, hasValue = strings.Cut(name, "=")
	return name, value, hasValue, short
}

// scanFlag reads the flag at tokens[i] and reports its key, its value and how many following
// tokens it consumed.
func scanFlag(params []Param, tokens []string, i int) (key string, value any, extra int) {
	name, inline, hasInline, short := splitFlag(tokens[i])
	key = name
	p := lookupParam(params, name, short)
	if p != nil {
		key = p.Name
	}
	if p != nil && p.Kind == Flag {
		if !hasInline {
			return key, true, 0
		}
		b, err := strconv.ParseBool(inline)
		if err != nil {
			b = true
		}
		return key, b, 0
	}
	if hasInline {
		return key, inline, 0
	}
	if i+1 < len(tokens) && !isFlag(tokens[i+1]) {
		return key, tokens[i+1], 1
	}
	return key, true, 0
}

func assignPositionals(inv *Invocation, params []Param, positionals []string) {
	next := 0
	for _, p := range params {
		if p.Kind != Positional || inv.Has(p.Name) {
			continue
		}
		if next == len(positionals) {
			break
		}
		inv.set(p.Name, positionals[next])
		next++
	}
	if next < len(positionals) {
		inv.Extras = slices.Clone(positionals[next:])
	}
}

func applyDefaults(inv *Invocation, params []Param) {
	for _, p := range params {
		if inv.Has(p.Name) {
			continue
		}
		switch {
		case p.Kind == Flag:
			b, _ := strconv.ParseBool(p.Default)
			inv.Values[p.Name] = b
		case p.Default != "":
			inv.Values[p.Name] = p.Default
		}
	}
}

// parseStrict parses tokens with a standard library flag set built from params, so flags and
// positionals may interleave but undeclared flags are rejected.
func parseStrict(params []Param, tokens []string) (*Invocation, error) {
	inv := newInvocation()
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	for _, p := range params {
		if p.Kind == Positional {
			continue
		}
		v := &strictValue{inv: inv, name: p.Name, isBool: p.Kind == Flag}
		fset.Var(v, p.Name, p.Help)
		if p.Short != "" {
			fset.Var(v, p.Short, p.Help)
		}
	}

	var remaining []string
	if i := slices.Index(tokens, "--"); i >= 0 {
		remaining = tokens[i+1:]
		tokens = tokens[:i]
	}
	if err := xflag.ParseToEnd(fset, tokens); err != nil {
		return nil, err
	}
	positionals := append(slices.Clone(fset.Args()), remaining...)
	assignPositionals(inv, params, positionals)
	applyDefaults(inv, params)
	return inv, nil
}

// strictValue is a flag.Value writing straight into an Invocation. Long and short names of the
// same parameter share one value.
type strictValue struct {
	inv    *Invocation
	name   string
	isBool bool
}

func (v *strictValue) String() string {
	if v == nil || v.inv == nil {
		return ""
	}
	return v.inv.String(v.name)
}

func (v *strictValue) Set(s string) error {
	if !v.isBool {
		v.inv.set(v.name, s)
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v.inv.set(v.name, b)
	return nil
}

func (v *strictValue) IsBoolFlag() bool { return v.isBool }
