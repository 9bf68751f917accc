package cli

import (
	"io"
	"log/slog"
	"strings"
)

// verboseKey is the reserved store key used by the verbosity protocol.
const verboseKey = "cli.verbose"

// State is the execution context for one resolution step of a dispatch. States form a chain from
// the resolved command back to the root; the parent link is only ever read, except by
// [SetVerbose]. Use [GetParam] to read parameters from anywhere in the chain.
type State struct {
	// Args contains the positional arguments left after the declared parameters were filled.
	Args []string

	// Standard I/O streams. Unset streams are inherited from the parent.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	cmd    *Command
	inv    *Invocation
	parent *State
	store  map[string]any
	logger *slog.Logger
}

// NewState returns a state whose parent is parent, inheriting its streams. A nil parent creates a
// root state.
func NewState(parent *State) *State {
	s := &State{parent: parent}
	if parent != nil {
		s.Stdin, s.Stdout, s.Stderr = parent.Stdin, parent.Stdout, parent.Stderr
	}
	return s
}

func newCommandState(parent *State, cmd *Command) *State {
	s := NewState(parent)
	s.cmd = cmd
	return s
}

// Parent returns the enclosing state, or nil for the root.
func (s *State) Parent() *State { return s.parent }

// Root returns the first state of the chain.
func (s *State) Root() *State {
	for s.parent != nil {
		s = s.parent
	}
	return s
}

// Command returns the command this state was created for. It is nil for states created with
// [NewState].
func (s *State) Command() *Command { return s.cmd }

// Invocation returns the parsed parameters of this state's command. It is nil until the
// dispatcher has parsed them.
func (s *State) Invocation() *Invocation { return s.inv }

// Depth returns the number of states in the chain, the root included. A resolved leaf has a
// state of its own, so "app hello greet" has depth 3.
func (s *State) Depth() int {
	n := 0
	for cur := s; cur != nil; cur = cur.parent {
		n++
	}
	return n
}

// Path returns the space separated names of the commands along the chain.
func (s *State) Path() string {
	var names []string
	for cur := s; cur != nil; cur = cur.parent {
		if cur.cmd != nil {
			names = append(names, cur.cmd.Name)
		}
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, " ")
}

// Set stores value under key in this state only.
func (s *State) Set(key string, value any) {
	if s.store == nil {
		s.store = make(map[string]any)
	}
	s.store[key] = value
}

// Value returns the value stored under key in this state only.
func (s *State) Value(key string) (any, bool) {
	v, ok := s.store[key]
	return v, ok
}

// Lookup returns the value stored under key in the nearest state of the chain that carries it.
func (s *State) Lookup(key string) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.store[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// SetVerbose writes v on s and on every ancestor of s, so states that already exist above s see
// it. States created below s afterwards see it by walking upward.
func SetVerbose(s *State, v bool) {
	for cur := s; cur != nil; cur = cur.parent {
		cur.Set(verboseKey, v)
	}
}

// VerboseActive reports the verbose value of the nearest state that carries one, or false when
// none does.
func VerboseActive(s *State) bool {
	v, ok := s.Lookup(verboseKey)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// GetParam retrieves a parameter value by name. It traverses up the state hierarchy, returning
// the nearest value that was supplied on the command line; when none was, it falls back to the
// nearest default. Example usage:
//
//	verbose := GetParam[bool](s, "verbose")
//	name := GetParam[string](s, "name")
//
// Absent parameters yield the zero value. Strings and booleans convert into each other the same
// way [Invocation.String] and [Invocation.Bool] do.
func GetParam[T string | bool](s *State, name string) T {
	var fallback *Invocation
	for cur := s; cur != nil; cur = cur.parent {
		if cur.inv.Given(name) {
			return convertParam[T](cur.inv, name)
		}
		if fallback == nil && cur.inv.Has(name) {
			fallback = cur.inv
		}
	}
	return convertParam[T](fallback, name)
}

func convertParam[T string | bool](inv *Invocation, name string) T {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = inv.String(name)
	case *bool:
		*p = inv.Bool(name)
	}
	return out
}
