package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, *State) error { return nil }

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates intermediate groups", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "root"}
		ping := &Command{Name: "ping", Exec: noop}
		require.NoError(t, root.Register([]string{"tools", "net"}, ping))
		require.NoError(t, root.Register([]string{"tools"}, &Command{Name: "dig", Exec: noop}))

		tools, err := root.Lookup("tools")
		require.NoError(t, err)
		assert.True(t, tools.IsGroup())
		assert.Len(t, tools.SubCommands, 2)

		net, err := tools.Lookup("net")
		require.NoError(t, err)
		got, err := net.Lookup("ping")
		require.NoError(t, err)
		assert.Same(t, ping, got)
		assert.False(t, got.IsGroup())
	})
	t.Run("lookup is case insensitive", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "root"}
		root.MustRegister(nil, &Command{Name: "list", Exec: noop})
		got, err := root.Lookup("LIST")
		require.NoError(t, err)
		assert.Equal(t, "list", got.Name)
	})
	t.Run("lookup not found", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "root"}
		_, err := root.Lookup("missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorContains(t, err, `"missing"`)
	})
	t.Run("duplicate sibling", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "root"}
		require.NoError(t, root.Register([]string{"hello"}, &Command{Name: "greet", Exec: noop}))
		err := root.Register([]string{"hello"}, &Command{Name: "Greet", Exec: noop})
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrDuplicateCommand))
		assert.ErrorContains(t, err, `command "root hello Greet" is already registered`)
	})
	t.Run("must register panics", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "root"}
		root.MustRegister(nil, &Command{Name: "a", Exec: noop})
		assert.PanicsWithValue(t, `cli: register: command "root a" is already registered`, func() {
			root.MustRegister(nil, &Command{Name: "a", Exec: noop})
		})
	})
	t.Run("nil command", func(t *testing.T) {
		t.Parallel()
		err := (&Command{Name: "root"}).Register(nil, nil)
		assert.True(t, IsKind(err, ErrInvalidSignature))
	})
	t.Run("leaf without exec", func(t *testing.T) {
		t.Parallel()
		err := (&Command{Name: "root"}).Register(nil, &Command{Name: "noop"})
		require.Error(t, err)
		var noExecErr *NoExecError
		require.ErrorAs(t, err, &noExecErr)
		assert.ErrorContains(t, err, `command "root noop" has no execution function`)
	})
	t.Run("invalid names", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "root"}
		err := root.Register(nil, &Command{Name: "two words", Exec: noop})
		assert.ErrorContains(t, err, `command name "two words" contains spaces, must be a single word`)
		err = root.Register(nil, &Command{Name: "-x", Exec: noop})
		assert.ErrorContains(t, err, `must not start with a dash`)
		err = root.Register([]string{""}, &Command{Name: "x", Exec: noop})
		assert.ErrorContains(t, err, `has no name`)
		assert.Empty(t, root.SubCommands)
	})
}

func TestRegisterSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  []Param
		wantErr string
	}{
		{name: "empty name", params: []Param{{}}, wantErr: "parameter has no name"},
		{name: "dashed name", params: []Param{{Name: "--name"}}, wantErr: `invalid parameter name "--name"`},
		{name: "reserved help", params: []Param{{Name: "help", Kind: Flag}}, wantErr: "reserved help flag"},
		{name: "reserved short", params: []Param{{Name: "host", Short: "h"}}, wantErr: "reserved help flag"},
		{name: "duplicate name", params: []Param{{Name: "a"}, {Name: "a"}}, wantErr: `duplicate parameter "a"`},
		{name: "long short", params: []Param{{Name: "all", Short: "al"}}, wantErr: "must be a single character"},
		{name: "duplicate short", params: []Param{{Name: "all", Short: "a"}, {Name: "any", Short: "a"}}, wantErr: `duplicate short name "a"`},
		{name: "required flag", params: []Param{{Name: "force", Kind: Flag, Required: true}}, wantErr: "cannot be required"},
		{name: "bad flag default", params: []Param{{Name: "force", Kind: Flag, Default: "maybe"}}, wantErr: "invalid default"},
		{name: "short positional", params: []Param{{Name: "file", Short: "f", Kind: Positional}}, wantErr: "cannot have a short name"},
		{
			name:    "required after optional",
			params:  []Param{{Name: "src", Kind: Positional}, {Name: "dst", Kind: Positional, Required: true}},
			wantErr: "follows an optional one",
		},
		{name: "unknown kind", params: []Param{{Name: "x", Kind: ParamKind(42)}}, wantErr: "unknown kind ParamKind(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := &Command{Name: "root"}
			err := root.Register(nil, &Command{Name: "x", Params: tt.params, Exec: noop})
			require.Error(t, err)
			assert.True(t, IsKind(err, ErrInvalidSignature), "kind of %v", err)
			assert.ErrorContains(t, err, `command "root x": `)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("valid signature", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "root"}
		err := root.Register(nil, &Command{
			Name: "copy",
			Params: []Param{
				{Name: "src", Kind: Positional, Required: true},
				{Name: "dst", Kind: Positional},
				{Name: "force", Short: "f", Kind: Flag, Default: "true"},
				{Name: "mode", Short: "m", Kind: Option, Default: "0644"},
			},
			Exec: noop,
		})
		require.NoError(t, err)
	})
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	err := NewError(ErrUsage, errors.New("bad flag"))
	assert.Equal(t, "bad flag", err.Error())
	assert.True(t, IsKind(err, ErrUsage))
	assert.False(t, IsKind(err, ErrOperation))
	assert.False(t, IsKind(errors.New("plain"), ErrUsage))
	assert.Equal(t, "usage error: <nil>", NewError(ErrUsage, nil).Error())
	assert.Equal(t, "unknown command", ErrUnknownCommand.String())

	var exitErr *ExitError
	require.ErrorAs(t, Exit(3), &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Equal(t, "exit code 3", exitErr.Error())
}
