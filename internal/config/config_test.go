package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("all keys", func(t *testing.T) {
		t.Parallel()
		cfg, err := Decode([]byte("content_dir: /srv/lessons\nno_color: true\n"))
		require.NoError(t, err)
		assert.Equal(t, Config{ContentDir: "/srv/lessons", NoColor: true}, cfg)
	})
	t.Run("weakly typed booleans", func(t *testing.T) {
		t.Parallel()
		cfg, err := Decode([]byte("no_color: \"1\"\n"))
		require.NoError(t, err)
		assert.True(t, cfg.NoColor)
	})
	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		cfg, err := Decode(nil)
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})
	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte("content_directory: /tmp\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "content_directory")
	})
	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte("content_dir: [unterminated\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "parse yaml")
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), env(nil))
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})
	t.Run("environment overrides file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("content_dir: /from/file\n"), 0o644))

		cfg, err := Load(path, env(map[string]string{
			"LINUX101_CONTENT_DIR": "/from/env",
			"NO_COLOR":             "1",
		}))
		require.NoError(t, err)
		assert.Equal(t, "/from/env", cfg.ContentDir)
		assert.True(t, cfg.NoColor)
	})
	t.Run("bad file is reported with its path", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0o644))

		_, err := Load(path, env(nil))
		require.Error(t, err)
		assert.ErrorContains(t, err, path)
	})
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/etc/linux101.yaml", DefaultPath(env(map[string]string{"LINUX101_CONFIG": "/etc/linux101.yaml"})))
}
