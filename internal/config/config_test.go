package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/padvi/internal/fileio"
)

func noEnv(string) (string, bool) { return "", false }

func mapEnv(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Editor.IndentWidth)
	assert.True(t, cfg.Editor.AutoIndent)
	assert.False(t, cfg.Editor.StrictCommands)
	assert.Equal(t, 64, cfg.Editor.CommandCapacity)
	assert.Equal(t, 1<<30, cfg.Editor.MaxLineBytes)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		key    string
	}{
		{"zero indent", func(c *Config) { c.Editor.IndentWidth = 0 }, "editor.indent_width"},
		{"negative capacity", func(c *Config) { c.Editor.CommandCapacity = -1 }, "editor.command_capacity"},
		{"tiny lines", func(c *Config) { c.Editor.MaxLineBytes = 1 }, "editor.max_line_bytes"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"negative rotation", func(c *Config) { c.Log.MaxBackups = -2 }, "log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.key, verr.Key)
		})
	}
}

func TestLoadTOML(t *testing.T) {
	mfs := fileio.NewMemFS()
	mfs.AddFile("/cfg/config.toml", `
[editor]
indent_width = 2
strict_commands = true

[log]
level = "debug"
`)
	cfg, err := NewLoader(WithFS(mfs), WithEnv(noEnv)).Load("/cfg/config.toml")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Editor.IndentWidth)
	assert.True(t, cfg.Editor.StrictCommands)
	assert.True(t, cfg.Editor.AutoIndent, "unset keys keep defaults")
	assert.Equal(t, 64, cfg.Editor.CommandCapacity)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadYAML(t *testing.T) {
	mfs := fileio.NewMemFS()
	mfs.AddFile("/cfg/config.yml", "editor:\n  auto_indent: false\n  command_capacity: 16\nlog:\n  compress: false\n")

	cfg, err := NewLoader(WithFS(mfs), WithEnv(noEnv)).Load("/cfg/config.yml")
	require.NoError(t, err)
	assert.False(t, cfg.Editor.AutoIndent)
	assert.Equal(t, 16, cfg.Editor.CommandCapacity)
	assert.False(t, cfg.Log.Compress)
	assert.Equal(t, 4, cfg.Editor.IndentWidth)
}

func TestLoadEmptyAndMissing(t *testing.T) {
	mfs := fileio.NewMemFS()
	mfs.AddFile("/empty.yaml", "")
	l := NewLoader(WithFS(mfs), WithEnv(noEnv))

	for _, path := range []string{"", "/missing.toml", "/empty.yaml"} {
		cfg, err := l.Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, Default(), cfg, path)
	}
}

func TestLoadErrors(t *testing.T) {
	mfs := fileio.NewMemFS()
	mfs.AddFile("/bad.toml", "[editor\nindent_width = 2\n")
	mfs.AddFile("/unknown.toml", "[editor]\ntab_size = 8\n")
	mfs.AddFile("/bad.yaml", "editor:\n  indent_width: wide\n")
	mfs.AddFile("/invalid.toml", "[editor]\nindent_width = 0\n")
	mfs.AddFile("/config.json", "{}")
	l := NewLoader(WithFS(mfs), WithEnv(noEnv))

	var perr *ParseError

	_, err := l.Load("/bad.toml")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "/bad.toml", perr.Path)
	assert.Positive(t, perr.Line)

	_, err = l.Load("/unknown.toml")
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "tab_size")

	_, err = l.Load("/bad.yaml")
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "/bad.yaml")

	_, err = l.Load("/invalid.toml")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = l.Load("/config.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEnvOverridesFile(t *testing.T) {
	mfs := fileio.NewMemFS()
	mfs.AddFile("/c.toml", "[editor]\nindent_width = 2\n")
	env := mapEnv(map[string]string{
		"PADVI_EDITOR_INDENT_WIDTH":    "8",
		"PADVI_EDITOR_STRICT_COMMANDS": "yes",
		"PADVI_LOG_FILE":               "/tmp/p.log",
	})

	cfg, err := NewLoader(WithFS(mfs), WithEnv(env)).Load("/c.toml")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Editor.IndentWidth)
	assert.True(t, cfg.Editor.StrictCommands)
	assert.Equal(t, "/tmp/p.log", cfg.Log.File)
}

func TestEnvInvalidValue(t *testing.T) {
	env := mapEnv(map[string]string{"PADVI_EDITOR_AUTO_INDENT": "maybe"})
	_, err := NewLoader(WithFS(fileio.NewMemFS()), WithEnv(env)).Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PADVI_EDITOR_AUTO_INDENT")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestSet(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Set("editor.max_line_bytes", "4096"))
	assert.Equal(t, 4096, cfg.Editor.MaxLineBytes)

	assert.ErrorIs(t, cfg.Set("editor.theme", "dark"), ErrUnknownKey)
	assert.Error(t, cfg.Set("editor.indent_width", "four"))
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "PADVI_EDITOR_INDENT_WIDTH", EnvName("editor.indent_width"))
	assert.Equal(t, "PADVI_LOG_MAX_AGE_DAYS", EnvName("log.max_age_days"))
	assert.Contains(t, Keys(), "log.compress")
}

func TestClone(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Editor.IndentWidth = 9
	assert.Equal(t, 4, a.Editor.IndentWidth)
}
