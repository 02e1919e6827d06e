package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all padvi settings.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// EditorConfig contains editing behavior settings.
type EditorConfig struct {
	// IndentWidth is the indent unit used by Tab, >>, << and auto-indent.
	IndentWidth int `toml:"indent_width" yaml:"indent_width"`

	// AutoIndent indents new lines opened by Enter, o and O.
	AutoIndent bool `toml:"auto_indent" yaml:"auto_indent"`

	// StrictCommands reports unknown ":" commands instead of quitting.
	StrictCommands bool `toml:"strict_commands" yaml:"strict_commands"`

	// CommandCapacity is the size of the command-line buffer in bytes.
	CommandCapacity int `toml:"command_capacity" yaml:"command_capacity"`

	// MaxLineBytes caps the buffer of a single line.
	MaxLineBytes int `toml:"max_line_bytes" yaml:"max_line_bytes"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level      string `toml:"level" yaml:"level"`
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `toml:"compress" yaml:"compress"`
}

// Defaults.
const (
	DefaultIndentWidth     = 4
	DefaultCommandCapacity = 64
	DefaultMaxLineBytes    = 1 << 30
	DefaultLogLevel        = "info"
)

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			IndentWidth:     DefaultIndentWidth,
			AutoIndent:      true,
			CommandCapacity: DefaultCommandCapacity,
			MaxLineBytes:    DefaultMaxLineBytes,
		},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs ValidationErrors
	if c.Editor.IndentWidth <= 0 {
		errs = append(errs, &ValidationError{Key: "editor.indent_width", Value: c.Editor.IndentWidth, Message: "must be positive"})
	}
	if c.Editor.CommandCapacity <= 0 {
		errs = append(errs, &ValidationError{Key: "editor.command_capacity", Value: c.Editor.CommandCapacity, Message: "must be positive"})
	}
	if c.Editor.MaxLineBytes < 2 {
		errs = append(errs, &ValidationError{Key: "editor.max_line_bytes", Value: c.Editor.MaxLineBytes, Message: "must be at least 2"})
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, &ValidationError{Key: "log.level", Value: c.Log.Level, Message: "must be one of debug, info, warn, error"})
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, &ValidationError{Key: "log", Message: "rotation limits must not be negative"})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UserConfigDir returns the padvi configuration directory.
func UserConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "padvi")
}

// DefaultPath returns the first existing config file in the user
// configuration directory, preferring TOML. It returns "" when none exists.
func DefaultPath() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// String renders the config for debug logs.
func (c *Config) String() string {
	return fmt.Sprintf("indent=%d auto_indent=%t strict=%t cmd_cap=%d log=%s",
		c.Editor.IndentWidth, c.Editor.AutoIndent, c.Editor.StrictCommands,
		c.Editor.CommandCapacity, c.Log.Level)
}
