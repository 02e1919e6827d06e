package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// setter assigns a string value to one setting.
type setter func(cfg *Config, value string) error

func intSetter(field func(*Config) *int) setter {
	return func(cfg *Config, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		*field(cfg) = n
		return nil
	}
}

func boolSetter(field func(*Config) *bool) setter {
	return func(cfg *Config, value string) error {
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		*field(cfg) = b
		return nil
	}
}

func stringSetter(field func(*Config) *string) setter {
	return func(cfg *Config, value string) error {
		*field(cfg) = value
		return nil
	}
}

// settings maps dotted setting keys to their setters.
var settings = map[string]setter{
	"editor.indent_width":     intSetter(func(c *Config) *int { return &c.Editor.IndentWidth }),
	"editor.auto_indent":      boolSetter(func(c *Config) *bool { return &c.Editor.AutoIndent }),
	"editor.strict_commands":  boolSetter(func(c *Config) *bool { return &c.Editor.StrictCommands }),
	"editor.command_capacity": intSetter(func(c *Config) *int { return &c.Editor.CommandCapacity }),
	"editor.max_line_bytes":   intSetter(func(c *Config) *int { return &c.Editor.MaxLineBytes }),
	"log.level":               stringSetter(func(c *Config) *string { return &c.Log.Level }),
	"log.file":                stringSetter(func(c *Config) *string { return &c.Log.File }),
	"log.max_size_mb":         intSetter(func(c *Config) *int { return &c.Log.MaxSizeMB }),
	"log.max_backups":         intSetter(func(c *Config) *int { return &c.Log.MaxBackups }),
	"log.max_age_days":        intSetter(func(c *Config) *int { return &c.Log.MaxAgeDays }),
	"log.compress":            boolSetter(func(c *Config) *bool { return &c.Log.Compress }),
}

// Keys returns every setting key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns a setting by its dotted key, e.g. "editor.indent_width".
func (c *Config) Set(key, value string) error {
	set, ok := settings[key]
	if !ok {
		return fmt.Errorf("%s: %w", key, ErrUnknownKey)
	}
	if err := set(c, value); err != nil {
		return &ValidationError{Key: key, Value: value, Message: err.Error()}
	}
	return nil
}

// EnvName converts a setting key to its environment variable,
// e.g. editor.indent_width to PADVI_EDITOR_INDENT_WIDTH.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ApplyEnv overrides settings from environment variables resolved by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for _, key := range Keys() {
		val, ok := lookup(EnvName(key))
		if !ok {
			continue
		}
		if err := cfg.Set(key, val); err != nil {
			return fmt.Errorf("environment %s: %w", EnvName(key), err)
		}
	}
	return nil
}

// parseBool accepts the usual spellings of true and false.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func osLookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
