package editor

import (
	"github.com/dshills/padvi/internal/config"
	"github.com/dshills/padvi/internal/engine/indent"
	"github.com/dshills/padvi/internal/engine/line"
	"github.com/dshills/padvi/internal/input/mode"
)

// Options are the editing behaviors that may change at runtime.
type Options struct {
	IndentWidth     int
	AutoIndent      bool
	StrictCommands  bool
	CommandCapacity int
	MaxLineBytes    int
}

// DefaultOptions returns the built-in editing behavior.
func DefaultOptions() Options {
	return Options{
		IndentWidth:     indent.DefaultWidth,
		AutoIndent:      true,
		CommandCapacity: mode.DefaultCommandCapacity,
		MaxLineBytes:    line.DefaultMaxCapacity,
	}
}

// OptionsFromConfig extracts the editor options from a config.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		IndentWidth:     cfg.Editor.IndentWidth,
		AutoIndent:      cfg.Editor.AutoIndent,
		StrictCommands:  cfg.Editor.StrictCommands,
		CommandCapacity: cfg.Editor.CommandCapacity,
		MaxLineBytes:    cfg.Editor.MaxLineBytes,
	}
}

// normalize replaces unusable values with defaults.
func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.IndentWidth <= 0 {
		o.IndentWidth = d.IndentWidth
	}
	if o.CommandCapacity <= 0 {
		o.CommandCapacity = d.CommandCapacity
	}
	if o.MaxLineBytes <= 0 {
		o.MaxLineBytes = d.MaxLineBytes
	}
	return o
}
