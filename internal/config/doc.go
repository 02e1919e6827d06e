// Package config provides the configuration for padvi.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← PADVI_EDITOR_INDENT_WIDTH, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/padvi/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Config files are TOML (.toml) or YAML (.yaml, .yml); keys missing from
// a file keep their default values.
//
// # Basic Usage
//
//	cfg, err := config.NewLoader().Load(path)
//	if err != nil {
//	    return err
//	}
//	width := cfg.Editor.IndentWidth
//
// # Live Reload
//
// A Watcher reloads the file when it changes on disk and delivers the
// result on a channel, so the event loop applies it on its own goroutine:
//
//	w, err := config.NewWatcher(path, config.NewLoader(), config.WithNotify(wake))
//	for u := range w.Updates() {
//	    // u.Config or u.Err
//	}
package config
