package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/padvi/internal/fileio"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PADVI_"

// Loader resolves a Config from defaults, a file and the environment.
type Loader struct {
	fs     fileio.FileSystem
	lookup func(string) (string, bool)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS reads config files through fsys.
func WithFS(fsys fileio.FileSystem) LoaderOption {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithEnv resolves environment overrides through lookup.
// A nil lookup disables environment overrides.
func WithEnv(lookup func(string) (string, bool)) LoaderOption {
	return func(l *Loader) {
		l.lookup = lookup
	}
}

// NewLoader creates a loader reading the OS file system and environment.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:     fileio.NewOSFS(),
		lookup: osLookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the defaults overlaid with the file at path and then the
// environment, validated. An empty path or a missing file skips the file
// layer.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := l.loadFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if l.lookup != nil {
		if err := ApplyEnv(cfg, l.lookup); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile decodes the file at path onto cfg.
func (l *Loader) loadFile(cfg *Config, path string) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // File doesn't exist, not an error
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return decodeTOML(cfg, path, data)
	case ".yaml", ".yml":
		return decodeYAML(cfg, path, data)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

func decodeTOML(cfg *Config, path string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: path, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	var serr *toml.StrictMissingError
	switch {
	case errors.As(err, &derr):
		perr.Line, perr.Column = derr.Position()
	case errors.As(err, &serr) && len(serr.Errors) > 0:
		perr.Line, perr.Column = serr.Errors[0].Position()
		perr.Message = "unknown key " + strings.Join(serr.Errors[0].Key(), ".")
	}
	return perr
}

func decodeYAML(cfg *Config, path string, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	perr := &ParseError{Path: path, Message: err.Error(), Err: err}
	var terr *yaml.TypeError
	if errors.As(err, &terr) && len(terr.Errors) > 0 {
		perr.Message = terr.Errors[0]
	}
	return perr
}
