// Package fileio loads and saves documents as newline-delimited lines.
//
// Lines keep their trailing newline, so saving the lines of an unedited
// load reproduces the file byte for byte.
package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrIsDirectory is returned when the path names a directory.
var ErrIsDirectory = errors.New("is a directory")

// DefaultPerm is the mode of newly created files.
const DefaultPerm fs.FileMode = 0644

// Error records a failed load or save.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Store reads and writes documents through a FileSystem.
type Store struct {
	fs FileSystem
}

// NewStore creates a store over fsys. A nil fsys selects the OS.
func NewStore(fsys FileSystem) *Store {
	if fsys == nil {
		fsys = NewOSFS()
	}
	return &Store{fs: fsys}
}

// Load reads path and splits it into lines, each keeping its newline.
// A missing file yields no lines and no error.
func (s *Store) Load(path string) ([][]byte, error) {
	if path == "" {
		return nil, nil
	}
	if info, err := s.fs.Stat(path); err == nil && info.IsDir {
		return nil, &Error{Op: "load", Path: path, Err: ErrIsDirectory}
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &Error{Op: "load", Path: path, Err: err}
	}
	return SplitLines(data), nil
}

// Save writes the lines verbatim to path and returns the byte count.
// The data goes to a temporary file in the same directory which then
// replaces path, so a failed save leaves the old content intact.
func (s *Store) Save(path string, lines [][]byte) (int64, error) {
	if path == "" {
		return 0, &Error{Op: "save", Path: path, Err: fs.ErrInvalid}
	}

	perm := DefaultPerm
	if info, err := s.fs.Stat(path); err == nil {
		if info.IsDir {
			return 0, &Error{Op: "save", Path: path, Err: ErrIsDirectory}
		}
		perm = info.Mode.Perm()
	}

	data := bytes.Join(lines, nil)
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := s.fs.WriteFile(tmp, data, perm); err != nil {
		return 0, &Error{Op: "save", Path: path, Err: err}
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp) // best-effort cleanup
		return 0, &Error{Op: "save", Path: path, Err: err}
	}
	return int64(len(data)), nil
}

// SplitLines splits data after every newline. A final line without a
// newline is kept; empty data yields no lines.
func SplitLines(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	lines := bytes.SplitAfter(data, []byte{'\n'})
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
