package fileio

import (
	"io/fs"
	"os"
)

// FileInfo is the subset of file metadata the store needs.
type FileInfo struct {
	Size  int64
	Mode  fs.FileMode
	IsDir bool
}

// FileSystem abstracts the file operations used by Store, so the
// editor can run against the OS or an in-memory tree.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	Stat(path string) (FileInfo, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
}

// OSFS implements FileSystem using the operating system's file system.
type OSFS struct{}

// NewOSFS creates a new OS file system.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Ensure OSFS implements FileSystem.
var _ FileSystem = (*OSFS)(nil)

// ReadFile reads the entire file content.
func (f *OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating it if necessary.
func (f *OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Stat returns file information.
func (f *OSFS) Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{Size: info.Size(), Mode: info.Mode(), IsDir: info.IsDir()}, nil
}

// Rename renames (moves) a file.
func (f *OSFS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Remove removes a file.
func (f *OSFS) Remove(path string) error {
	return os.Remove(path)
}
