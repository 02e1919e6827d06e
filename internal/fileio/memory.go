package fileio

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
)

// MemFS implements FileSystem in memory. It is used by tests.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu       sync.RWMutex
	files    map[string]*memFile
	dirs     map[string]bool
	readOnly bool
}

type memFile struct {
	content []byte
	mode    fs.FileMode
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]*memFile),
		dirs:  map[string]bool{"/": true},
	}
}

// Ensure MemFS implements FileSystem.
var _ FileSystem = (*MemFS)(nil)

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: syscall.EISDIR}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}

	// Return a copy to prevent modification
	return append([]byte(nil), f.content...), nil
}

// WriteFile writes data to a file, creating it if necessary.
func (m *MemFS) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = cleanPath(filePath)
	if m.readOnly {
		return &fs.PathError{Op: "write", Path: filePath, Err: fs.ErrPermission}
	}
	if m.dirs[filePath] {
		return &fs.PathError{Op: "write", Path: filePath, Err: syscall.EISDIR}
	}
	if dir := path.Dir(filePath); !m.dirs[dir] {
		return &fs.PathError{Op: "write", Path: filePath, Err: fs.ErrNotExist}
	}

	m.files[filePath] = &memFile{
		content: append([]byte(nil), data...),
		mode:    perm,
	}
	return nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if f, ok := m.files[filePath]; ok {
		return FileInfo{Size: int64(len(f.content)), Mode: f.mode}, nil
	}
	if m.dirs[filePath] {
		return FileInfo{Mode: fs.ModeDir | 0755, IsDir: true}, nil
	}
	return FileInfo{}, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// Rename moves a file.
func (m *MemFS) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldPath = cleanPath(oldPath)
	newPath = cleanPath(newPath)

	f, ok := m.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if m.dirs[newPath] {
		return &fs.PathError{Op: "rename", Path: newPath, Err: syscall.EISDIR}
	}
	if !m.dirs[path.Dir(newPath)] {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}

	m.files[newPath] = f
	delete(m.files, oldPath)
	return nil
}

// Remove removes a file.
func (m *MemFS) Remove(filePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = cleanPath(filePath)
	if _, ok := m.files[filePath]; !ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	delete(m.files, filePath)
	return nil
}

// MkdirAll creates a directory and all parent directories.
func (m *MemFS) MkdirAll(dirPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for p := cleanPath(dirPath); ; p = path.Dir(p) {
		m.dirs[p] = true
		if p == "/" {
			return
		}
	}
}

// AddFile is a convenience method for adding files during setup.
func (m *MemFS) AddFile(filePath string, content string) {
	filePath = cleanPath(filePath)
	m.MkdirAll(path.Dir(filePath))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filePath] = &memFile{content: []byte(content), mode: 0644}
}

// SetReadOnly makes every write fail with fs.ErrPermission.
func (m *MemFS) SetReadOnly(readOnly bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readOnly = readOnly
}

// Content returns a file's content as a string, and whether it exists.
func (m *MemFS) Content(filePath string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[cleanPath(filePath)]
	if !ok {
		return "", false
	}
	return string(f.content), true
}

// Files returns all file paths in the file system.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// cleanPath normalizes a path.
func cleanPath(p string) string {
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
