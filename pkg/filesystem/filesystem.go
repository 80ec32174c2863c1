// Package filesystem abstracts the filesystem operations the generator
// performs, so tests can substitute an in-memory implementation.
package filesystem

import "os"

// FileSystem defines filesystem operations for testability.
type FileSystem interface {
	// Stat returns file info.
	Stat(name string) (os.FileInfo, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// WriteFile writes data to a file.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// Chmod changes file permissions.
	Chmod(name string, mode os.FileMode) error

	// ReadFile reads a file.
	ReadFile(name string) ([]byte, error)

	// RemoveAll removes a path and any children.
	RemoveAll(path string) error

	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS-backed filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (fs *OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *OSFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (fs *OSFileSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

func (fs *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fs *OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (fs *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}
