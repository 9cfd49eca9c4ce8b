package filesystem

import (
	"io/fs"
)

// FileSystem is the write side of project materialization. Template sources
// are read through fs.FS; everything created for the new project goes
// through this interface so it can be swapped for MockFileSystem in tests.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	Remove(path string) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	RemoveAll(path string) error
	Rename(oldPath, newPath string) error

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)
	Abs(path string) (string, error)

	// File walking
	WalkDir(root string, fn fs.WalkDirFunc) error
}
