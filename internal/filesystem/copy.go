package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
)

// SkipFunc reports whether a source entry (slash-separated path relative to
// the source root) is left out of a copy. Skipping a directory skips its
// whole subtree.
type SkipFunc func(rel string, isDir bool) bool

// CopyFS copies every file of src below destRoot, keeping the directory
// structure and the file bytes. Modes are normalized to 0644 (0755 when any
// executable bit is set) since embedded files report read-only modes.
// It returns the relative paths of the copied files in walk order.
func CopyFS(dst FileSystem, src fs.FS, destRoot string, skip SkipFunc) ([]string, error) {
	var copied []string

	err := fs.WalkDir(src, ".", func(rel string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if rel == "." {
			return dst.MkdirAll(destRoot, 0755)
		}

		if skip != nil && skip(rel, entry.IsDir()) {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(destRoot, filepath.FromSlash(rel))

		if entry.IsDir() {
			if err := dst.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		data, err := fs.ReadFile(src, rel)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}

		perm := fs.FileMode(0644)
		if info, err := entry.Info(); err == nil && info.Mode().Perm()&0111 != 0 {
			perm = 0755
		}

		if err := dst.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(target), err)
		}
		if err := dst.WriteFile(target, data, perm); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		copied = append(copied, path.Clean(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return copied, nil
}
