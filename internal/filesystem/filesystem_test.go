package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func templateFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":          {Data: []byte("<div id=\"root\"></div>\n"), Mode: 0444},
		"src/main.tsx":        {Data: []byte("render(App, root);\n"), Mode: 0444},
		"src/App.tsx":         {Data: []byte("export default function App() {}\n"), Mode: 0444},
		"scripts/setup.sh":    {Data: []byte("#!/bin/sh\n"), Mode: 0755},
		"node_modules/x/a.js": {Data: []byte("junk")},
	}
}

func TestCopyFS_MockFileSystem(t *testing.T) {
	mfs := NewMockFileSystem()

	skip := func(rel string, isDir bool) bool {
		return isDir && rel == "node_modules"
	}

	copied, err := CopyFS(mfs, templateFS(), "/workspace/demo", skip)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"index.html", "scripts/setup.sh", "src/App.tsx", "src/main.tsx"}, copied)

	data, err := mfs.ReadFile("/workspace/demo/src/main.tsx")
	require.NoError(t, err)
	require.Equal(t, "render(App, root);\n", string(data))

	require.False(t, mfs.Exists("/workspace/demo/node_modules"))

	info, err := mfs.Stat("/workspace/demo/index.html")
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0644), info.Mode().Perm())

	info, err = mfs.Stat("/workspace/demo/scripts/setup.sh")
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0755), info.Mode().Perm())
}

func TestCopyFS_OSFileSystem(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "demo")

	_, err := CopyFS(NewOSFileSystem(), templateFS(), dest, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dest, "src", "App.tsx"))
	require.NoError(t, err)
	require.Equal(t, "export default function App() {}\n", string(data))

	// Copied files stay writable so later steps can rewrite them.
	require.NoError(t, os.WriteFile(filepath.Join(dest, "index.html"), []byte("x"), 0644))
}

func TestCopyFS_WriteFailure(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.WriteFileError = func(path string) error {
		if strings.HasSuffix(path, "App.tsx") {
			return errors.New("disk full")
		}
		return nil
	}

	_, err := CopyFS(mfs, templateFS(), "/workspace/demo", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}

func TestMockFileSystem_RenameTree(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/workspace/.stage/src/main.tsx", []byte("main"))
	mfs.AddFile("/workspace/.stage/package.json", []byte("{}"))

	require.NoError(t, mfs.Rename("/workspace/.stage", "/workspace/demo"))

	require.False(t, mfs.Exists("/workspace/.stage"))
	require.Equal(t, []string{"package.json", "src/", "src/main.tsx"}, mfs.Tree("/workspace/demo"))
}

func TestMockFileSystem_RenameRefusesNonEmptyTarget(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/workspace/.stage/a.txt", []byte("a"))
	mfs.AddFile("/workspace/demo/b.txt", []byte("b"))

	err := mfs.Rename("/workspace/.stage", "/workspace/demo")
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrExist))

	var linkErr *os.LinkError
	require.ErrorAs(t, err, &linkErr)
	require.Equal(t, "rename", linkErr.Op)
	require.Equal(t, "/workspace/demo", linkErr.New)
}

func TestMockFileSystem_RemoveAll(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/workspace/demo/src/main.tsx", []byte("main"))
	mfs.AddFile("/workspace/demo-other/keep.txt", []byte("keep"))

	require.NoError(t, mfs.RemoveAll("/workspace/demo"))
	require.NoError(t, mfs.RemoveAll("/workspace/missing"))

	require.False(t, mfs.Exists("/workspace/demo"))
	require.True(t, mfs.Exists("/workspace/demo-other/keep.txt"))
}

func TestMockFileSystem_WriteFileNeedsParent(t *testing.T) {
	mfs := NewMockFileSystem()

	err := mfs.WriteFile("/workspace/missing/file.txt", []byte("x"), 0644)
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMockFileSystem_WalkDirSkipDir(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/workspace/demo/.git/HEAD", []byte("ref"))
	mfs.AddFile("/workspace/demo/src/main.tsx", []byte("main"))

	var visited []string
	err := mfs.WalkDir("/workspace/demo", func(path string, entry fs.DirEntry, err error) error {
		if entry.IsDir() && entry.Name() == ".git" {
			return fs.SkipDir
		}
		if !entry.IsDir() {
			visited = append(visited, path)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/workspace/demo/src/main.tsx"}, visited)
}

func TestMockFileSystem_Abs(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.SetCurrentDir("/home/dev")

	abs, err := mfs.Abs("demo")
	require.NoError(t, err)
	require.Equal(t, "/home/dev/demo", abs)

	abs, err = mfs.Abs("/tmp/../srv/demo")
	require.NoError(t, err)
	require.Equal(t, "/srv/demo", abs)
}
