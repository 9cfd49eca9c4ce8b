package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/shadow-js/create-shadow-app/internal/filesystem"
	"github.com/shadow-js/create-shadow-app/internal/manifest"
	"github.com/shadow-js/create-shadow-app/internal/models"
	"github.com/shadow-js/create-shadow-app/internal/templates"
)

const (
	htmlFile       = "index.html"
	styleFile      = "src/style.css"
	tailwindSource = "src/tailwind.css"
)

var entryScript = regexp.MustCompile(`\bsrc/main\.[jt]sx\b`)

// copySkipper leaves out template metadata and anything the generated
// project would ignore anyway (node_modules, dist, .DS_Store, ...).
func copySkipper(root string) filesystem.SkipFunc {
	ignore := gitignore.New(strings.NewReader(manifest.GitIgnore), root, nil)

	return func(rel string, isDir bool) bool {
		if templates.IsMetadata(rel) {
			return true
		}
		if match := ignore.Relative(filepath.FromSlash(rel), isDir); match != nil && match.Ignore() {
			return true
		}
		return false
	}
}

// writeFile writes content at rel below root.
func writeFile(fsys filesystem.FileSystem, root, rel string, content []byte) error {
	target := filepath.Join(root, filepath.FromSlash(rel))
	if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := fsys.WriteFile(target, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}

// AdaptHTML points every entry script reference at the language's source
// extension.
func AdaptHTML(content []byte, lang models.Language) []byte {
	return entryScript.ReplaceAll(content, []byte("src/main."+lang.SourceExt()))
}

// adaptHTML rewrites index.html in place. A template without one is
// reported, not fatal.
func adaptHTML(fsys filesystem.FileSystem, root string, lang models.Language) (warning string, err error) {
	path := filepath.Join(root, htmlFile)

	data, err := fsys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "index.html not found in template; script reference not adapted", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", htmlFile, err)
	}

	return "", writeFile(fsys, root, htmlFile, AdaptHTML(data, lang))
}

// swapStylesheet replaces the default stylesheet with the Tailwind source
// and removes the source. Without a Tailwind source the default stays.
func swapStylesheet(fsys filesystem.FileSystem, root string) (warning string, err error) {
	source := filepath.Join(root, filepath.FromSlash(tailwindSource))

	data, err := fsys.ReadFile(source)
	if errors.Is(err, fs.ErrNotExist) {
		return "Tailwind stylesheet not found in template; keeping the default stylesheet", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", tailwindSource, err)
	}

	if err := writeFile(fsys, root, styleFile, data); err != nil {
		return "", err
	}
	if err := fsys.Remove(source); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", tailwindSource, err)
	}
	return "", nil
}

// dropTailwindSource removes the Tailwind stylesheet from projects that
// do not use Tailwind.
func dropTailwindSource(fsys filesystem.FileSystem, root string) error {
	source := filepath.Join(root, filepath.FromSlash(tailwindSource))
	if !fsys.Exists(source) {
		return nil
	}
	if err := fsys.Remove(source); err != nil {
		return fmt.Errorf("failed to remove %s: %w", tailwindSource, err)
	}
	return nil
}

// listFiles returns every file below root as sorted slash paths.
func listFiles(fsys filesystem.FileSystem, root string) ([]string, error) {
	var files []string
	err := fsys.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list project files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
