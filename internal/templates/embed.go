package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed files
var embedded embed.FS

// Embedded returns the template root compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		// The directory is part of the binary; Sub only fails on a bad path.
		panic(err)
	}
	return sub
}

// Default returns a registry over the embedded templates.
func Default() *Registry {
	return New(Embedded())
}

// FromDir returns a registry over an on-disk template root laid out as
// <template>/<language>/.
func FromDir(dir string) (*Registry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory %s is not a directory", dir)
	}
	return New(os.DirFS(dir)), nil
}
