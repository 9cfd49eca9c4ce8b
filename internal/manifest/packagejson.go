package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shadow-js/create-shadow-app/internal/models"
)

// PackageJSON is the generated npm manifest. Field order is the key order
// of the written file.
type PackageJSON struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Scripts         Scripts           `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Scripts are the npm run targets.
type Scripts struct {
	Dev     string `json:"dev"`
	Build   string `json:"build"`
	Preview string `json:"preview"`
}

// DependencyNames returns the runtime and development package names the
// options imply.
func DependencyNames(opts models.Options) (deps, devDeps []string) {
	deps = []string{PkgCore}
	if opts.UseRouter {
		deps = append(deps, PkgRouter)
	}
	if opts.UseTailwind {
		deps = append(deps, PkgTailwind, PkgTailwindVite)
	}

	devDeps = []string{PkgVitePlugin, PkgVite}
	if opts.Language == models.LanguageTypeScript {
		devDeps = append(devDeps, PkgTypeScript)
	}
	return deps, devDeps
}

// NewPackageJSON builds the manifest for opts with ranges from catalog.
func NewPackageJSON(opts models.Options, catalog Catalog) (*PackageJSON, error) {
	deps, devDeps := DependencyNames(opts)

	pkg := &PackageJSON{
		Name:    opts.ProjectName,
		Private: true,
		Version: "0.0.0",
		Type:    "module",
		Scripts: Scripts{
			Dev:     "vite",
			Build:   "vite build",
			Preview: "vite preview",
		},
		Dependencies:    make(map[string]string, len(deps)),
		DevDependencies: make(map[string]string, len(devDeps)),
	}

	for _, name := range deps {
		rng, err := catalog.Range(name)
		if err != nil {
			return nil, err
		}
		pkg.Dependencies[name] = rng
	}
	for _, name := range devDeps {
		rng, err := catalog.Range(name)
		if err != nil {
			return nil, err
		}
		pkg.DevDependencies[name] = rng
	}

	return pkg, nil
}

// marshalJSON writes v with two-space indentation and a trailing newline.
func marshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}
