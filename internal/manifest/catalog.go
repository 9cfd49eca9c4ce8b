package manifest

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Package names the scaffolder knows about.
const (
	PkgCore         = "@shadow-js/core"
	PkgRouter       = "@shadow-js/router"
	PkgVitePlugin   = "@shadow-js/vite"
	PkgVite         = "vite"
	PkgTypeScript   = "typescript"
	PkgTailwind     = "tailwindcss"
	PkgTailwindVite = "@tailwindcss/vite"
)

// Catalog maps package names to the version range written into manifests.
type Catalog map[string]string

// DefaultCatalog returns the version ranges shipped with this release.
func DefaultCatalog() Catalog {
	return Catalog{
		PkgCore:         "^0.1.0",
		PkgRouter:       "^0.1.0",
		PkgTailwind:     "^4.0.0",
		PkgTailwindVite: "^4.0.0",
		PkgVitePlugin:   "^0.3.0",
		PkgVite:         "^5.1.4",
		PkgTypeScript:   "^5.5.4",
	}
}

// WithOverrides returns a copy of the catalog with the given ranges
// replaced. Only known packages may be overridden.
func (c Catalog) WithOverrides(overrides map[string]string) (Catalog, error) {
	out := make(Catalog, len(c))
	for name, rng := range c {
		out[name] = rng
	}

	for name, rng := range overrides {
		if _, known := c[name]; !known {
			return nil, fmt.Errorf("unknown package in catalog override: %s", name)
		}
		out[name] = rng
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks every range parses as a semver constraint.
func (c Catalog) Validate() error {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := semver.NewConstraint(c[name]); err != nil {
			return fmt.Errorf("invalid version range %q for %s: %w", c[name], name, err)
		}
	}
	return nil
}

// Range returns the version range for name.
func (c Catalog) Range(name string) (string, error) {
	rng, ok := c[name]
	if !ok {
		return "", fmt.Errorf("package %s missing from catalog", name)
	}
	return rng, nil
}
