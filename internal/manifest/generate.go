package manifest

import (
	"fmt"

	"github.com/shadow-js/create-shadow-app/internal/models"
)

// File is a generated file, path relative to the project root.
type File struct {
	Path    string
	Content []byte
}

// Generate returns package.json, the vite config and, for TypeScript,
// tsconfig.json.
func Generate(opts models.Options, catalog Catalog) ([]File, error) {
	pkg, err := NewPackageJSON(opts, catalog)
	if err != nil {
		return nil, err
	}
	pkgData, err := marshalJSON(pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate package.json: %w", err)
	}

	viteData, err := RenderViteConfig(opts)
	if err != nil {
		return nil, err
	}

	files := []File{
		{Path: "package.json", Content: pkgData},
		{Path: ViteConfigPath(opts.Language), Content: viteData},
	}

	if opts.Language == models.LanguageTypeScript {
		tsData, err := marshalJSON(NewTSConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to generate tsconfig.json: %w", err)
		}
		files = append(files, File{Path: "tsconfig.json", Content: tsData})
	}

	return files, nil
}
