package manifest

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/shadow-js/create-shadow-app/internal/models"
)

// DevServerPort is the port written into the vite config.
const DevServerPort = 3000

const viteConfigTemplate = `import { defineConfig } from "vite";
{{- range .Imports }}
import {{ .Name }} from {{ .From | quote }};
{{- end }}

export default defineConfig({
  plugins: [{{ .Plugins | join ", " }}],
  server: {
    port: {{ .Port }},
  },
});
`

var viteTemplate = template.Must(
	template.New("vite.config").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(viteConfigTemplate),
)

type viteImport struct {
	Name string
	From string
}

type viteData struct {
	Imports []viteImport
	Plugins []string
	Port    int
}

// ViteConfigPath is the config file name for lang.
func ViteConfigPath(lang models.Language) string {
	return "vite.config." + lang.ConfigExt()
}

// RenderViteConfig renders the bundler config for opts.
func RenderViteConfig(opts models.Options) ([]byte, error) {
	data := viteData{
		Imports: []viteImport{{Name: "shadow", From: PkgVitePlugin}},
		Plugins: []string{"shadow()"},
		Port:    DevServerPort,
	}
	if opts.UseTailwind {
		data.Imports = append(data.Imports, viteImport{Name: "tailwindcss", From: PkgTailwindVite})
		data.Plugins = append(data.Plugins, "tailwindcss()")
	}

	var buf bytes.Buffer
	if err := viteTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render vite config: %w", err)
	}
	return buf.Bytes(), nil
}
