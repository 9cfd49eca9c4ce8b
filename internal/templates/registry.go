package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/shadow-js/create-shadow-app/internal/models"
)

// MetadataFile describes a template and is never copied into a project.
const MetadataFile = "TEMPLATE.md"

// ErrTemplateNotFound is returned when a (template, language) subtree is missing.
var ErrTemplateNotFound = errors.New("template not found")

// Template is one starter template as listed in the registry.
type Template struct {
	ID          models.TemplateID
	Title       string
	Description string
	Order       int
	Body        string
	Languages   []models.Language
}

// Label is the one-line form used in prompts and listings.
func (t Template) Label() string {
	if t.Description == "" {
		return t.Title
	}
	return t.Title + " - " + t.Description
}

// Supports reports whether the template ships a subtree for lang.
func (t Template) Supports(lang models.Language) bool {
	for _, l := range t.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

type metadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
}

// Registry lists and resolves templates below a root laid out as
// <template>/<language>/.
type Registry struct {
	root fs.FS
}

// New creates a registry over root.
func New(root fs.FS) *Registry {
	return &Registry{root: root}
}

// IsMetadata reports whether a relative path names a template metadata file.
func IsMetadata(rel string) bool {
	return path.Base(rel) == MetadataFile
}

// List returns the known templates found in the root, ordered by their
// metadata order and then id. Directories that are not a known template id
// are ignored.
func (r *Registry) List() ([]Template, error) {
	entries, err := fs.ReadDir(r.root, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	var result []Template
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := models.TemplateID(entry.Name())
		if !id.IsValid() {
			continue
		}

		tmpl, err := r.load(id)
		if err != nil {
			return nil, err
		}
		result = append(result, tmpl)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Get returns the metadata of a single template.
func (r *Registry) Get(id models.TemplateID) (Template, error) {
	info, err := fs.Stat(r.root, string(id))
	if err != nil || !info.IsDir() {
		return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return r.load(id)
}

func (r *Registry) load(id models.TemplateID) (Template, error) {
	tmpl := Template{ID: id, Title: string(id)}

	data, err := fs.ReadFile(r.root, path.Join(string(id), MetadataFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Metadata is optional
	case err != nil:
		return Template{}, fmt.Errorf("failed to read %s metadata: %w", id, err)
	default:
		var meta metadata
		rest, err := frontmatter.Parse(bytes.NewReader(data), &meta)
		if err != nil {
			return Template{}, fmt.Errorf("failed to parse %s metadata: %w", id, err)
		}
		if meta.Title != "" {
			tmpl.Title = meta.Title
		}
		tmpl.Description = meta.Description
		tmpl.Order = meta.Order
		tmpl.Body = strings.TrimSpace(string(rest))
	}

	for _, lang := range models.Languages() {
		info, err := fs.Stat(r.root, path.Join(string(id), string(lang)))
		if err == nil && info.IsDir() {
			tmpl.Languages = append(tmpl.Languages, lang)
		}
	}

	return tmpl, nil
}

// Resolve returns the subtree to copy for (id, lang). The error names the
// expected path when it is missing.
func (r *Registry) Resolve(id models.TemplateID, lang models.Language) (fs.FS, error) {
	dir := path.Join(string(id), string(lang))

	info, err := fs.Stat(r.root, dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, dir)
	}

	sub, err := fs.Sub(r.root, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", dir, err)
	}
	return sub, nil
}
