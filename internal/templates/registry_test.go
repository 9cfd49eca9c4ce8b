package templates

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/shadow-js/create-shadow-app/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDefault_ListsEmbeddedTemplates(t *testing.T) {
	list, err := Default().List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.Equal(t, models.TemplateCounter, list[0].ID)
	require.Equal(t, "Counter - Simple counter app with interactive buttons", list[0].Label())
	require.Equal(t, models.TemplateTodo, list[1].ID)
	require.Equal(t, "Todo App - Interactive task management application", list[1].Label())

	for _, tmpl := range list {
		require.Equal(t, models.Languages(), tmpl.Languages, tmpl.ID)
		require.NotEmpty(t, tmpl.Body)
	}
}

func TestDefault_EveryVariantIsComplete(t *testing.T) {
	reg := Default()

	for _, id := range models.TemplateIDs() {
		for _, lang := range models.Languages() {
			sub, err := reg.Resolve(id, lang)
			require.NoError(t, err)

			for _, name := range []string{
				"index.html",
				"src/main." + lang.SourceExt(),
				"src/App." + lang.SourceExt(),
				"src/style.css",
				"src/tailwind.css",
			} {
				_, err := fs.Stat(sub, name)
				require.NoErrorf(t, err, "%s/%s is missing %s", id, lang, name)
			}

			main, err := fs.ReadFile(sub, "src/main."+lang.SourceExt())
			require.NoError(t, err)
			require.Contains(t, string(main), `throw new Error("Root element not found")`)
		}
	}
}

func TestResolve_MissingVariantNamesPath(t *testing.T) {
	reg := New(fstest.MapFS{
		"counter/ts/index.html": {Data: []byte("<html></html>")},
	})

	_, err := reg.Resolve(models.TemplateCounter, models.LanguageJavaScript)
	require.ErrorIs(t, err, ErrTemplateNotFound)
	require.Contains(t, err.Error(), "counter/js")

	_, err = reg.Resolve(models.TemplateTodo, models.LanguageTypeScript)
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestList_MetadataIsOptional(t *testing.T) {
	reg := New(fstest.MapFS{
		"todo/ts/index.html":    {Data: []byte("<html></html>")},
		"counter/js/index.html": {Data: []byte("<html></html>")},
		"counter/TEMPLATE.md":   {Data: []byte("---\ntitle: Clicker\norder: 5\n---\n")},
		"unknown/ts/index.html": {Data: []byte("<html></html>")},
		"README.md":             {Data: []byte("# templates")},
	})

	list, err := reg.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	// No metadata means order 0, which sorts first.
	require.Equal(t, models.TemplateTodo, list[0].ID)
	require.Equal(t, "todo", list[0].Label())
	require.Equal(t, []models.Language{models.LanguageTypeScript}, list[0].Languages)

	require.Equal(t, "Clicker", list[1].Label())
	require.True(t, list[1].Supports(models.LanguageJavaScript))
	require.False(t, list[1].Supports(models.LanguageTypeScript))
}

func TestList_InvalidFrontmatter(t *testing.T) {
	reg := New(fstest.MapFS{
		"counter/ts/index.html": {Data: []byte("<html></html>")},
		"counter/TEMPLATE.md":   {Data: []byte("---\ntitle: [unterminated\n---\n")},
	})

	_, err := reg.List()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse counter metadata")
}

func TestGet(t *testing.T) {
	tmpl, err := Default().Get(models.TemplateTodo)
	require.NoError(t, err)
	require.Equal(t, "Todo App", tmpl.Title)

	_, err = New(fstest.MapFS{}).Get(models.TemplateTodo)
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "counter", "ts", "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "counter", "ts", "index.html"), []byte("<html></html>"), 0644))

	reg, err := FromDir(dir)
	require.NoError(t, err)

	sub, err := reg.Resolve(models.TemplateCounter, models.LanguageTypeScript)
	require.NoError(t, err)
	data, err := fs.ReadFile(sub, "index.html")
	require.NoError(t, err)
	require.Equal(t, "<html></html>", string(data))

	_, err = FromDir(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestIsMetadata(t *testing.T) {
	require.True(t, IsMetadata("TEMPLATE.md"))
	require.True(t, IsMetadata("nested/TEMPLATE.md"))
	require.False(t, IsMetadata("README.md"))
}
