package create

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/shadow-js/create-shadow-app/internal/models"
	"github.com/shadow-js/create-shadow-app/internal/scaffold"
	"github.com/shadow-js/create-shadow-app/internal/templates"
	"github.com/stretchr/testify/require"
)

func TestRenderSuccess(t *testing.T) {
	opts := models.DefaultOptions()
	opts.InitGit = true

	out := RenderSuccess(opts, &scaffold.Result{
		ProjectPath:    "/workspace/my-shadow-app",
		Files:          []string{"package.json", "vite.config.ts"},
		Warnings:       []string{"Tailwind stylesheet not found in template; keeping the default stylesheet"},
		GitInitialized: true,
		RemoteURL:      "https://github.com/octo/my-shadow-app",
	})

	require.Contains(t, out, "cd my-shadow-app")
	require.Contains(t, out, "npm install")
	require.Contains(t, out, "npm run dev")
	require.Contains(t, out, "Warning:")
	require.Contains(t, out, DocsURL)

	snaps.MatchSnapshot(t, out)
}

func TestRenderSummary(t *testing.T) {
	opts := models.DefaultOptions()
	opts.UseRouter = true
	opts.InitGit = true
	opts.GitHubRepo = "octo/my-shadow-app"
	opts.Private = true

	out := RenderSummary(opts)
	require.Contains(t, out, "TypeScript")
	require.Contains(t, out, "octo/my-shadow-app (private)")

	snaps.MatchSnapshot(t, out)
}

func TestTemplateOptions_FilterByLanguage(t *testing.T) {
	list := []templates.Template{
		{ID: models.TemplateCounter, Title: "Counter", Description: "Simple counter", Languages: models.Languages()},
		{ID: models.TemplateTodo, Title: "Todo App", Languages: []models.Language{models.LanguageTypeScript}},
	}

	ts := TemplateOptions(list, models.LanguageTypeScript)
	require.Len(t, ts, 2)
	require.Equal(t, "Counter - Simple counter", ts[0].Key)
	require.Equal(t, models.TemplateTodo, ts[1].Value)

	js := TemplateOptions(list, models.LanguageJavaScript)
	require.Len(t, js, 1)
	require.Equal(t, models.TemplateCounter, js[0].Value)
}

func TestLanguageOptions(t *testing.T) {
	opts := LanguageOptions()
	require.Len(t, opts, 2)
	require.Equal(t, "TypeScript", opts[0].Key)
	require.Equal(t, models.LanguageJavaScript, opts[1].Value)
}
