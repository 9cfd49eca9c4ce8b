package e2e_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/shadow-js/create-shadow-app/internal/cli"
	"github.com/shadow-js/create-shadow-app/internal/config"
	"github.com/shadow-js/create-shadow-app/internal/filesystem"
	"github.com/shadow-js/create-shadow-app/internal/git"
	"github.com/shadow-js/create-shadow-app/internal/manifest"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvTemplatesDir, "")
	t.Setenv(config.EnvGitBackend, "")
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	builtin := func(backend git.Backend, opts ...git.BuiltinOption) git.GitClient {
		opts = append(opts, git.WithAuthor("E2E", "e2e@example.com"))
		return git.NewBuiltinGitClient(opts...)
	}

	var out bytes.Buffer
	cmd := cli.NewRootCommand(filesystem.NewOSFileSystem(), builtin, nil)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestFullWorkflow(t *testing.T) {
	dir := setup(t)

	out, err := execute(t, "demo", "--yes", "--router", "--tailwind", "--git")
	require.NoError(t, err, out)

	project := filepath.Join(dir, "demo")

	// Manifest
	data, err := os.ReadFile(filepath.Join(project, "package.json"))
	require.NoError(t, err)
	var pkg manifest.PackageJSON
	require.NoError(t, json.Unmarshal(data, &pkg))
	require.Equal(t, "demo", pkg.Name)
	require.Contains(t, pkg.Dependencies, manifest.PkgRouter)
	require.Contains(t, pkg.Dependencies, manifest.PkgTailwindVite)
	require.Contains(t, pkg.DevDependencies, manifest.PkgTypeScript)

	// Features
	entry, err := os.ReadFile(filepath.Join(project, "src", "main.tsx"))
	require.NoError(t, err)
	require.Equal(t, string(manifest.RouterEntry("ts")), string(entry))
	require.NoFileExists(t, filepath.Join(project, "src", "tailwind.css"))

	style, err := os.ReadFile(filepath.Join(project, "src", "style.css"))
	require.NoError(t, err)
	require.Contains(t, string(style), `@import "tailwindcss";`)

	// No staging directory left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".staging")
	}

	// Initial commit contains the generated files
	repo, err := gogit.PlainOpen(project)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	require.Equal(t, "Initial commit", commit.Message)

	tree, err := commit.Tree()
	require.NoError(t, err)
	for _, name := range []string{".gitignore", "package.json", "tsconfig.json", "vite.config.ts", "src/main.tsx"} {
		_, err := tree.File(name)
		require.NoError(t, err, name)
	}

	// Running again refuses to touch the project
	_, err = execute(t, "demo", "--yes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "destination already exists")
}

func TestJavaScriptWithoutGit(t *testing.T) {
	dir := setup(t)

	out, err := execute(t, "create", "js-app", "-y", "-l", "js", "-t", "todo")
	require.NoError(t, err, out)

	project := filepath.Join(dir, "js-app")
	require.FileExists(t, filepath.Join(project, "vite.config.js"))
	require.NoFileExists(t, filepath.Join(project, "tsconfig.json"))
	require.NoDirExists(t, filepath.Join(project, ".git"))
	require.FileExists(t, filepath.Join(project, "src", "style.css"))
	require.NoFileExists(t, filepath.Join(project, "src", "tailwind.css"))

	html, err := os.ReadFile(filepath.Join(project, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(html), "/src/main.jsx")
}

func TestCustomTemplatesDir(t *testing.T) {
	dir := setup(t)

	custom := filepath.Join(dir, "my-templates", "counter", "ts")
	require.NoError(t, os.MkdirAll(filepath.Join(custom, "src"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(custom, "node_modules", "left-pad"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(custom, "index.html"), []byte(`<script src="/src/main.tsx"></script>`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(custom, "src", "main.tsx"), []byte("// custom\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(custom, "node_modules", "left-pad", "index.js"), []byte("junk"), 0644))

	out, err := execute(t, "custom", "-y", "--templates-dir", filepath.Join(dir, "my-templates"))
	require.NoError(t, err, out)

	main, err := os.ReadFile(filepath.Join(dir, "custom", "src", "main.tsx"))
	require.NoError(t, err)
	require.Equal(t, "// custom\n", string(main))
	require.NoDirExists(t, filepath.Join(dir, "custom", "node_modules"))

	_, err = execute(t, "other", "-y", "-t", "todo", "--templates-dir", filepath.Join(dir, "my-templates"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "template not found: todo/ts")
	require.NoDirExists(t, filepath.Join(dir, "other"))
}
