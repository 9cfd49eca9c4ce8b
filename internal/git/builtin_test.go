package git_test

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/shadow-js/create-shadow-app/internal/git"
	"github.com/stretchr/testify/require"
)

func TestBuiltinGitClient_InitialCommit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", "{}\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	writeFile(t, dir, filepath.Join("src", "main.tsx"), "render(App, root);\n")

	client := git.NewBuiltinGitClient(git.WithAuthor("Test User", "test@example.com"))
	require.NoError(t, client.Init(dir))
	require.NoError(t, client.AddAll(dir))
	require.NoError(t, client.Commit(dir, "Initial commit"))

	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)

	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	require.Equal(t, "Initial commit", commit.Message)
	require.Equal(t, "Test User", commit.Author.Name)

	tree, err := commit.Tree()
	require.NoError(t, err)
	_, err = tree.File("src/main.tsx")
	require.NoError(t, err)

	branch, err := client.CurrentBranch(dir)
	require.NoError(t, err)
	require.Equal(t, head.Name().Short(), branch)
}

func TestBuiltinGitClient_MissingIdentity(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("GIT_AUTHOR_NAME", "")
	t.Setenv("GIT_AUTHOR_EMAIL", "")

	dir := t.TempDir()
	writeFile(t, dir, "package.json", "{}\n")

	client := git.NewBuiltinGitClient()
	require.NoError(t, client.Init(dir))
	require.NoError(t, client.AddAll(dir))

	err := client.Commit(dir, "Initial commit")
	require.ErrorIs(t, err, git.ErrMissingIdentity)
}

func TestBuiltinGitClient_AddRemote(t *testing.T) {
	dir := t.TempDir()
	client := git.NewBuiltinGitClient()
	require.NoError(t, client.Init(dir))
	require.NoError(t, client.AddRemote(dir, "origin", "https://github.com/me/demo.git"))

	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	remote, err := repo.Remote("origin")
	require.NoError(t, err)
	require.Equal(t, []string{"https://github.com/me/demo.git"}, remote.Config().URLs)

	require.Error(t, client.AddRemote(dir, "origin", "https://github.com/me/other.git"))
}

func TestBuiltinGitClient_OpenOutsideRepository(t *testing.T) {
	err := git.NewBuiltinGitClient().AddAll(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open repository")
}
