package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shadow-js/create-shadow-app/internal/git"
	"github.com/stretchr/testify/require"
)

func TestMockGitClient_InitAddCommit(t *testing.T) {
	mock := git.NewMockGitClient()

	require.NoError(t, mock.Init("/workspace/demo"))
	require.NoError(t, mock.AddAll("/workspace/demo"))
	require.NoError(t, mock.Commit("/workspace/demo", "Initial commit"))

	repo := mock.Repo("/workspace/demo")
	require.NotNil(t, repo)
	require.Equal(t, []string{"Initial commit"}, repo.Commits)

	require.Equal(t, []string{
		"init /workspace/demo",
		"add /workspace/demo",
		`commit /workspace/demo "Initial commit"`,
	}, mock.Calls())
}

func TestMockGitClient_CommitWithoutStaging(t *testing.T) {
	mock := git.NewMockGitClient()
	require.NoError(t, mock.Init("/workspace/demo"))

	err := mock.Commit("/workspace/demo", "Initial commit")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nothing to commit")
}

func TestMockGitClient_OperationsOutsideRepository(t *testing.T) {
	mock := git.NewMockGitClient()

	require.Error(t, mock.AddAll("/workspace/demo"))
	require.Error(t, mock.AddRemote("/workspace/demo", "origin", "https://example.com/demo.git"))
	require.Nil(t, mock.Repo("/workspace/demo"))
}

func TestMockGitClient_RemoteAndPush(t *testing.T) {
	mock := git.NewMockGitClient()
	dir := "/workspace/demo"
	require.NoError(t, mock.Init(dir))
	require.NoError(t, mock.AddAll(dir))
	require.NoError(t, mock.Commit(dir, "Initial commit"))

	branch, err := mock.CurrentBranch(dir)
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	require.Error(t, mock.Push(dir, "origin", branch), "push before the remote exists")

	require.NoError(t, mock.AddRemote(dir, "origin", "https://github.com/me/demo.git"))
	require.Error(t, mock.AddRemote(dir, "origin", "https://github.com/me/other.git"))
	require.NoError(t, mock.Push(dir, "origin", branch))

	repo := mock.Repo(dir)
	require.Equal(t, "https://github.com/me/demo.git", repo.Remotes["origin"])
	require.Equal(t, []string{"main"}, repo.Pushed["origin"])
}

func TestMockGitClient_ErrorHooks(t *testing.T) {
	mock := git.NewMockGitClient()
	mock.CommitError = errors.New("author identity unknown")

	require.NoError(t, mock.Init("/workspace/demo"))
	require.NoError(t, mock.AddAll("/workspace/demo"))
	require.ErrorIs(t, mock.Commit("/workspace/demo", "Initial commit"), mock.CommitError)
}

func TestMockGitClient_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := git.NewMockGitClient().WithContext(ctx)
	require.ErrorIs(t, client.Init("/workspace/demo"), context.Canceled)
}

func TestParseBackend(t *testing.T) {
	b, err := git.ParseBackend("builtin")
	require.NoError(t, err)
	require.Equal(t, git.BackendBuiltin, b)

	_, err = git.ParseBackend("svn")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be exec or builtin")

	require.IsType(t, &git.OSGitClient{}, git.New(git.BackendExec))
	require.IsType(t, &git.BuiltinGitClient{}, git.New(git.BackendBuiltin))
}
