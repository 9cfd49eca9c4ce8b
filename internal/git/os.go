package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSGitClient implements GitClient using real git commands
type OSGitClient struct {
	ctx context.Context
}

// NewOSGitClient creates a new OSGitClient
func NewOSGitClient() *OSGitClient {
	return &OSGitClient{
		ctx: context.Background(),
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx: ctx,
	}
}

// run executes git in dir and folds stderr into the returned error.
func (g *OSGitClient) run(dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(g.ctx, "git", args...)
	cmd.Dir = dir

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(out.String()), nil
}

// Init creates an empty repository in dir
func (g *OSGitClient) Init(dir string) error {
	if _, err := g.run(dir, "init"); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}

// AddAll stages every file in the working tree
func (g *OSGitClient) AddAll(dir string) error {
	if _, err := g.run(dir, "add", "."); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// Commit records the staged files
func (g *OSGitClient) Commit(dir, message string) error {
	if _, err := g.run(dir, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CurrentBranch returns the checked out branch name
func (g *OSGitClient) CurrentBranch(dir string) (string, error) {
	branch, err := g.run(dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return branch, nil
}

// AddRemote registers a named remote
func (g *OSGitClient) AddRemote(dir, name, url string) error {
	if _, err := g.run(dir, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// Push pushes branch to remote and sets it as upstream
func (g *OSGitClient) Push(dir, remote, branch string) error {
	if _, err := g.run(dir, "push", "-u", remote, branch); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}
