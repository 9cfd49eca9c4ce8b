package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

// ErrMissingIdentity is returned by Commit when no author is configured.
var ErrMissingIdentity = errors.New("git author identity unknown (set user.name and user.email)")

// BuiltinGitClient implements GitClient with go-git, so projects can be
// initialized on machines without a git binary.
type BuiltinGitClient struct {
	ctx    context.Context
	author *object.Signature
	auth   transport.AuthMethod
	now    func() time.Time
}

// BuiltinOption configures a BuiltinGitClient.
type BuiltinOption func(*BuiltinGitClient)

// WithAuthor fixes the commit author instead of reading git config.
func WithAuthor(name, email string) BuiltinOption {
	return func(g *BuiltinGitClient) {
		g.author = &object.Signature{Name: name, Email: email}
	}
}

// WithBasicAuth sets HTTP credentials used by Push.
func WithBasicAuth(username, password string) BuiltinOption {
	return func(g *BuiltinGitClient) {
		g.auth = &githttp.BasicAuth{Username: username, Password: password}
	}
}

// NewBuiltinGitClient creates a new BuiltinGitClient
func NewBuiltinGitClient(opts ...BuiltinOption) *BuiltinGitClient {
	g := &BuiltinGitClient{
		ctx: context.Background(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithContext returns a new client with the given context
func (g *BuiltinGitClient) WithContext(ctx context.Context) GitClient {
	clone := *g
	clone.ctx = ctx
	return &clone
}

func (g *BuiltinGitClient) open(dir string) (*gogit.Repository, error) {
	if err := g.ctx.Err(); err != nil {
		return nil, err
	}
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// Init creates an empty repository in dir
func (g *BuiltinGitClient) Init(dir string) error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	if _, err := gogit.PlainInit(dir, false); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}

// AddAll stages every file in the working tree
func (g *BuiltinGitClient) AddAll(dir string) error {
	repo, err := g.open(dir)
	if err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// Commit records the staged files
func (g *BuiltinGitClient) Commit(dir, message string) error {
	repo, err := g.open(dir)
	if err != nil {
		return err
	}

	author, err := g.signature(repo)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	if _, err := wt.Commit(message, &gogit.CommitOptions{Author: author}); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// signature resolves the author the way git does: explicit option, then
// GIT_AUTHOR_* environment, then the user section of the merged config.
func (g *BuiltinGitClient) signature(repo *gogit.Repository) (*object.Signature, error) {
	sig := object.Signature{When: g.now()}

	switch {
	case g.author != nil:
		sig.Name, sig.Email = g.author.Name, g.author.Email
	case os.Getenv("GIT_AUTHOR_NAME") != "" && os.Getenv("GIT_AUTHOR_EMAIL") != "":
		sig.Name, sig.Email = os.Getenv("GIT_AUTHOR_NAME"), os.Getenv("GIT_AUTHOR_EMAIL")
	default:
		cfg, err := repo.ConfigScoped(config.GlobalScope)
		if err != nil {
			return nil, fmt.Errorf("failed to read git config: %w", err)
		}
		sig.Name, sig.Email = cfg.User.Name, cfg.User.Email
	}

	if sig.Name == "" || sig.Email == "" {
		return nil, ErrMissingIdentity
	}
	return &sig, nil
}

// CurrentBranch returns the checked out branch name
func (g *BuiltinGitClient) CurrentBranch(dir string) (string, error) {
	repo, err := g.open(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return head.Name().Short(), nil
}

// AddRemote registers a named remote
func (g *BuiltinGitClient) AddRemote(dir, name, url string) error {
	repo, err := g.open(dir)
	if err != nil {
		return err
	}

	if _, err := repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}}); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// Push pushes branch to remote
func (g *BuiltinGitClient) Push(dir, remote, branch string) error {
	repo, err := g.open(dir)
	if err != nil {
		return err
	}

	refSpec := config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	err = repo.PushContext(g.ctx, &gogit.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       g.auth,
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}
