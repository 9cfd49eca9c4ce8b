package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/shadow-js/create-shadow-app/internal/filesystem"
	"github.com/shadow-js/create-shadow-app/internal/git"
	"github.com/shadow-js/create-shadow-app/internal/github"
	"github.com/shadow-js/create-shadow-app/internal/manifest"
	"github.com/shadow-js/create-shadow-app/internal/models"
	"github.com/shadow-js/create-shadow-app/internal/templates"
)

// InitialCommitMessage is the message of the first commit.
const InitialCommitMessage = "Initial commit"

// Result describes a created project.
type Result struct {
	ProjectPath    string
	Files          []string
	Warnings       []string
	GitInitialized bool
	RemoteURL      string
}

func (r *Result) warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Creator materializes projects from templates.
type Creator struct {
	fs       filesystem.FileSystem
	git      git.GitClient
	github   github.GitHubClient
	registry *templates.Registry
	catalog  manifest.Catalog
	progress func(step string)
	newID    func() (string, error)
}

// Option configures a Creator.
type Option func(*Creator)

// WithGitHubClient enables repository creation for Options.GitHubRepo.
func WithGitHubClient(client github.GitHubClient) Option {
	return func(c *Creator) { c.github = client }
}

// WithRegistry replaces the embedded templates.
func WithRegistry(registry *templates.Registry) Option {
	return func(c *Creator) { c.registry = registry }
}

// WithCatalog replaces the default package version ranges.
func WithCatalog(catalog manifest.Catalog) Option {
	return func(c *Creator) { c.catalog = catalog }
}

// WithProgress receives a line per step.
func WithProgress(fn func(step string)) Option {
	return func(c *Creator) { c.progress = fn }
}

// NewCreator creates a Creator writing through fsys and initializing
// repositories with gitClient.
func NewCreator(fsys filesystem.FileSystem, gitClient git.GitClient, opts ...Option) *Creator {
	c := &Creator{
		fs:       fsys,
		git:      gitClient,
		registry: templates.Default(),
		catalog:  manifest.DefaultCatalog(),
		progress: func(string) {},
		newID: func() (string, error) {
			return gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 8)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create materializes a project for opts in the working directory.
//
// The destination is checked once before anything is written. The project
// is assembled in a hidden staging directory next to it and renamed into
// place, so a failure leaves neither a partial project nor the staging
// directory. Version control runs on the final directory and only ever
// degrades to warnings.
func (c *Creator) Create(ctx context.Context, opts models.Options) (*Result, error) {
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dest, err := c.fs.Abs(opts.ProjectName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}
	if c.fs.Exists(dest) {
		return nil, fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	}

	src, err := c.registry.Resolve(opts.Template, opts.Language)
	if err != nil {
		return nil, err
	}

	result := &Result{ProjectPath: dest}

	if err := c.materialize(ctx, opts, src, dest, result); err != nil {
		return nil, err
	}

	files, err := listFiles(c.fs, dest)
	if err != nil {
		return nil, err
	}
	result.Files = files

	if opts.InitGit {
		c.initRepository(ctx, dest, result)
	}
	if opts.GitHubRepo != "" {
		c.publish(ctx, opts, dest, result)
	}

	return result, nil
}

func (c *Creator) materialize(ctx context.Context, opts models.Options, src fs.FS, dest string, result *Result) (err error) {
	parent := filepath.Dir(dest)
	if err := c.fs.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", parent, err)
	}

	id, err := c.newID()
	if err != nil {
		return fmt.Errorf("failed to generate staging name: %w", err)
	}
	staging := filepath.Join(parent, fmt.Sprintf(".%s-%s.staging", filepath.Base(dest), id))

	defer func() {
		if err != nil {
			_ = c.fs.RemoveAll(staging)
		}
	}()

	c.progress(fmt.Sprintf("Copying template %s/%s", opts.Template, opts.Language))
	if _, err := filesystem.CopyFS(c.fs, src, staging, copySkipper(staging)); err != nil {
		return fmt.Errorf("failed to copy template: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.progress("Generating package.json and build configuration")
	generated, err := manifest.Generate(opts, c.catalog)
	if err != nil {
		return err
	}
	for _, f := range generated {
		if err := writeFile(c.fs, staging, f.Path, f.Content); err != nil {
			return err
		}
	}

	warning, err := adaptHTML(c.fs, staging, opts.Language)
	if err != nil {
		return err
	}
	if warning != "" {
		result.warn("%s", warning)
	}

	if opts.UseRouter {
		c.progress("Adding router entry point")
		if err := writeFile(c.fs, staging, manifest.EntryPath(opts.Language), manifest.RouterEntry(opts.Language)); err != nil {
			return err
		}
	}

	if opts.UseTailwind {
		c.progress("Setting up Tailwind CSS")
		warning, err := swapStylesheet(c.fs, staging)
		if err != nil {
			return err
		}
		if warning != "" {
			result.warn("%s", warning)
		}
	} else if err := dropTailwindSource(c.fs, staging); err != nil {
		return err
	}

	if err := writeFile(c.fs, staging, ".gitignore", []byte(manifest.GitIgnore)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.fs.Exists(dest) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	}
	if err := c.fs.Rename(staging, dest); err != nil {
		return fmt.Errorf("failed to move project into place: %w", err)
	}
	return nil
}

func (c *Creator) initRepository(ctx context.Context, dest string, result *Result) {
	c.progress("Initializing git repository")
	g := c.git.WithContext(ctx)

	if err := g.Init(dest); err != nil {
		result.warn("failed to initialize git repository: %v", err)
		return
	}
	if err := g.AddAll(dest); err != nil {
		result.warn("failed to initialize git repository: %v", err)
		return
	}
	if err := g.Commit(dest, InitialCommitMessage); err != nil {
		result.warn("failed to initialize git repository: %v", err)
		return
	}
	result.GitInitialized = true
}

func (c *Creator) publish(ctx context.Context, opts models.Options, dest string, result *Result) {
	if !result.GitInitialized {
		result.warn("skipping GitHub repository %s: no initial commit", opts.GitHubRepo)
		return
	}
	if c.github == nil {
		result.warn("skipping GitHub repository %s: %v", opts.GitHubRepo, github.ErrGitHubTokenNotFound)
		return
	}

	owner, name, err := models.SplitRepo(opts.GitHubRepo)
	if err != nil {
		result.warn("skipping GitHub repository: %v", err)
		return
	}

	lookupOwner := owner
	if lookupOwner == "" {
		lookupOwner, err = c.github.AuthenticatedUser(ctx)
		if err != nil {
			result.warn("failed to create GitHub repository: %v", err)
			return
		}
	}

	_, err = c.github.GetRepository(ctx, lookupOwner, name)
	switch {
	case err == nil:
		result.warn("GitHub repository %s/%s already exists; not pushing", lookupOwner, name)
		return
	case !errors.Is(err, github.ErrRepositoryNotFound):
		result.warn("failed to create GitHub repository: %v", err)
		return
	}

	c.progress(fmt.Sprintf("Creating GitHub repository %s/%s", lookupOwner, name))
	repo, err := c.github.CreateRepository(ctx, &github.CreateRepositoryRequest{
		Owner:       owner,
		Name:        name,
		Description: "Created with create-shadow-app",
		Private:     opts.Private,
	})
	if err != nil {
		result.warn("failed to create GitHub repository: %v", err)
		return
	}
	result.RemoteURL = repo.URL

	g := c.git.WithContext(ctx)
	if err := g.AddRemote(dest, "origin", repo.CloneURL); err != nil {
		result.warn("failed to add remote origin: %v", err)
		return
	}

	branch, err := g.CurrentBranch(dest)
	if err != nil {
		result.warn("failed to push to %s: %v", repo.FullName, err)
		return
	}

	c.progress(fmt.Sprintf("Pushing %s to %s", branch, repo.FullName))
	if err := g.Push(dest, "origin", branch); err != nil {
		result.warn("failed to push to %s: %v", repo.FullName, err)
	}
}
