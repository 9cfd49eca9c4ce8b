package github

import (
	"context"
	"errors"
)

// ErrRepositoryNotFound is returned by GetRepository for a 404.
var ErrRepositoryNotFound = errors.New("repository not found")

// GitHubClient provides an abstraction over the GitHub API operations used
// to publish a freshly created project.
type GitHubClient interface {
	// AuthenticatedUser returns the login of the token owner.
	AuthenticatedUser(ctx context.Context) (string, error)

	// Repository operations
	GetRepository(ctx context.Context, owner, repo string) (*Repository, error)
	CreateRepository(ctx context.Context, req *CreateRepositoryRequest) (*Repository, error)
}

// CreateRepositoryRequest describes a new repository. An empty Owner
// creates it under the authenticated user, otherwise under that
// organization.
type CreateRepositoryRequest struct {
	Owner       string
	Name        string
	Description string
	Private     bool
}

// Repository represents a GitHub repository
type Repository struct {
	Owner         string
	Name          string
	FullName      string
	URL           string
	CloneURL      string
	DefaultBranch string
	Private       bool
}
