package git

import (
	"context"
)

// GitClient is the version-control capability a freshly materialized
// project needs. Every operation takes the repository directory explicitly;
// nothing depends on the process working directory.
type GitClient interface {
	// Repository bootstrap
	Init(dir string) error
	AddAll(dir string) error
	Commit(dir, message string) error

	// Branch and remote operations
	CurrentBranch(dir string) (string, error)
	AddRemote(dir, name, url string) error
	Push(dir, remote, branch string) error

	// Context support for process and network operations
	WithContext(ctx context.Context) GitClient
}

// Backend selects a GitClient implementation.
type Backend string

const (
	// BackendExec shells out to the git binary on PATH.
	BackendExec Backend = "exec"

	// BackendBuiltin uses the pure Go implementation; no binary required.
	BackendBuiltin Backend = "builtin"
)

// IsValid checks if the backend is known
func (b Backend) IsValid() bool {
	switch b {
	case BackendExec, BackendBuiltin:
		return true
	default:
		return false
	}
}

// String returns the string representation of Backend
func (b Backend) String() string {
	return string(b)
}

// ParseBackend parses a string into a Backend
func ParseBackend(s string) (Backend, error) {
	b := Backend(s)
	if !b.IsValid() {
		return "", &BackendError{Value: s}
	}
	return b, nil
}

// BackendError reports an unknown backend name.
type BackendError struct {
	Value string
}

func (e *BackendError) Error() string {
	return "invalid git backend: " + e.Value + " (must be exec or builtin)"
}

// Factory builds the GitClient for a backend.
type Factory func(backend Backend, opts ...BuiltinOption) GitClient

// New returns the client for the given backend. It is the default Factory.
func New(backend Backend, opts ...BuiltinOption) GitClient {
	if backend == BackendBuiltin {
		return NewBuiltinGitClient(opts...)
	}
	return NewOSGitClient()
}
