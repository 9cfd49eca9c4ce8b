package git

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
)

// MockGitClient implements GitClient for testing by recording every call
// per repository directory.
type MockGitClient struct {
	mu    sync.RWMutex
	repos map[string]*MockRepo
	calls []string
	ctx   context.Context

	// DefaultBranch is the branch reported after the first commit.
	DefaultBranch string

	// Hooks for testing error scenarios
	InitError          error
	AddAllError        error
	CommitError        error
	CurrentBranchError error
	AddRemoteError     error
	PushError          error
}

// MockRepo is the recorded state of one repository.
type MockRepo struct {
	Dir     string
	Staged  bool
	Commits []string
	Remotes map[string]string
	Pushed  map[string][]string // remote -> branches
}

// NewMockGitClient creates a new MockGitClient
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		repos:         make(map[string]*MockRepo),
		ctx:           context.Background(),
		DefaultBranch: "main",
	}
}

// WithContext returns the same mock; state is shared across contexts.
func (m *MockGitClient) WithContext(ctx context.Context) GitClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
	return m
}

func (m *MockGitClient) record(format string, args ...interface{}) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

func (m *MockGitClient) repo(dir string) (*MockRepo, error) {
	r, ok := m.repos[filepath.Clean(dir)]
	if !ok {
		return nil, fmt.Errorf("not a git repository: %s", dir)
	}
	return r, nil
}

func (m *MockGitClient) Init(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("init %s", dir)
	if m.InitError != nil {
		return m.InitError
	}
	if err := m.ctx.Err(); err != nil {
		return err
	}

	clean := filepath.Clean(dir)
	m.repos[clean] = &MockRepo{
		Dir:     clean,
		Remotes: make(map[string]string),
		Pushed:  make(map[string][]string),
	}
	return nil
}

func (m *MockGitClient) AddAll(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("add %s", dir)
	if m.AddAllError != nil {
		return m.AddAllError
	}

	r, err := m.repo(dir)
	if err != nil {
		return err
	}
	r.Staged = true
	return nil
}

func (m *MockGitClient) Commit(dir, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("commit %s %q", dir, message)
	if m.CommitError != nil {
		return m.CommitError
	}

	r, err := m.repo(dir)
	if err != nil {
		return err
	}
	if !r.Staged {
		return fmt.Errorf("nothing to commit in %s", dir)
	}
	r.Commits = append(r.Commits, message)
	r.Staged = false
	return nil
}

func (m *MockGitClient) CurrentBranch(dir string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.CurrentBranchError != nil {
		return "", m.CurrentBranchError
	}
	r, err := m.repo(dir)
	if err != nil {
		return "", err
	}
	if len(r.Commits) == 0 {
		return "", fmt.Errorf("no commits yet in %s", dir)
	}
	return m.DefaultBranch, nil
}

func (m *MockGitClient) AddRemote(dir, name, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("remote add %s %s %s", dir, name, url)
	if m.AddRemoteError != nil {
		return m.AddRemoteError
	}

	r, err := m.repo(dir)
	if err != nil {
		return err
	}
	if _, exists := r.Remotes[name]; exists {
		return fmt.Errorf("remote %s already exists", name)
	}
	r.Remotes[name] = url
	return nil
}

func (m *MockGitClient) Push(dir, remote, branch string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("push %s %s %s", dir, remote, branch)
	if m.PushError != nil {
		return m.PushError
	}

	r, err := m.repo(dir)
	if err != nil {
		return err
	}
	if _, ok := r.Remotes[remote]; !ok {
		return fmt.Errorf("unknown remote %s", remote)
	}
	r.Pushed[remote] = append(r.Pushed[remote], branch)
	return nil
}

// Repo returns the recorded repository for dir, or nil.
func (m *MockGitClient) Repo(dir string) *MockRepo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.repos[filepath.Clean(dir)]
}

// Calls returns every recorded operation in order.
func (m *MockGitClient) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
