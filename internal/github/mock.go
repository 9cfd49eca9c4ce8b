package github

import (
	"context"
	"fmt"
	"sync"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	mu           sync.RWMutex
	login        string
	repositories map[string]*Repository // key: "owner/repo"
	created      []*CreateRepositoryRequest

	// Hooks for testing error scenarios
	AuthenticatedUserError error
	GetRepositoryError     error
	CreateRepositoryError  error
}

// NewMockClient creates a new MockClient authenticated as login.
func NewMockClient(login string) *MockClient {
	return &MockClient{
		login:        login,
		repositories: make(map[string]*Repository),
	}
}

// SetupRepository adds an existing repository to the mock
func (m *MockClient) SetupRepository(owner, repo string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.repositories[owner+"/"+repo] = mockRepository(owner, repo, false)
}

func mockRepository(owner, repo string, private bool) *Repository {
	key := fmt.Sprintf("%s/%s", owner, repo)
	return &Repository{
		Owner:         owner,
		Name:          repo,
		FullName:      key,
		URL:           fmt.Sprintf("https://github.com/%s", key),
		CloneURL:      fmt.Sprintf("https://github.com/%s.git", key),
		DefaultBranch: "main",
		Private:       private,
	}
}

func (m *MockClient) AuthenticatedUser(ctx context.Context) (string, error) {
	if m.AuthenticatedUserError != nil {
		return "", m.AuthenticatedUserError
	}
	return m.login, nil
}

func (m *MockClient) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	if m.GetRepositoryError != nil {
		return nil, m.GetRepositoryError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	r, exists := m.repositories[owner+"/"+repo]
	if !exists {
		return nil, fmt.Errorf("%s/%s: %w", owner, repo, ErrRepositoryNotFound)
	}
	return r, nil
}

func (m *MockClient) CreateRepository(ctx context.Context, req *CreateRepositoryRequest) (*Repository, error) {
	if m.CreateRepositoryError != nil {
		return nil, m.CreateRepositoryError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	owner := req.Owner
	if owner == "" {
		owner = m.login
	}
	key := owner + "/" + req.Name
	if _, exists := m.repositories[key]; exists {
		return nil, fmt.Errorf("failed to create repository %s: name already exists on this account", req.Name)
	}

	r := mockRepository(owner, req.Name, req.Private)
	m.repositories[key] = r
	m.created = append(m.created, req)
	return r, nil
}

// Created returns the requests of every repository created through the mock.
func (m *MockClient) Created() []*CreateRepositoryRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*CreateRepositoryRequest, len(m.created))
	copy(out, m.created)
	return out
}
