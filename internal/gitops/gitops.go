// Package gitops declares the repository operations used by preview
// deployments. StubManager fabricates responses; no git host is contacted.
package gitops

import (
	"context"
	"fmt"
	"strings"
)

const stubOwner = "demo"

type Owner struct {
	Login string `json:"login"`
}

type Repository struct {
	Name     string `json:"name"`
	Private  bool   `json:"private"`
	HTMLURL  string `json:"html_url"`
	CloneURL string `json:"clone_url"`
	Owner    Owner  `json:"owner"`
}

// repository operations a real git host integration must provide
type Manager interface {
	CreateRepository(ctx context.Context, name string, private bool) (*Repository, error)
	CreateOrUpdateFile(ctx context.Context, owner, repo, path, content, message string) error
	CreateBranch(ctx context.Context, owner, repo, branch string) error
}

type StubManager struct {
	token string
}

func NewStubManager(token string) *StubManager {
	return &StubManager{token: token}
}

func (m *StubManager) CreateRepository(ctx context.Context, name string, private bool) (*Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("repository name is required")
	}

	return &Repository{
		Name:     name,
		Private:  private,
		HTMLURL:  fmt.Sprintf("https://github.com/%s/%s", stubOwner, name),
		CloneURL: fmt.Sprintf("https://github.com/%s/%s.git", stubOwner, name),
		Owner:    Owner{Login: stubOwner},
	}, nil
}

func (m *StubManager) CreateOrUpdateFile(ctx context.Context, _, _, path, _, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("file path is required")
	}

	return nil
}

func (m *StubManager) CreateBranch(ctx context.Context, _, _, branch string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(branch) == "" {
		return fmt.Errorf("branch name is required")
	}

	return nil
}
