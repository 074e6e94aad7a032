package preview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Info struct {
	PreviewID   string `json:"previewId"`
	URL         string `json:"url"`
	ContainerID string `json:"containerId"`
}

// builds and tears down preview environments
type Manager interface {
	CreatePreview(ctx context.Context, repoURL, commit string) (*Info, error)
	DestroyPreview(ctx context.Context, containerID string) error
}

// fabricates preview ids and urls, nothing is built or run
type StubManager struct{}

func NewStubManager() *StubManager {
	return &StubManager{}
}

func (m *StubManager) CreatePreview(ctx context.Context, repoURL, _ string) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if repoURL == "" {
		return nil, fmt.Errorf("repository url is required")
	}

	previewID := uuid.NewString()

	return &Info{
		PreviewID:   previewID,
		URL:         fmt.Sprintf("https://preview-%s.example.com", previewID),
		ContainerID: "container-" + previewID,
	}, nil
}

func (m *StubManager) DestroyPreview(ctx context.Context, containerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if containerID == "" {
		return fmt.Errorf("container id is required")
	}

	return nil
}
