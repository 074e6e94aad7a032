package preview

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubManager_CreatePreview(t *testing.T) {
	m := NewStubManager()

	info, err := m.CreatePreview(context.Background(), "https://github.com/demo/app.git", "main")
	require.NoError(t, err)

	assert.NotEmpty(t, info.PreviewID)
	assert.Equal(t, "https://preview-"+info.PreviewID+".example.com", info.URL)
	assert.True(t, strings.HasPrefix(info.ContainerID, "container-"))

	other, err := m.CreatePreview(context.Background(), "https://github.com/demo/app.git", "main")
	require.NoError(t, err)
	assert.NotEqual(t, info.PreviewID, other.PreviewID)
}

func TestStubManager_Validation(t *testing.T) {
	m := NewStubManager()

	_, err := m.CreatePreview(context.Background(), "", "main")
	assert.Error(t, err)

	assert.NoError(t, m.DestroyPreview(context.Background(), "container-1"))
	assert.Error(t, m.DestroyPreview(context.Background(), ""))
}
