package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "store.json")),
	}
}

func TestStore_CapsAtMaxEntriesNewestFirst(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 25; i++ {
				require.NoError(t, store.Add(ctx, "client-1", Entry{
					Prompt: fmt.Sprintf("prompt %d", i),
					Code:   fmt.Sprintf("code %d", i),
				}))

				entries, err := store.List(ctx, "client-1")
				require.NoError(t, err)
				assert.LessOrEqual(t, len(entries), MaxEntries)
			}

			entries, err := store.List(ctx, "client-1")
			require.NoError(t, err)
			require.Len(t, entries, MaxEntries)

			// newest first, the oldest 15 were evicted
			assert.Equal(t, "prompt 24", entries[0].Prompt)
			assert.Equal(t, "prompt 15", entries[MaxEntries-1].Prompt)
			assert.NotEmpty(t, entries[0].ID)
			assert.False(t, entries[0].CreatedAt.IsZero())
		})
	}
}

func TestStore_OwnersAreIsolated(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Add(ctx, "a", Entry{Code: "a1"}))
			require.NoError(t, store.Add(ctx, "b", Entry{Code: "b1"}))

			entries, err := store.List(ctx, "a")
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "a1", entries[0].Code)

			require.NoError(t, store.Clear(ctx, "a"))

			entries, err = store.List(ctx, "a")
			require.NoError(t, err)
			assert.Empty(t, entries)

			entries, err = store.List(ctx, "b")
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestStore_RequiresOwner(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, store.Add(ctx, "", Entry{}), ErrInvalidOwner)

			_, err := store.List(ctx, "")
			assert.ErrorIs(t, err, ErrInvalidOwner)

			assert.ErrorIs(t, store.Clear(ctx, ""), ErrInvalidOwner)
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	require.NoError(t, NewFileStore(path).Add(ctx, "local", Entry{Code: "persisted"}))

	entries, err := NewFileStore(path).List(ctx, "local")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "persisted", entries[0].Code)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).List(context.Background(), "local")
	assert.Error(t, err)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Add(ctx, "a", Entry{Code: "original"}))

	entries, err := store.List(ctx, "a")
	require.NoError(t, err)
	entries[0].Code = "mutated"

	entries, err = store.List(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "original", entries[0].Code)
}
