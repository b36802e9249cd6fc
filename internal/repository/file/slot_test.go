package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRepo_GetMissing(t *testing.T) {
	repo := NewSlotRepo(t.TempDir())

	data, err := repo.Get(context.Background(), "words")

	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestSlotRepo_SetThenGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	repo := NewSlotRepo(dir)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "words", []byte(`[{"spelling":"cat"}]`)))
	require.NoError(t, repo.Set(ctx, "words", []byte(`[]`)))

	data, err := repo.Get(ctx, "words")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "words.json", entries[0].Name())
}

func TestSlotRepo_KeysAreSeparate(t *testing.T) {
	repo := NewSlotRepo(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "words", []byte("a")))
	require.NoError(t, repo.Set(ctx, "other", []byte("b")))

	data, err := repo.Get(ctx, "words")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)
}

func TestSlotRepo_FailedReplaceCleansUp(t *testing.T) {
	dir := t.TempDir()
	repo := NewSlotRepo(dir)

	// a directory in the slot's place makes the final rename fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, "words.json"), 0o755))

	err := repo.Set(context.Background(), "words", []byte(`[]`))
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
