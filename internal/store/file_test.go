package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, s.Save(ctx, KeySettings, record{Name: "clinic", Count: 3}))

	var out record
	require.NoError(t, s.Load(ctx, KeySettings, &out))
	assert.Equal(t, record{Name: "clinic", Count: 3}, out)
}

func TestFileStoreMissingFileLeavesDefault(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	out := 42
	require.NoError(t, s.Load(context.Background(), "absent", &out))
	assert.Equal(t, 42, out)
}

func TestFileStoreCorruptFileLeavesDefault(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("<<<"), 0o644))

	var out []int
	require.NoError(t, s.Load(context.Background(), "bad", &out))
	assert.Nil(t, out)
}

func TestFileStoreOverwrite(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", []int{1}))
	require.NoError(t, s.Save(ctx, "k", []int{2, 3}))

	var out []int
	require.NoError(t, s.Load(ctx, "k", &out))
	assert.Equal(t, []int{2, 3}, out)
}
