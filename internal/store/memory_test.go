package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, s.Save(ctx, "k", in))

	var out map[string]int
	require.NoError(t, s.Load(ctx, "k", &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingKeyLeavesDefault(t *testing.T) {
	s := NewMemoryStore()

	out := []string{"seeded"}
	require.NoError(t, s.Load(context.Background(), "absent", &out))
	assert.Equal(t, []string{"seeded"}, out)
}

func TestMemoryStoreCorruptPayloadLeavesDefault(t *testing.T) {
	s := NewMemoryStore()
	s.Put("k", []byte("{not json"))

	var out []string
	require.NoError(t, s.Load(context.Background(), "k", &out))
	assert.Nil(t, out)
}
