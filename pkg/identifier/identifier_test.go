package identifier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextEmbedsPrefixAndTimestamp(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	gen := NewWithClock(func() time.Time { return fixed })

	id := gen.Next("bk")
	assert.True(t, strings.HasPrefix(id, "bk1700000000000"))
	assert.Len(t, id, len("bk")+13+suffixLen)
}

func TestNextIsRandomized(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	gen := NewWithClock(func() time.Time { return fixed })

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[gen.Next("pt")] = true
	}
	// same clock tick, distinct suffixes
	assert.Greater(t, len(seen), 1)
}
