// Package identifier produces the ledger's entity identifiers: a short type
// prefix, the creation instant in epoch milliseconds, and a random base-36
// suffix. Uniqueness is probabilistic; the store never checks for collisions.
package identifier

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const suffixLen = 4

type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock exists for deterministic tests.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

func (g *Generator) Next(prefix string) string {
	buf := make([]byte, 0, len(prefix)+13+suffixLen)
	buf = append(buf, prefix...)
	buf = strconv.AppendInt(buf, g.now().UnixMilli(), 10)
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < suffixLen; i++ {
		buf = append(buf, digits[rand.IntN(len(digits))])
	}
	return string(buf)
}
