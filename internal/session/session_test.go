package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAndCheck(t *testing.T) {
	m := NewManager(time.Minute)

	marker := m.Start()
	assert.NotEmpty(t, marker.Token)
	assert.Greater(t, marker.ExpiresAt, marker.StartedAt)
	assert.True(t, m.Active(marker.Token))
	assert.False(t, m.Active("unknown"))
}

func TestTouchExtendsMarker(t *testing.T) {
	m := NewManager(time.Minute)
	marker := m.Start()

	touched, ok := m.Touch(marker.Token)
	require.True(t, ok)
	assert.Equal(t, marker.Token, touched.Token)
	assert.GreaterOrEqual(t, touched.ExpiresAt, marker.ExpiresAt)

	_, ok = m.Touch("unknown")
	assert.False(t, ok)
}

func TestEnd(t *testing.T) {
	m := NewManager(time.Minute)
	marker := m.Start()

	m.End(marker.Token)
	assert.False(t, m.Active(marker.Token))
}

func TestMarkerExpires(t *testing.T) {
	m := NewManager(20 * time.Millisecond)
	marker := m.Start()

	time.Sleep(40 * time.Millisecond)
	assert.False(t, m.Active(marker.Token))
}
