// Package session tracks the opaque front-desk session marker. It carries no
// identity and grants nothing; the UI uses it to drive its idle lock. Markers
// expire on their own when the desk goes quiet.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type Manager struct {
	markers *cache.Cache
	ttl     time.Duration
}

type Marker struct {
	Token     string `json:"token"`
	StartedAt int64  `json:"startedAt"`
	ExpiresAt int64  `json:"expiresAt"`
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		markers: cache.New(ttl, ttl/2),
		ttl:     ttl,
	}
}

func (m *Manager) Start() Marker {
	now := time.Now()
	marker := Marker{
		Token:     uuid.NewString(),
		StartedAt: now.UnixMilli(),
		ExpiresAt: now.Add(m.ttl).UnixMilli(),
	}
	m.markers.Set(marker.Token, marker, cache.DefaultExpiration)
	return marker
}

// Touch extends an active marker's lifetime and reports whether it was still
// alive. An expired or unknown token stays inactive.
func (m *Manager) Touch(token string) (Marker, bool) {
	v, ok := m.markers.Get(token)
	if !ok {
		return Marker{}, false
	}
	marker := v.(Marker)
	marker.ExpiresAt = time.Now().Add(m.ttl).UnixMilli()
	m.markers.Set(token, marker, cache.DefaultExpiration)
	return marker, true
}

func (m *Manager) Active(token string) bool {
	_, ok := m.markers.Get(token)
	return ok
}

func (m *Manager) End(token string) {
	m.markers.Delete(token)
}
