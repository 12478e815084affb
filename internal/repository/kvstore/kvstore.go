// Package kvstore implements the ledger repositories over a key/value
// persistence adapter. Each operation is load-modify-save on a whole
// collection; a mutex serializes writers because the ledger is a
// single-logical-writer store even when the HTTP layer is concurrent.
package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/store"
	"github.com/clinicflow/ledger-api/pkg/identifier"
	"github.com/clinicflow/ledger-api/pkg/logger"
	"github.com/clinicflow/ledger-api/pkg/metrics"
)

type Store struct {
	kv      store.KV
	mu      sync.Mutex
	now     func() time.Time
	gen     *identifier.Generator
	logger  *logger.Logger
	metrics *metrics.Metrics
}

type Option func(*Store)

// WithClock fixes the store's notion of now; the auto-link rule and the
// relative filter windows depend on it.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		now: time.Now,
		gen: identifier.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }
func (s *Store) Patients() *PatientRepository { return &PatientRepository{s: s} }
func (s *Store) Settings() *SettingsRepository { return &SettingsRepository{s: s} }

// Clock returns the store's clock so collaborators evaluate relative windows
// against the same notion of now.
func (s *Store) Clock() func() time.Time { return s.now }

// loadBookings and the loaders below never fail the caller: unreadable state
// degrades to the empty collection or the default settings.
func (s *Store) loadBookings(ctx context.Context) []model.Booking {
	var bookings []model.Booking
	if err := s.kv.Load(ctx, store.KeyBookings, &bookings); err != nil {
		s.warn(err, "falling back to empty booking collection")
	}
	return bookings
}

func (s *Store) loadPatients(ctx context.Context) []model.Patient {
	var patients []model.Patient
	if err := s.kv.Load(ctx, store.KeyPatients, &patients); err != nil {
		s.warn(err, "falling back to empty patient collection")
	}
	return patients
}

func (s *Store) loadSettings(ctx context.Context) model.Settings {
	settings := model.DefaultSettings()
	if err := s.kv.Load(ctx, store.KeySettings, &settings); err != nil {
		s.warn(err, "falling back to default settings")
		return model.DefaultSettings()
	}
	return settings
}

func (s *Store) save(ctx context.Context, op, key string, v interface{}) error {
	err := s.kv.Save(ctx, key, v)
	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		s.metrics.StoreOperations.WithLabelValues(op, status).Inc()
	}
	return err
}

func (s *Store) warn(err error, msg string) {
	if s.logger != nil {
		s.logger.Warn(msg, "error", err.Error())
	}
}
