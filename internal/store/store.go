package store

import "context"

// Logical keys the ledger persists under. The names predate this service and
// are kept so existing data sets load unchanged.
const (
	KeyBookings = "cfp_bookings"
	KeyPatients = "cfp_patients"
	KeySettings = "cfp_settings"
	KeySession  = "cfp_session"
)

// KV is the durability boundary of the ledger: JSON-serializable values
// addressed by logical key. Load leaves out untouched when the key is absent
// or the stored value cannot be decoded, so callers fall back to whatever
// default they pre-populated out with.
type KV interface {
	Load(ctx context.Context, key string, out interface{}) error
	Save(ctx context.Context, key string, v interface{}) error
}
