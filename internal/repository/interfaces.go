package repository

import (
	"context"
	"errors"

	"github.com/clinicflow/ledger-api/internal/model"
)

// ErrDuplicateEntry is returned by the roster helpers when a name is already
// present; the rosters behave as sets.
var ErrDuplicateEntry = errors.New("entry already exists")

type (
	// BookingRepository handles appointment records. Update and Delete on an
	// unknown identifier are silent no-ops; the ledger tolerates misses
	// instead of failing the front desk.
	BookingRepository interface {
		List(ctx context.Context) ([]model.Booking, error)
		Create(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error)
		Update(ctx context.Context, id model.BookingID, req model.UpdateBookingRequest) error
		Delete(ctx context.Context, id model.BookingID) error
		Prefill(ctx context.Context, id model.BookingID) (*model.PatientPrefill, error)
	}

	// PatientRepository handles visit records. Create owns the profit-share
	// derivation and the auto-link rule against the booking collection.
	PatientRepository interface {
		List(ctx context.Context) ([]model.Patient, error)
		Create(ctx context.Context, req model.CreatePatientRequest) (model.Patient, error)
		Update(ctx context.Context, id model.PatientID, req model.UpdatePatientRequest) error
		Delete(ctx context.Context, id model.PatientID) error
	}

	SettingsRepository interface {
		Get(ctx context.Context) (model.Settings, error)
		Save(ctx context.Context, s model.Settings) error
		AddDoctor(ctx context.Context, name string) error
		RemoveDoctor(ctx context.Context, name string) error
		AddService(ctx context.Context, name string) error
		RemoveService(ctx context.Context, name string) error
	}
)
