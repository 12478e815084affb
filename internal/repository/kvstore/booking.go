package kvstore

import (
	"context"
	"fmt"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/store"
)

type BookingRepository struct {
	s *Store
}

// List returns all bookings newest-first. The order is insertion order: new
// entries are prepended on create, never re-sorted by a business field.
func (r *BookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.loadBookings(ctx), nil
}

func (r *BookingRepository) Create(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	booking := model.Booking{
		ID:              model.BookingID(r.s.gen.Next("bk")),
		PatientName:     req.PatientName,
		Phone:           req.Phone,
		DoctorName:      req.DoctorName,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          model.BookingStatusScheduled,
		Source:          req.Source,
		LinkedPatientID: nil,
		Notes:           req.Notes,
		CreatedAt:       r.s.now().UnixMilli(),
	}

	bookings := append([]model.Booking{booking}, r.s.loadBookings(ctx)...)
	if err := r.s.save(ctx, "booking_create", store.KeyBookings, bookings); err != nil {
		return model.Booking{}, fmt.Errorf("failed to save bookings: %w", err)
	}
	return booking, nil
}

// Update merges the set fields into the record. An unknown id is a no-op.
func (r *BookingRepository) Update(ctx context.Context, id model.BookingID, req model.UpdateBookingRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bookings := r.s.loadBookings(ctx)
	for i := range bookings {
		if bookings[i].ID == id {
			applyBookingUpdate(&bookings[i], req)
			break
		}
	}
	if err := r.s.save(ctx, "booking_update", store.KeyBookings, bookings); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	return nil
}

// Delete removes the booking. An unknown id is a no-op, so delete is
// idempotent.
func (r *BookingRepository) Delete(ctx context.Context, id model.BookingID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bookings := r.s.loadBookings(ctx)
	kept := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if err := r.s.save(ctx, "booking_delete", store.KeyBookings, kept); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	return nil
}

// Prefill returns the registration form values for converting a booking into
// a visit record, or nil when the booking does not exist.
func (r *BookingRepository) Prefill(ctx context.Context, id model.BookingID) (*model.PatientPrefill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.loadBookings(ctx) {
		if b.ID == id {
			return &model.PatientPrefill{
				FullName:   b.PatientName,
				Phone:      b.Phone,
				DoctorName: b.DoctorName,
				BookingID:  b.ID,
			}, nil
		}
	}
	return nil, nil
}

func applyBookingUpdate(b *model.Booking, req model.UpdateBookingRequest) {
	if req.PatientName != nil {
		b.PatientName = *req.PatientName
	}
	if req.Phone != nil {
		b.Phone = *req.Phone
	}
	if req.DoctorName != nil {
		b.DoctorName = *req.DoctorName
	}
	if req.AppointmentDate != nil {
		b.AppointmentDate = *req.AppointmentDate
	}
	if req.AppointmentTime != nil {
		b.AppointmentTime = *req.AppointmentTime
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Source != nil {
		b.Source = *req.Source
	}
	if req.LinkedPatientID != nil {
		b.LinkedPatientID = req.LinkedPatientID
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
}
