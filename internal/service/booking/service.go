package booking

import (
	"context"
	"fmt"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/repository"
	"github.com/clinicflow/ledger-api/pkg/logger"
)

type Service struct {
	repo   repository.BookingRepository
	logger *logger.Logger
}

func NewService(repo repository.BookingRepository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListBookings(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *Service) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	booking, err := s.repo.Create(ctx, req)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	s.logger.Info("booking created",
		"booking_id", string(booking.ID),
		"doctor", booking.DoctorName,
		"date", booking.AppointmentDate)
	return booking, nil
}

func (s *Service) UpdateBooking(ctx context.Context, id model.BookingID, req model.UpdateBookingRequest) error {
	if err := s.repo.Update(ctx, id, req); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

func (s *Service) DeleteBooking(ctx context.Context, id model.BookingID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// PrefillPatient returns the registration values carried over when the front
// desk converts a booking into a visit record.
func (s *Service) PrefillPatient(ctx context.Context, id model.BookingID) (*model.PatientPrefill, error) {
	prefill, err := s.repo.Prefill(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking prefill: %w", err)
	}
	return prefill, nil
}
