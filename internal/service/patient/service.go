package patient

import (
	"context"
	"fmt"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/repository"
	"github.com/clinicflow/ledger-api/pkg/logger"
)

type Service struct {
	repo   repository.PatientRepository
	logger *logger.Logger
}

func NewService(repo repository.PatientRepository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListPatients(ctx context.Context) ([]model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// RegisterPatient records a visit. The returned record's bookingId tells the
// caller whether this was a conversion of a booking or a plain walk-in.
func (s *Service) RegisterPatient(ctx context.Context, req model.CreatePatientRequest) (model.Patient, error) {
	patient, err := s.repo.Create(ctx, req)
	if err != nil {
		return model.Patient{}, fmt.Errorf("failed to register patient: %w", err)
	}
	if patient.BookingID != nil {
		s.logger.Info("patient registered from booking",
			"patient_id", string(patient.ID),
			"booking_id", string(*patient.BookingID))
	} else {
		s.logger.Info("walk-in patient registered", "patient_id", string(patient.ID))
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id model.PatientID, req model.UpdatePatientRequest) error {
	if err := s.repo.Update(ctx, id, req); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (s *Service) DeletePatient(ctx context.Context, id model.PatientID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}
