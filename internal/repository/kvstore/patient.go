package kvstore

import (
	"context"
	"fmt"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/store"
)

type PatientRepository struct {
	s *Store
}

func (r *PatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.loadPatients(ctx), nil
}

// Create derives the profit figures from the split percentages in effect
// right now, then runs the auto-link rule: the first booking in newest-first
// order with the same phone, today's appointment date and status scheduled is
// linked to the new record and flipped to completed. First match wins; the
// rule never tries to pick a best candidate.
func (r *PatientRepository) Create(ctx context.Context, req model.CreatePatientRequest) (model.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	settings := r.s.loadSettings(ctx)
	net, doctor, clinic, platform := model.ComputeShares(settings, req.TotalPrice, req.Expenses)

	patient := model.Patient{
		ID:            model.PatientID(r.s.gen.Next("pt")),
		FullName:      req.FullName,
		Phone:         req.Phone,
		Gender:        req.Gender,
		BirthDate:     req.BirthDate,
		Address:       req.Address,
		DoctorName:    req.DoctorName,
		ServiceType:   req.ServiceType,
		TotalPrice:    req.TotalPrice,
		Expenses:      req.Expenses,
		NetProfit:     net,
		DoctorShare:   doctor,
		ClinicShare:   clinic,
		PlatformShare: platform,
		BookingID:     nil,
		MedicalNotes:  req.MedicalNotes,
		VisitDate:     req.VisitDate,
		CreatedAt:     r.s.now().UnixMilli(),
	}

	today := model.DateOnly(r.s.now())
	bookings := r.s.loadBookings(ctx)
	for i := range bookings {
		b := &bookings[i]
		if b.Phone == req.Phone && b.AppointmentDate == today && b.Status == model.BookingStatusScheduled {
			bookingID := b.ID
			patientID := patient.ID
			patient.BookingID = &bookingID
			b.Status = model.BookingStatusCompleted
			b.LinkedPatientID = &patientID
			if err := r.s.save(ctx, "booking_link", store.KeyBookings, bookings); err != nil {
				return model.Patient{}, fmt.Errorf("failed to save bookings: %w", err)
			}
			break
		}
	}

	if r.s.metrics != nil {
		if patient.BookingID != nil {
			r.s.metrics.PatientsLinked.Inc()
		} else {
			r.s.metrics.PatientsUnlinked.Inc()
		}
	}

	patients := append([]model.Patient{patient}, r.s.loadPatients(ctx)...)
	if err := r.s.save(ctx, "patient_create", store.KeyPatients, patients); err != nil {
		return model.Patient{}, fmt.Errorf("failed to save patients: %w", err)
	}
	return patient, nil
}

// Update merges the set fields and recomputes the profit figures with the
// percentages in effect now, not the ones from the original registration.
// It never re-runs the auto-link rule and never touches the booking link.
// An unknown id is a no-op.
func (r *PatientRepository) Update(ctx context.Context, id model.PatientID, req model.UpdatePatientRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	settings := r.s.loadSettings(ctx)
	patients := r.s.loadPatients(ctx)
	for i := range patients {
		if patients[i].ID == id {
			applyPatientUpdate(&patients[i], req)
			p := &patients[i]
			p.NetProfit, p.DoctorShare, p.ClinicShare, p.PlatformShare =
				model.ComputeShares(settings, p.TotalPrice, p.Expenses)
			break
		}
	}
	if err := r.s.save(ctx, "patient_update", store.KeyPatients, patients); err != nil {
		return fmt.Errorf("failed to save patients: %w", err)
	}
	return nil
}

// Delete removes the visit record only. A booking linked to it keeps its
// completed status and its linkedPatientId; the dangling reference is the
// documented behavior, not an oversight to clean up here.
func (r *PatientRepository) Delete(ctx context.Context, id model.PatientID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	patients := r.s.loadPatients(ctx)
	kept := patients[:0]
	for _, p := range patients {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := r.s.save(ctx, "patient_delete", store.KeyPatients, kept); err != nil {
		return fmt.Errorf("failed to save patients: %w", err)
	}
	return nil
}

func applyPatientUpdate(p *model.Patient, req model.UpdatePatientRequest) {
	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		p.BirthDate = *req.BirthDate
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.DoctorName != nil {
		p.DoctorName = *req.DoctorName
	}
	if req.ServiceType != nil {
		p.ServiceType = *req.ServiceType
	}
	if req.TotalPrice != nil {
		p.TotalPrice = *req.TotalPrice
	}
	if req.Expenses != nil {
		p.Expenses = *req.Expenses
	}
	if req.MedicalNotes != nil {
		p.MedicalNotes = *req.MedicalNotes
	}
	if req.VisitDate != nil {
		p.VisitDate = *req.VisitDate
	}
}
