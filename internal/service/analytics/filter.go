package analytics

import (
	"time"

	"github.com/clinicflow/ledger-api/internal/model"
)

// ApplyBookingFilters returns the bookings matching every present field of
// the spec, original order preserved. An empty spec is the identity. Period
// tokens are evaluated against now: today is an exact date match, week is
// appointment date on or after now minus 7 days, month on or after now minus
// one calendar month.
func ApplyBookingFilters(bookings []model.Booking, spec model.FilterSpec, now time.Time) []model.Booking {
	out := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if spec.Doctor != "" && b.DoctorName != spec.Doctor {
			continue
		}
		if spec.Source != "" && b.Source != spec.Source {
			continue
		}
		if spec.Status != "" && b.Status != spec.Status {
			continue
		}
		if spec.DateFrom != "" && b.AppointmentDate < spec.DateFrom {
			continue
		}
		if spec.DateTo != "" && b.AppointmentDate > spec.DateTo {
			continue
		}
		if spec.Period != "" && !bookingInPeriod(b, spec.Period, now) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ApplyPatientFilters mirrors ApplyBookingFilters for visit records. Patient
// periods are evaluated against the record's creation time, and the explicit
// date range does not apply to patients.
func ApplyPatientFilters(patients []model.Patient, spec model.FilterSpec, now time.Time) []model.Patient {
	out := make([]model.Patient, 0, len(patients))
	for _, p := range patients {
		if spec.Doctor != "" && p.DoctorName != spec.Doctor {
			continue
		}
		if spec.Service != "" && p.ServiceType != spec.Service {
			continue
		}
		if spec.Gender != "" && p.Gender != spec.Gender {
			continue
		}
		if spec.Period != "" && !patientInPeriod(p, spec.Period, now) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func bookingInPeriod(b model.Booking, period model.Period, now time.Time) bool {
	switch period {
	case model.PeriodToday:
		return b.AppointmentDate == model.DateOnly(now)
	case model.PeriodWeek, model.PeriodMonth:
		d, err := model.ParseDate(b.AppointmentDate)
		if err != nil {
			return false
		}
		return !d.Before(periodCutoff(period, now))
	}
	return true
}

func patientInPeriod(p model.Patient, period model.Period, now time.Time) bool {
	switch period {
	case model.PeriodToday:
		return model.DateOfMillis(p.CreatedAt) == model.DateOnly(now)
	case model.PeriodWeek, model.PeriodMonth:
		return !time.UnixMilli(p.CreatedAt).Before(periodCutoff(period, now))
	}
	return true
}

func periodCutoff(period model.Period, now time.Time) time.Time {
	if period == model.PeriodWeek {
		return now.AddDate(0, 0, -7)
	}
	return now.AddDate(0, -1, 0)
}
