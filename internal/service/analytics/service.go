package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/repository"
)

// Short Arabic weekday names, Sunday first, matching time.Weekday numbering.
var weekdayLabels = [7]string{"أح", "إث", "ثل", "أر", "خم", "جم", "سب"}

type Service struct {
	bookings repository.BookingRepository
	patients repository.PatientRepository
	now      func() time.Time
}

func NewService(bookings repository.BookingRepository, patients repository.PatientRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{bookings: bookings, patients: patients, now: now}
}

// GetStats computes the full analytics bundle over the filtered collections.
// Every call recomputes from scratch; at a single clinic's volume the O(n)
// scans are cheaper than keeping aggregates consistent with every write.
func (s *Service) GetStats(ctx context.Context, spec model.FilterSpec) (*model.StatsBundle, error) {
	allBookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	allPatients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	now := s.now()
	bookings := ApplyBookingFilters(allBookings, spec, now)
	patients := ApplyPatientFilters(allPatients, spec, now)

	bundle := &model.StatsBundle{
		TotalBookings: len(bookings),
		TotalPatients: len(patients),
		DoctorData:    make(map[string]*model.DoctorBreakdown),
		ServiceData:   make(map[string]int),
		GenderData:    map[model.Gender]int{model.GenderMale: 0, model.GenderFemale: 0},
		Sources:       make(map[model.BookingSource]int),
	}

	for _, b := range bookings {
		switch b.Status {
		case model.BookingStatusCompleted:
			bundle.CompletedBookings++
		case model.BookingStatusNoShow:
			bundle.NoShowBookings++
		case model.BookingStatusCanceled:
			bundle.CanceledBookings++
		case model.BookingStatusScheduled:
			bundle.ScheduledBookings++
		}
		bundle.Sources[b.Source]++
	}

	for _, p := range patients {
		if p.BookingID != nil {
			bundle.ConvertedPatients++
		} else {
			bundle.WalkInPatients++
		}
		bundle.TotalRevenue += p.TotalPrice
		bundle.TotalExpenses += p.Expenses
		bundle.TotalNetProfit += p.NetProfit
		bundle.ServiceData[p.ServiceType]++
		if p.Gender == model.GenderMale {
			bundle.GenderData[model.GenderMale]++
		} else {
			bundle.GenderData[model.GenderFemale]++
		}
	}

	if bundle.TotalPatients > 0 {
		bundle.AvgProfit = model.RoundDiv(bundle.TotalNetProfit, int64(bundle.TotalPatients))
	}
	if bundle.TotalBookings > 0 {
		total := int64(bundle.TotalBookings)
		bundle.AttendanceRate = int(model.RoundDiv(int64(bundle.CompletedBookings)*100, total))
		bundle.NoShowRate = int(model.RoundDiv(int64(bundle.NoShowBookings)*100, total))
		bundle.ConversionRate = int(model.RoundDiv(int64(bundle.ConvertedPatients)*100, total))
	}

	bundle.TopDoctor = topDoctorByProfit(patients)
	bundle.TopSource = topSourceByCount(bookings)
	bundle.DailyData = dailySeries(bookings, patients, now)

	for _, p := range patients {
		d, ok := bundle.DoctorData[p.DoctorName]
		if !ok {
			d = &model.DoctorBreakdown{}
			bundle.DoctorData[p.DoctorName] = d
		}
		d.Revenue += p.NetProfit
		d.Count++
	}
	for _, b := range bookings {
		d, ok := bundle.DoctorData[b.DoctorName]
		if !ok {
			d = &model.DoctorBreakdown{}
			bundle.DoctorData[b.DoctorName] = d
		}
		d.Bookings++
	}

	return bundle, nil
}

// topDoctorByProfit keeps doctors in first-seen order so ties resolve the
// same way on every run with identical input ordering.
func topDoctorByProfit(patients []model.Patient) *model.TopDoctor {
	profits := make(map[string]int64)
	var order []string
	for _, p := range patients {
		if _, ok := profits[p.DoctorName]; !ok {
			order = append(order, p.DoctorName)
		}
		profits[p.DoctorName] += p.NetProfit
	}
	if len(order) == 0 {
		return nil
	}
	sort.SliceStable(order, func(i, j int) bool {
		return profits[order[i]] > profits[order[j]]
	})
	return &model.TopDoctor{Name: order[0], Profit: profits[order[0]]}
}

func topSourceByCount(bookings []model.Booking) *model.TopSource {
	counts := make(map[model.BookingSource]int)
	var order []model.BookingSource
	for _, b := range bookings {
		if _, ok := counts[b.Source]; !ok {
			order = append(order, b.Source)
		}
		counts[b.Source]++
	}
	if len(order) == 0 {
		return nil
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return &model.TopSource{Name: order[0], Count: counts[order[0]]}
}

// dailySeries builds the 7-day chart window ending today, oldest day first.
func dailySeries(bookings []model.Booking, patients []model.Patient, now time.Time) []model.DailyPoint {
	series := make([]model.DailyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := model.DateOnly(day)
		point := model.DailyPoint{
			Date:  date,
			Label: weekdayLabels[int(day.UTC().Weekday())],
		}
		for _, b := range bookings {
			if b.AppointmentDate == date {
				point.Bookings++
			}
		}
		for _, p := range patients {
			if model.DateOfMillis(p.CreatedAt) == date {
				point.Patients++
				point.Revenue += p.NetProfit
			}
		}
		series = append(series, point)
	}
	return series
}
