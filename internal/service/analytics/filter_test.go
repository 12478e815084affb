package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clinicflow/ledger-api/internal/model"
)

var filterNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func booking(id string, doctor string, source model.BookingSource, status model.BookingStatus, date string) model.Booking {
	return model.Booking{
		ID:              model.BookingID(id),
		DoctorName:      doctor,
		Source:          source,
		Status:          status,
		AppointmentDate: date,
	}
}

func TestEmptySpecIsIdentity(t *testing.T) {
	bookings := []model.Booking{
		booking("b1", "د. أحمد السالم", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-05-10"),
		booking("b2", "د. سارة المطيري", model.BookingSourceOnline, model.BookingStatusCompleted, "2025-04-01"),
	}

	got := ApplyBookingFilters(bookings, model.FilterSpec{}, filterNow)
	assert.Equal(t, bookings, got)
}

func TestBookingFiltersCombineWithAnd(t *testing.T) {
	bookings := []model.Booking{
		booking("b1", "د. أحمد السالم", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-05-10"),
		booking("b2", "د. أحمد السالم", model.BookingSourceOnline, model.BookingStatusScheduled, "2025-05-10"),
		booking("b3", "د. سارة المطيري", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-05-10"),
		booking("b4", "د. أحمد السالم", model.BookingSourcePhone, model.BookingStatusCanceled, "2025-05-10"),
	}

	got := ApplyBookingFilters(bookings, model.FilterSpec{
		Doctor: "د. أحمد السالم",
		Source: model.BookingSourcePhone,
		Status: model.BookingStatusScheduled,
	}, filterNow)

	assert.Len(t, got, 1)
	assert.Equal(t, model.BookingID("b1"), got[0].ID)
}

func TestBookingDateRangeFilter(t *testing.T) {
	bookings := []model.Booking{
		booking("b1", "د", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-05-01"),
		booking("b2", "د", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-05-05"),
		booking("b3", "د", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-05-09"),
	}

	got := ApplyBookingFilters(bookings, model.FilterSpec{
		DateFrom: "2025-05-02",
		DateTo:   "2025-05-08",
	}, filterNow)

	assert.Len(t, got, 1)
	assert.Equal(t, model.BookingID("b2"), got[0].ID)
}

func TestBookingPeriodToday(t *testing.T) {
	bookings := []model.Booking{
		booking("b1", "د", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-05-10"),
		booking("b2", "د", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-05-09"),
	}

	got := ApplyBookingFilters(bookings, model.FilterSpec{Period: model.PeriodToday}, filterNow)
	assert.Len(t, got, 1)
	assert.Equal(t, model.BookingID("b1"), got[0].ID)
}

func TestBookingPeriodWeekAndMonth(t *testing.T) {
	bookings := []model.Booking{
		booking("b1", "د", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-05-08"),
		booking("b2", "د", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-04-20"),
		booking("b3", "د", model.BookingSourcePhone, model.BookingStatusScheduled, "2025-03-01"),
	}

	week := ApplyBookingFilters(bookings, model.FilterSpec{Period: model.PeriodWeek}, filterNow)
	assert.Len(t, week, 1)
	assert.Equal(t, model.BookingID("b1"), week[0].ID)

	month := ApplyBookingFilters(bookings, model.FilterSpec{Period: model.PeriodMonth}, filterNow)
	assert.Len(t, month, 2)
}

func TestPatientFilters(t *testing.T) {
	old := filterNow.AddDate(0, -2, 0)
	patients := []model.Patient{
		{ID: "p1", DoctorName: "د. أحمد السالم", ServiceType: "استشارة عامة", Gender: model.GenderMale, CreatedAt: filterNow.UnixMilli()},
		{ID: "p2", DoctorName: "د. أحمد السالم", ServiceType: "أشعة سينية", Gender: model.GenderFemale, CreatedAt: filterNow.UnixMilli()},
		{ID: "p3", DoctorName: "د. سارة المطيري", ServiceType: "استشارة عامة", Gender: model.GenderMale, CreatedAt: filterNow.UnixMilli()},
		{ID: "p4", DoctorName: "د. أحمد السالم", ServiceType: "استشارة عامة", Gender: model.GenderMale, CreatedAt: old.UnixMilli()},
	}

	got := ApplyPatientFilters(patients, model.FilterSpec{
		Doctor:  "د. أحمد السالم",
		Service: "استشارة عامة",
		Gender:  model.GenderMale,
		Period:  model.PeriodMonth,
	}, filterNow)

	assert.Len(t, got, 1)
	assert.Equal(t, model.PatientID("p1"), got[0].ID)
}

func TestPatientPeriodUsesCreationTime(t *testing.T) {
	patients := []model.Patient{
		{ID: "p1", CreatedAt: filterNow.UnixMilli()},
		{ID: "p2", CreatedAt: filterNow.AddDate(0, 0, -1).UnixMilli()},
	}

	got := ApplyPatientFilters(patients, model.FilterSpec{Period: model.PeriodToday}, filterNow)
	assert.Len(t, got, 1)
	assert.Equal(t, model.PatientID("p1"), got[0].ID)
}
