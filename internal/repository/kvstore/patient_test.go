package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicflow/ledger-api/internal/model"
)

func TestRegisterPatientComputesShares(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	patient, err := s.Patients().Create(ctx, model.CreatePatientRequest{
		FullName:    "سالم الراشد",
		Phone:       "0501111111",
		Gender:      model.GenderMale,
		DoctorName:  "د. أحمد السالم",
		ServiceType: "استشارة عامة",
		TotalPrice:  500,
		Expenses:    80,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(420), patient.NetProfit)
	assert.Equal(t, int64(168), patient.DoctorShare)
	assert.Equal(t, int64(168), patient.ClinicShare)
	assert.Equal(t, int64(84), patient.PlatformShare)
	assert.Nil(t, patient.BookingID)
}

func TestRegisterPatientAutoLinksTodaysScheduledBooking(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	booking, err := s.Bookings().Create(ctx, model.CreateBookingRequest{
		PatientName:     "سالم الراشد",
		Phone:           "0501111111",
		DoctorName:      "د. أحمد السالم",
		AppointmentDate: "2025-05-10",
		Source:          model.BookingSourcePhone,
	})
	require.NoError(t, err)

	patient, err := s.Patients().Create(ctx, model.CreatePatientRequest{
		FullName:    "سالم الراشد",
		Phone:       "0501111111",
		DoctorName:  "د. أحمد السالم",
		ServiceType: "استشارة عامة",
		TotalPrice:  300,
	})
	require.NoError(t, err)

	require.NotNil(t, patient.BookingID)
	assert.Equal(t, booking.ID, *patient.BookingID)

	bookings, err := s.Bookings().List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, model.BookingStatusCompleted, bookings[0].Status)
	require.NotNil(t, bookings[0].LinkedPatientID)
	assert.Equal(t, patient.ID, *bookings[0].LinkedPatientID)
}

func TestAutoLinkFirstMatchWinsNewestFirst(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	older, err := s.Bookings().Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)
	newer, err := s.Bookings().Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501111111", DoctorName: "د. سارة المطيري", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)

	patient, err := s.Patients().Create(ctx, model.CreatePatientRequest{
		FullName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", ServiceType: "استشارة عامة",
	})
	require.NoError(t, err)

	require.NotNil(t, patient.BookingID)
	assert.Equal(t, newer.ID, *patient.BookingID)

	bookings, err := s.Bookings().List(ctx)
	require.NoError(t, err)
	for _, b := range bookings {
		if b.ID == older.ID {
			assert.Equal(t, model.BookingStatusScheduled, b.Status)
			assert.Nil(t, b.LinkedPatientID)
		}
	}
}

func TestAutoLinkSkipsNonCandidates(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	// wrong day
	_, err := s.Bookings().Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-11",
	})
	require.NoError(t, err)

	// right day, already canceled
	canceled, err := s.Bookings().Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)
	status := model.BookingStatusCanceled
	require.NoError(t, s.Bookings().Update(ctx, canceled.ID, model.UpdateBookingRequest{Status: &status}))

	patient, err := s.Patients().Create(ctx, model.CreatePatientRequest{
		FullName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", ServiceType: "استشارة عامة",
	})
	require.NoError(t, err)
	assert.Nil(t, patient.BookingID)
}

func TestUpdatePatientRecomputesWithCurrentSplit(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	patient, err := s.Patients().Create(ctx, model.CreatePatientRequest{
		FullName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم",
		ServiceType: "استشارة عامة", TotalPrice: 500, Expenses: 80,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(168), patient.DoctorShare)

	settings, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	settings.DoctorPercent = 50
	settings.ClinicPercent = 30
	settings.PlatformPercent = 20
	require.NoError(t, s.Settings().Save(ctx, settings))

	// an empty update still refreshes the derived figures
	require.NoError(t, s.Patients().Update(ctx, patient.ID, model.UpdatePatientRequest{}))

	patients, err := s.Patients().List(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, int64(420), patients[0].NetProfit)
	assert.Equal(t, int64(210), patients[0].DoctorShare)
	assert.Equal(t, int64(126), patients[0].ClinicShare)
	assert.Equal(t, int64(84), patients[0].PlatformShare)
}

func TestSplitChangeIsNotRetroactive(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	patient, err := s.Patients().Create(ctx, model.CreatePatientRequest{
		FullName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم",
		ServiceType: "استشارة عامة", TotalPrice: 500, Expenses: 80,
	})
	require.NoError(t, err)

	settings, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	settings.DoctorPercent = 50
	settings.ClinicPercent = 30
	require.NoError(t, s.Settings().Save(ctx, settings))

	// untouched records keep the figures they were stored with
	patients, err := s.Patients().List(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, patient.DoctorShare, patients[0].DoctorShare)
}

func TestUpdatePatientNeverTouchesBookingLink(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	booking, err := s.Bookings().Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)

	patient, err := s.Patients().Create(ctx, model.CreatePatientRequest{
		FullName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", ServiceType: "استشارة عامة",
	})
	require.NoError(t, err)
	require.NotNil(t, patient.BookingID)

	phone := "0509999999"
	require.NoError(t, s.Patients().Update(ctx, patient.ID, model.UpdatePatientRequest{Phone: &phone}))

	patients, err := s.Patients().List(ctx)
	require.NoError(t, err)
	require.NotNil(t, patients[0].BookingID)
	assert.Equal(t, booking.ID, *patients[0].BookingID)
}

func TestDeletePatientLeavesBookingLinkDangling(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Bookings().Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)

	patient, err := s.Patients().Create(ctx, model.CreatePatientRequest{
		FullName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", ServiceType: "استشارة عامة",
	})
	require.NoError(t, err)

	require.NoError(t, s.Patients().Delete(ctx, patient.ID))

	patients, err := s.Patients().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, patients)

	bookings, err := s.Bookings().List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, model.BookingStatusCompleted, bookings[0].Status)
	require.NotNil(t, bookings[0].LinkedPatientID)
	assert.Equal(t, patient.ID, *bookings[0].LinkedPatientID)
}
