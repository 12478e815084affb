package kvstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/repository/kvstore"
	"github.com/clinicflow/ledger-api/internal/store"
)

var testClock = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestStore() *kvstore.Store {
	return kvstore.New(store.NewMemoryStore(), kvstore.WithClock(func() time.Time { return testClock }))
}

func TestCreateBookingForcesScheduled(t *testing.T) {
	repo := newTestStore().Bookings()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateBookingRequest{
		PatientName:     "سالم الراشد",
		Phone:           "0501111111",
		DoctorName:      "د. أحمد السالم",
		AppointmentDate: "2025-05-10",
		AppointmentTime: "10:30",
		Source:          model.BookingSourcePhone,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.BookingStatusScheduled, created.Status)
	assert.Nil(t, created.LinkedPatientID)
	assert.Equal(t, testClock.UnixMilli(), created.CreatedAt)
}

func TestListBookingsNewestFirst(t *testing.T) {
	repo := newTestStore().Bookings()
	ctx := context.Background()

	first, err := repo.Create(ctx, model.CreateBookingRequest{
		PatientName: "أول", Phone: "0501", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)
	second, err := repo.Create(ctx, model.CreateBookingRequest{
		PatientName: "ثاني", Phone: "0502", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-11",
	})
	require.NoError(t, err)

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
}

func TestUpdateBookingMergesSetFields(t *testing.T) {
	repo := newTestStore().Bookings()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501", DoctorName: "د. أحمد السالم",
		AppointmentDate: "2025-05-10", AppointmentTime: "10:30",
	})
	require.NoError(t, err)

	status := model.BookingStatusNoShow
	newTime := "11:00"
	require.NoError(t, repo.Update(ctx, created.ID, model.UpdateBookingRequest{
		Status:          &status,
		AppointmentTime: &newTime,
	}))

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, model.BookingStatusNoShow, bookings[0].Status)
	assert.Equal(t, "11:00", bookings[0].AppointmentTime)
	// untouched fields survive the merge
	assert.Equal(t, "سالم", bookings[0].PatientName)
	assert.Equal(t, "2025-05-10", bookings[0].AppointmentDate)
}

func TestUpdateUnknownBookingIsNoOp(t *testing.T) {
	repo := newTestStore().Bookings()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)

	name := "غيره"
	require.NoError(t, repo.Update(ctx, "bk-missing", model.UpdateBookingRequest{PatientName: &name}))

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, created.PatientName, bookings[0].PatientName)
}

func TestDeleteBookingIsIdempotent(t *testing.T) {
	repo := newTestStore().Bookings()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, created.ID))

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestPrefill(t *testing.T) {
	repo := newTestStore().Bookings()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateBookingRequest{
		PatientName: "سالم الراشد", Phone: "0501111111", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)

	prefill, err := repo.Prefill(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, prefill)
	assert.Equal(t, "سالم الراشد", prefill.FullName)
	assert.Equal(t, "0501111111", prefill.Phone)
	assert.Equal(t, "د. أحمد السالم", prefill.DoctorName)
	assert.Equal(t, created.ID, prefill.BookingID)

	missing, err := repo.Prefill(ctx, "bk-missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
