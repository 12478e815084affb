package booking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicflow/ledger-api/internal/handler"
	bookingHandler "github.com/clinicflow/ledger-api/internal/handler/booking"
	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/repository/kvstore"
	bookingService "github.com/clinicflow/ledger-api/internal/service/booking"
	"github.com/clinicflow/ledger-api/internal/store"
	"github.com/clinicflow/ledger-api/pkg/logger"
)

func newTestRouter() (*gin.Engine, *kvstore.Store) {
	gin.SetMode(gin.TestMode)
	handler.RegisterValidators()

	s := kvstore.New(store.NewMemoryStore(), kvstore.WithClock(func() time.Time {
		return time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	}))
	svc := bookingService.NewService(s.Bookings(), logger.NewLogger(nil))

	engine := gin.New()
	bookingHandler.NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine, s
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateAndListBookings(t *testing.T) {
	engine, _ := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"patientName":     "سالم الراشد",
		"phone":           "0501111111",
		"doctorName":      "د. أحمد السالم",
		"appointmentDate": "2025-05-10",
		"appointmentTime": "10:30",
		"source":          "phone",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Status string        `json:"status"`
		Data   model.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "success", created.Status)
	assert.Equal(t, model.BookingStatusScheduled, created.Data.Status)
	assert.NotEmpty(t, created.Data.ID)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Data []model.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, created.Data.ID, listed.Data[0].ID)
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	engine, _ := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"patientName":     "سالم",
		"phone":           "0501111111",
		"doctorName":      "د. أحمد السالم",
		"appointmentDate": "10/05/2025",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	engine, _ := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"patientName": "سالم",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrefillEndpoint(t *testing.T) {
	engine, s := newTestRouter()

	created, err := s.Bookings().Create(context.Background(), model.CreateBookingRequest{
		PatientName: "سالم الراشد", Phone: "0501111111", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/bookings/"+string(created.ID)+"/prefill", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.PatientPrefill `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "سالم الراشد", resp.Data.FullName)
	assert.Equal(t, created.ID, resp.Data.BookingID)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/bookings/bk-missing/prefill", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBooking(t *testing.T) {
	engine, s := newTestRouter()

	created, err := s.Bookings().Create(context.Background(), model.CreateBookingRequest{
		PatientName: "سالم", Phone: "0501111111", DoctorName: "د. أحمد السالم", AppointmentDate: "2025-05-10",
	})
	require.NoError(t, err)

	w := doJSON(t, engine, http.MethodDelete, "/api/v1/bookings/"+string(created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	bookings, err := s.Bookings().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
