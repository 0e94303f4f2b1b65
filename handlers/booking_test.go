package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"theyool/models"
	"theyool/services/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubBookingService returns canned results per method.
type stubBookingService struct {
	createErr     error
	transitionErr error
	created       *models.Booking
	lastInput     booking.CreateBookingInput
}

func (s *stubBookingService) Create(ctx context.Context, input booking.CreateBookingInput) (*models.Booking, models.NotificationResult, error) {
	s.lastInput = input
	if s.createErr != nil {
		return nil, models.NotificationResult{}, s.createErr
	}
	b := s.created
	if b == nil {
		b = &models.Booking{ID: "bk-1", Status: models.BookingStatusPending}
	}
	return b, models.NotificationResult{SMSSent: true, Success: true}, nil
}

func (s *stubBookingService) Confirm(ctx context.Context, id string) (*models.Booking, models.NotificationResult, error) {
	if s.transitionErr != nil {
		return nil, models.NotificationResult{}, s.transitionErr
	}
	return &models.Booking{ID: id, Status: models.BookingStatusConfirmed}, models.NotificationResult{Success: true}, nil
}

func (s *stubBookingService) Cancel(ctx context.Context, id string) (*models.Booking, models.NotificationResult, error) {
	if s.transitionErr != nil {
		return nil, models.NotificationResult{}, s.transitionErr
	}
	return &models.Booking{ID: id, Status: models.BookingStatusCancelled}, models.NotificationResult{Success: true}, nil
}

func (s *stubBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	if id == "missing" {
		return nil, booking.ErrNotFound
	}
	return &models.Booking{ID: id}, nil
}

func (s *stubBookingService) List(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	return []models.Booking{{ID: "bk-1"}, {ID: "bk-2"}}, nil
}

func (s *stubBookingService) UpdateNotes(ctx context.Context, id, notes string) (*models.Booking, error) {
	if id == "missing" {
		return nil, booking.ErrNotFound
	}
	return &models.Booking{ID: id, AdminNotes: notes}, nil
}

func (s *stubBookingService) Availability(ctx context.Context, office string) ([]models.DaySlots, error) {
	return []models.DaySlots{}, nil
}

func (s *stubBookingService) SlotsForDate(ctx context.Context, date, office string) ([]models.TimeSlotStatus, error) {
	return []models.TimeSlotStatus{}, nil
}

func bookingRouter(svc booking.BookingService) *gin.Engine {
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/consultations", h.CreateBooking)
	r.GET("/api/admin/consultations", h.ListBookings)
	r.GET("/api/admin/consultations/:id", h.GetBooking)
	r.POST("/api/admin/consultations/:id/confirm", h.ConfirmBooking)
	r.POST("/api/admin/consultations/:id/cancel", h.CancelBooking)
	r.PATCH("/api/admin/consultations/:id", h.UpdateBookingNotes)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]any {
	return map[string]any{
		"type":           "phone",
		"name":           "김민수",
		"phone":          "010-1234-5678",
		"preferred_date": "2026-03-04",
		"preferred_time": "10:30",
	}
}

func TestCreateBookingEndpoint(t *testing.T) {
	svc := &stubBookingService{}
	w := postJSON(t, bookingRouter(svc), "/api/consultations", validPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"notified":true`)
	assert.Equal(t, models.BookingTypePhone, svc.lastInput.Type)
}

func TestCreateBookingValidatesPayload(t *testing.T) {
	svc := &stubBookingService{}
	r := bookingRouter(svc)

	cases := []struct {
		name  string
		patch func(m map[string]any)
	}{
		{"unknown type", func(m map[string]any) { m["type"] = "walkin" }},
		{"short name", func(m map[string]any) { m["name"] = "김" }},
		{"missing phone", func(m map[string]any) { delete(m, "phone") }},
		{"bad email", func(m map[string]any) { m["email"] = "not-an-email" }},
		{"unknown office", func(m map[string]any) { m["office_location"] = "서울" }},
		{"missing date", func(m map[string]any) { delete(m, "preferred_date") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			tc.patch(payload)
			w := postJSON(t, r, "/api/consultations", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateBookingMapsServiceErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
	}{
		{booking.ErrInvalidPhone, http.StatusBadRequest},
		{booking.ErrMissingOffice, http.StatusBadRequest},
		{booking.ErrInvalidSlotFormat, http.StatusBadRequest},
		{booking.ErrSlotUnavailable, http.StatusConflict},
	}
	for _, tc := range cases {
		svc := &stubBookingService{createErr: tc.err}
		w := postJSON(t, bookingRouter(svc), "/api/consultations", validPayload())
		assert.Equal(t, tc.wantCode, w.Code, "error %v", tc.err)
	}
}

func TestSlotConflictMessage(t *testing.T) {
	svc := &stubBookingService{createErr: booking.ErrSlotUnavailable}
	w := postJSON(t, bookingRouter(svc), "/api/consultations", validPayload())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "다른 시간을 선택해주세요")
}

func TestConfirmEndpoint(t *testing.T) {
	w := postJSON(t, bookingRouter(&stubBookingService{}), "/api/admin/consultations/bk-1/confirm", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
}

func TestTransitionEndpointErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
	}{
		{booking.ErrNotFound, http.StatusNotFound},
		{booking.ErrTerminalState, http.StatusConflict},
		{booking.ErrInvalidTransition, http.StatusConflict},
	}
	for _, tc := range cases {
		svc := &stubBookingService{transitionErr: tc.err}
		r := bookingRouter(svc)

		w := postJSON(t, r, "/api/admin/consultations/bk-1/confirm", nil)
		assert.Equal(t, tc.wantCode, w.Code, "confirm, error %v", tc.err)

		w = postJSON(t, r, "/api/admin/consultations/bk-1/cancel", nil)
		assert.Equal(t, tc.wantCode, w.Code, "cancel, error %v", tc.err)
	}
}

func TestGetBookingEndpoint(t *testing.T) {
	r := bookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/consultations/bk-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/consultations/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingsEndpoint(t *testing.T) {
	r := bookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/consultations?status=pending", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestUpdateNotesEndpoint(t *testing.T) {
	r := bookingRouter(&stubBookingService{})

	raw, _ := json.Marshal(map[string]string{"admin_notes": "재상담 필요"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/consultations/bk-1", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "재상담 필요")
}
