package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "clearance/infras/otel/mocks"
	"clearance/internal/domains/booking/mocks"
	"clearance/internal/domains/booking/model"
	"clearance/internal/domains/booking/model/dto"
	"clearance/internal/handlers/booking"
	gDto "clearance/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockBookingService) {
	t.Helper()

	svc := mocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var payload struct {
		Data  T      `json:"data"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	return payload.Data
}

func TestHandler_GetBookings(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		GetAll(gomock.Any(), dto.ListBookingsRequest{Status: "received", Search: "BK-2025"}, gomock.Any()).
		DoAndReturn(func(_ any, _ dto.ListBookingsRequest, params gDto.QueryParams) (dto.GetBookingsResponse, error) {
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, 10, params.Limit)
			assert.Equal(t, model.FieldBookingNumber, params.SortBy)

			return dto.GetBookingsResponse{Bookings: []dto.BookingSummaryResponse{{ID: "b1"}}, TotalPage: 2, TotalData: 11}, nil
		})

	rec := serve(router, http.MethodGet, "/bookings?status=received&search=BK-2025&page=2&sort_by=booking_number", "")

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.GetBookingsResponse](t, rec)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, "b1", res.Bookings[0].ID)
}

func TestHandler_GetBookings_InvalidDate(t *testing.T) {
	router, _ := newRouter(t)

	rec := serve(router, http.MethodGet, "/bookings?created_from=15/03/2025", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetBookingByID(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "found", wantCode: http.StatusOK},
		{name: "not found", err: model.ErrBookingNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().Get(gomock.Any(), "b1").Return(dto.BookingResponse{ID: "b1"}, tt.err)

			rec := serve(router, http.MethodGet, "/bookings/b1", "")
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *mocks.MockBookingService)
		wantCode int
	}{
		{
			name: "ok",
			body: `{"status":"processing"}`,
			setup: func(svc *mocks.MockBookingService) {
				svc.EXPECT().UpdateStatus(gomock.Any(), "b1", dto.UpdateStatusRequest{Status: "processing"}).
					Return(dto.BookingResponse{ID: "b1", Status: "processing"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown status",
			body:     `{"status":"archived"}`,
			setup:    func(_ *mocks.MockBookingService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			body:     `{"status":`,
			setup:    func(_ *mocks.MockBookingService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "stale version",
			body: `{"status":"completed"}`,
			setup: func(svc *mocks.MockBookingService) {
				svc.EXPECT().UpdateStatus(gomock.Any(), "b1", gomock.Any()).Return(dto.BookingResponse{}, model.ErrVersionConflict)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodPatch, "/bookings/b1/status", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_DeleteBooking(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "b1").Return(nil)

	rec := serve(router, http.MethodDelete, "/bookings/b1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking deleted successfully")
}

func TestHandler_GetBookingStats(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Stats(gomock.Any()).Return(dto.BookingStatsResponse{Total: 4}, nil)

	rec := serve(router, http.MethodGet, "/bookings/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decode[dto.BookingStatsResponse](t, rec).Total)
}

func TestHandler_Jobs(t *testing.T) {
	t.Run("open draft", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().OpenJobCreation(gomock.Any(), "b1").Return(dto.JobDraftResponse{}, nil)

		rec := serve(router, http.MethodGet, "/bookings/b1/jobs/draft", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			CreateJob(gomock.Any(), "b1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, req dto.CreateJobRequest) (dto.JobResponse, error) {
				assert.Equal(t, "direct", req.Type)
				assert.Equal(t, "2025-03-20", req.PerformDate)

				return dto.JobResponse{ID: "j1", JobCode: "REQ-1"}, nil
			})

		rec := serve(router, http.MethodPost, "/bookings/b1/jobs", `{"type":"direct","perform_date":"2025-03-20"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "REQ-1", decode[dto.JobResponse](t, rec).JobCode)
	})

	t.Run("create with unknown type", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/bookings/b1/jobs", `{"type":"sea"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create without perform date", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().CreateJob(gomock.Any(), "b1", gomock.Any()).Return(dto.JobResponse{}, model.ErrPerformDateRequired)

		rec := serve(router, http.MethodPost, "/bookings/b1/jobs", `{"type":"direct"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().DeleteJob(gomock.Any(), "b1", "j1").Return(model.ErrJobNotFound)

		rec := serve(router, http.MethodDelete, "/bookings/b1/jobs/j1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("backward transition", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().UpdateJobStatus(gomock.Any(), "b1", "j1", dto.UpdateJobStatusRequest{Status: "pending"}).
			Return(dto.JobResponse{}, model.ErrInvalidJobTransition)

		rec := serve(router, http.MethodPatch, "/bookings/b1/jobs/j1/status", `{"status":"pending"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
