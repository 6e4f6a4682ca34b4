package job_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "clearance/infras/otel/mocks"
	"clearance/internal/domains/booking/mocks"
	"clearance/internal/domains/booking/model/dto"
	"clearance/internal/handlers/job"
	gDto "clearance/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockBookingService) {
	t.Helper()

	svc := mocks.NewMockBookingService(gomock.NewController(t))
	handler := job.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_GetJobs(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(svc *mocks.MockBookingService)
		wantCode int
	}{
		{
			name:   "filtered",
			target: "/jobs?status=processing&type=direct&booking_id=b1&limit=5",
			setup: func(svc *mocks.MockBookingService) {
				svc.EXPECT().
					GetAllJobs(gomock.Any(), dto.ListJobsRequest{Status: "processing", Type: "direct", BookingID: "b1"}, gomock.Any()).
					DoAndReturn(func(_ any, _ dto.ListJobsRequest, params gDto.QueryParams) (dto.GetJobsResponse, error) {
						assert.Equal(t, 5, params.Limit)

						return dto.GetJobsResponse{}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown status",
			target:   "/jobs?status=archived",
			setup:    func(_ *mocks.MockBookingService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "store failure",
			target: "/jobs",
			setup: func(svc *mocks.MockBookingService) {
				svc.EXPECT().GetAllJobs(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.GetJobsResponse{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetJobStats(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().JobStats(gomock.Any()).Return(dto.JobStatsResponse{Total: 3}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":3`)
}
