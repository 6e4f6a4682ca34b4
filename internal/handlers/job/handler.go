package job

import (
	"net/http"

	"clearance/infras/otel"
	"clearance/internal/domains/booking/model/dto"
	"clearance/internal/domains/booking/service"
	"clearance/shared/constant"
	gDto "clearance/shared/dto"
	"clearance/shared/validator"
	"clearance/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Handler serves the job views that span every booking.
type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/jobs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetJobs)
		routerGroup.Get("/stats", handler.GetJobStats)
	})
}

// GetJobs lists jobs of all bookings, newest first.
// @Summary Get all jobs
// @Description Retrieve jobs across bookings together with their booking reference.
// @Tags Job
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by job status"
// @Param type query string false "Filter by job type"
// @Param booking_id query string false "Filter by booking"
// @Success 200 {object} response.Data[dto.GetJobsResponse] "List of jobs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/jobs [get]
func (handler *Handler) GetJobs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetJobs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	req := dto.ListJobsRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate job filter")

		response.WithError(w, err)

		return
	}

	jobs, err := handler.service.GetAllJobs(ctx, req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get jobs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Jobs retrieved successfully")

	response.WithJSON(w, http.StatusOK, jobs)
}

// GetJobStats counts jobs per status.
// @Summary Get job statistics
// @Tags Job
// @Produce json
// @Success 200 {object} response.Data[dto.JobStatsResponse] "Job counts"
// @Failure 500 {object} response.Error
// @Router /v1/jobs/stats [get]
func (handler *Handler) GetJobStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetJobStats")
	defer scope.End()

	stats, err := handler.service.JobStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get job stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}
