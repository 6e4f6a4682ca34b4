package booking

import (
	"net/http"

	"clearance/infras/otel"
	"clearance/internal/domains/booking/model"
	"clearance/internal/domains/booking/model/dto"
	"clearance/internal/domains/booking/service"
	"clearance/shared/constant"
	gDto "clearance/shared/dto"
	"clearance/shared/validator"
	"clearance/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/stats", handler.GetBookingStats)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Delete("/{id}", handler.DeleteBooking)

		routerGroup.Get("/{id}/jobs/draft", handler.OpenJobCreation)
		routerGroup.Post("/{id}/jobs", handler.CreateJob)
		routerGroup.Delete("/{id}/jobs/{jobID}", handler.DeleteJob)
		routerGroup.Patch("/{id}/jobs/{jobID}/status", handler.UpdateJobStatus)
	})
}

func (handler *Handler) scope(r *http.Request, name string) (*http.Request, otel.Scope) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)

	return r.WithContext(ctx), scope
}

// GetBookings lists bookings for the planning board.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering, sorting and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by booking status"
// @Param customer_id query string false "Filter by customer"
// @Param search query string false "Booking number prefix"
// @Param created_from query string false "Created on or after (YYYY-MM-DD)"
// @Param created_to query string false "Created on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, model.SortableFields...)

	req := dto.ListBookingsRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking filter")

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(r.Context(), req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingStats counts bookings per status.
// @Summary Get booking statistics
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.BookingStatsResponse] "Booking counts"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/stats [get]
func (handler *Handler) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "GetBookingStats")
	defer scope.End()

	stats, err := handler.service.Stats(r.Context())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetBookingByID retrieves a booking with its fleets, cargo and jobs.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(r.Context(), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBookingStatus sets the booking status explicitly.
// @Summary Update booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status updated to " + req.Status)

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes a booking and its stored packing lists.
// @Summary Delete a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(r.Context(), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// OpenJobCreation returns a fresh job draft seeded from the booking.
// @Summary Open job creation
// @Tags Job
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.JobDraftResponse] "Job draft with selectable vehicles"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/jobs/draft [get]
func (handler *Handler) OpenJobCreation(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "OpenJobCreation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	draft, err := handler.service.OpenJobCreation(r.Context(), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to open job creation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// CreateJob appends a job to the booking.
// @Summary Create a job
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CreateJobRequest true "Job draft"
// @Success 201 {object} response.Data[dto.JobResponse] "Created job"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/jobs [post]
func (handler *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "CreateJob")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.CreateJobRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	job, err := handler.service.CreateJob(r.Context(), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to create job")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Job " + job.JobCode + " created successfully")

	response.WithJSON(w, http.StatusCreated, job)
}

// DeleteJob removes a job from the booking.
// @Summary Delete a job
// @Tags Job
// @Produce json
// @Param id path string true "Booking ID"
// @Param jobID path string true "Job ID"
// @Success 200 {object} response.Message "Job deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/jobs/{jobID} [delete]
func (handler *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "DeleteJob")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	jobID := chi.URLParam(r, constant.RequestParamJobID)

	if err := handler.service.DeleteJob(r.Context(), id, jobID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("jobID", jobID).Msg("failed to delete job")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Job deleted successfully")
}

// UpdateJobStatus moves a job forward in its lifecycle.
// @Summary Update job status
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param jobID path string true "Job ID"
// @Param request body dto.UpdateJobStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.JobResponse] "Updated job"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/jobs/{jobID}/status [patch]
func (handler *Handler) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "UpdateJobStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	jobID := chi.URLParam(r, constant.RequestParamJobID)
	req := dto.UpdateJobStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	job, err := handler.service.UpdateJobStatus(r.Context(), id, jobID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("jobID", jobID).Msg("failed to update job status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, job)
}
