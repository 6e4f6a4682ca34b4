package wizard

import (
	"net/http"
	"strconv"

	"clearance/infras/otel"
	bookingModel "clearance/internal/domains/booking/model"
	"clearance/internal/domains/wizard/model/dto"
	"clearance/internal/domains/wizard/service"
	"clearance/shared/constant"
	"clearance/shared/failure"
	"clearance/shared/validator"
	"clearance/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wizard
	otel    otel.Otel
}

func New(service service.Wizard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wizards", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartWizard)
		routerGroup.Get("/{id}", handler.GetWizard)
		routerGroup.Delete("/{id}", handler.CancelWizard)
		routerGroup.Post("/{id}/next", handler.NextStep)
		routerGroup.Post("/{id}/prev", handler.PrevStep)
		routerGroup.Post("/{id}/submit", handler.SubmitWizard)
		routerGroup.Put("/{id}/general", handler.UpdateGeneral)

		routerGroup.Post("/{id}/vehicles/{fleet}", handler.AddVehicle)
		routerGroup.Patch("/{id}/vehicles/{fleet}/{vehicleID}", handler.UpdateVehicle)
		routerGroup.Delete("/{id}/vehicles/{fleet}/{vehicleID}", handler.RemoveVehicle)

		routerGroup.Put("/{id}/cargo/mode", handler.SetCargoMode)
		routerGroup.Post("/{id}/cargo/items", handler.AddCargoItem)
		routerGroup.Patch("/{id}/cargo/items/{index}", handler.UpdateCargoItem)
		routerGroup.Delete("/{id}/cargo/items/{index}", handler.RemoveCargoItem)
		routerGroup.Post("/{id}/cargo/items/{index}/file", handler.UploadItemFile)
		routerGroup.Delete("/{id}/cargo/items/{index}/file", handler.RemoveItemFile)
		routerGroup.Post("/{id}/cargo/packing-list", handler.UploadPackingList)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

func itemIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, constant.RequestParamIndex)

	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.BadRequestf("invalid cargo item index %q", raw)
	}

	return index, nil
}

// uploadRequest reads the multipart file. The caller closes FileReader.
func uploadRequest(r *http.Request) (dto.UploadFileRequest, error) {
	req := dto.UploadFileRequest{}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequest(err)
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.File = fileHeader
		req.FileReader = file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		if req.FileReader != nil {
			req.FileReader.Close()
		}

		return req, err
	}

	return req, nil
}

// StartWizard opens a create session, or an edit session when booking_id is set.
// @Summary Start a booking wizard
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body dto.StartWizardRequest false "Booking to edit"
// @Success 201 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards [post]
func (handler *Handler) StartWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartWizard")
	defer scope.End()

	req := dto.StartWizardRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			handler.fail(w, scope, err, "failed to validate request body")

			return
		}
	}

	res, err := handler.service.Start(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to start wizard")

		return
	}

	scope.AddEvent("Wizard " + res.ID + " started in " + res.Mode + " mode")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetWizard returns the staged state of a session.
// @Summary Get a wizard session
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards/{id} [get]
func (handler *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWizard")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to get wizard")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelWizard discards a session and the files uploaded in it.
// @Summary Cancel a wizard session
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Message "Wizard cancelled"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards/{id} [delete]
func (handler *Handler) CancelWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelWizard")
	defer scope.End()

	if err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		handler.fail(w, scope, err, "failed to cancel wizard")

		return
	}

	response.WithMessage(w, http.StatusOK, "Wizard cancelled")
}

// NextStep moves to the next step.
// @Summary Next wizard step
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/next [post]
func (handler *Handler) NextStep(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NextStep")
	defer scope.End()

	res, err := handler.service.Next(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to move wizard forward")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PrevStep moves to the previous step.
// @Summary Previous wizard step
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/prev [post]
func (handler *Handler) PrevStep(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PrevStep")
	defer scope.End()

	res, err := handler.service.Prev(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to move wizard back")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateGeneral replaces the general info form.
// @Summary Update general info
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param request body dto.UpdateGeneralRequest true "General info"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/general [put]
func (handler *Handler) UpdateGeneral(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGeneral")
	defer scope.End()

	req := dto.UpdateGeneralRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateGeneral(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update general info")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddVehicle appends a blank vehicle to a fleet.
// @Summary Add a vehicle
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Param fleet path string true "origin or destination"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/vehicles/{fleet} [post]
func (handler *Handler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddVehicle")
	defer scope.End()

	res, err := handler.service.AddVehicle(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamFleet))
	if err != nil {
		handler.fail(w, scope, err, "failed to add vehicle")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateVehicle merges the set fields into a vehicle.
// @Summary Update a vehicle
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param fleet path string true "origin or destination"
// @Param vehicleID path string true "Vehicle ID"
// @Param request body bookingModel.VehiclePatch true "Fields to change"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/vehicles/{fleet}/{vehicleID} [patch]
func (handler *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehicle")
	defer scope.End()

	patch := bookingModel.VehiclePatch{}

	if err := validator.Validate(r.Body, &patch); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateVehicle(
		ctx,
		chi.URLParam(r, constant.RequestParamID),
		chi.URLParam(r, constant.RequestParamFleet),
		chi.URLParam(r, constant.RequestParamVehicleID),
		patch,
	)
	if err != nil {
		handler.fail(w, scope, err, "failed to update vehicle")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RemoveVehicle deletes a vehicle from a fleet.
// @Summary Remove a vehicle
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Param fleet path string true "origin or destination"
// @Param vehicleID path string true "Vehicle ID"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/vehicles/{fleet}/{vehicleID} [delete]
func (handler *Handler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveVehicle")
	defer scope.End()

	res, err := handler.service.RemoveVehicle(
		ctx,
		chi.URLParam(r, constant.RequestParamID),
		chi.URLParam(r, constant.RequestParamFleet),
		chi.URLParam(r, constant.RequestParamVehicleID),
	)
	if err != nil {
		handler.fail(w, scope, err, "failed to remove vehicle")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetCargoMode switches between bulk and consolidated cargo.
// @Summary Set cargo mode
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param request body dto.CargoModeRequest true "Cargo mode"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/cargo/mode [put]
func (handler *Handler) SetCargoMode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetCargoMode")
	defer scope.End()

	req := dto.CargoModeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.SetCargoMode(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		handler.fail(w, scope, err, "failed to set cargo mode")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddCargoItem appends a blank item to a consolidated manifest.
// @Summary Add a cargo item
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/cargo/items [post]
func (handler *Handler) AddCargoItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCargoItem")
	defer scope.End()

	res, err := handler.service.AddCargoItem(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to add cargo item")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateCargoItem merges the set fields into a cargo item.
// @Summary Update a cargo item
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param index path int true "Item index"
// @Param request body bookingModel.CargoItemPatch true "Fields to change"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/cargo/items/{index} [patch]
func (handler *Handler) UpdateCargoItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCargoItem")
	defer scope.End()

	index, err := itemIndex(r)
	if err != nil {
		handler.fail(w, scope, err, "failed to parse cargo item index")

		return
	}

	patch := bookingModel.CargoItemPatch{}

	if err := validator.Validate(r.Body, &patch); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateCargoItem(ctx, chi.URLParam(r, constant.RequestParamID), index, patch)
	if err != nil {
		handler.fail(w, scope, err, "failed to update cargo item")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RemoveCargoItem deletes a cargo item.
// @Summary Remove a cargo item
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Param index path int true "Item index"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/cargo/items/{index} [delete]
func (handler *Handler) RemoveCargoItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveCargoItem")
	defer scope.End()

	index, err := itemIndex(r)
	if err != nil {
		handler.fail(w, scope, err, "failed to parse cargo item index")

		return
	}

	res, err := handler.service.RemoveCargoItem(ctx, chi.URLParam(r, constant.RequestParamID), index)
	if err != nil {
		handler.fail(w, scope, err, "failed to remove cargo item")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadItemFile attaches a packing list to a cargo item.
// @Summary Upload an item packing list
// @Tags Wizard
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Wizard ID"
// @Param index path int true "Item index"
// @Param file formData file true "Packing list (pdf, png, jpeg, xls, xlsx; max 10 MB)"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards/{id}/cargo/items/{index}/file [post]
func (handler *Handler) UploadItemFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadItemFile")
	defer scope.End()

	index, err := itemIndex(r)
	if err != nil {
		handler.fail(w, scope, err, "failed to parse cargo item index")

		return
	}

	req, err := uploadRequest(r)
	if err != nil {
		handler.fail(w, scope, err, "failed to validate upload")

		return
	}
	defer req.FileReader.Close()

	res, err := handler.service.UploadItemFile(ctx, chi.URLParam(r, constant.RequestParamID), index, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to upload item packing list")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RemoveItemFile detaches the packing list of a cargo item.
// @Summary Remove an item packing list
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Param index path int true "Item index"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/cargo/items/{index}/file [delete]
func (handler *Handler) RemoveItemFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveItemFile")
	defer scope.End()

	index, err := itemIndex(r)
	if err != nil {
		handler.fail(w, scope, err, "failed to parse cargo item index")

		return
	}

	res, err := handler.service.RemoveItemFile(ctx, chi.URLParam(r, constant.RequestParamID), index)
	if err != nil {
		handler.fail(w, scope, err, "failed to remove item packing list")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadPackingList attaches the aggregate packing list of a bulk load.
// @Summary Upload the bulk packing list
// @Tags Wizard
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Wizard ID"
// @Param file formData file true "Packing list (pdf, png, jpeg, xls, xlsx; max 10 MB)"
// @Success 200 {object} response.Data[dto.WizardResponse] "Wizard session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards/{id}/cargo/packing-list [post]
func (handler *Handler) UploadPackingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPackingList")
	defer scope.End()

	req, err := uploadRequest(r)
	if err != nil {
		handler.fail(w, scope, err, "failed to validate upload")

		return
	}
	defer req.FileReader.Close()

	res, err := handler.service.UploadPackingList(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		handler.fail(w, scope, err, "failed to upload packing list")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitWizard commits the staged edits to the booking store.
// @Summary Submit a wizard session
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Stored booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards/{id}/submit [post]
func (handler *Handler) SubmitWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitWizard")
	defer scope.End()

	booking, err := handler.service.Submit(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to submit wizard")

		return
	}

	scope.AddEvent("Booking " + booking.BookingNumber + " saved from wizard")

	response.WithJSON(w, http.StatusOK, booking)
}
