package dto

import (
	"net/http"

	"clearance/catalog"
	"clearance/internal/domains/booking/model"
	"clearance/shared"
	gDto "clearance/shared/dto"
)

const (
	QueryStatus      = "status"
	QueryCustomerID  = "customer_id"
	QuerySearch      = "search"
	QueryCreatedFrom = "created_from"
	QueryCreatedTo   = "created_to"
	QueryType        = "type"
	QueryBookingID   = "booking_id"
)

type ListBookingsRequest struct {
	Status      string `json:"status"       validate:"omitempty,oneof=draft received processing warning completed"`
	CustomerID  string `json:"customer_id"  validate:"omitempty,max=50"`
	Search      string `json:"search"       validate:"omitempty,max=50"`
	CreatedFrom string `json:"created_from" validate:"omitempty,date"`
	CreatedTo   string `json:"created_to"   validate:"omitempty,date"`
}

func (r *ListBookingsRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.Status = query.Get(QueryStatus)
	r.CustomerID = query.Get(QueryCustomerID)
	r.Search = query.Get(QuerySearch)
	r.CreatedFrom = query.Get(QueryCreatedFrom)
	r.CreatedTo = query.Get(QueryCreatedTo)
}

func (r ListBookingsRequest) ToFilter(params gDto.QueryParams) model.ListFilter {
	return model.ListFilter{
		Params:      params,
		Status:      model.BookingStatus(r.Status),
		CustomerID:  r.CustomerID,
		Search:      r.Search,
		CreatedFrom: r.CreatedFrom,
		CreatedTo:   r.CreatedTo,
	}
}

// CacheParts identifies the filter inside a listing cache key.
func (r ListBookingsRequest) CacheParts() []string {
	return []string{
		QueryStatus + "=" + r.Status,
		QueryCustomerID + "=" + r.CustomerID,
		QuerySearch + "=" + r.Search,
		QueryCreatedFrom + "=" + r.CreatedFrom,
		QueryCreatedTo + "=" + r.CreatedTo,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft received processing warning completed"`
}

type ProgressStepResponse struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Index  int    `json:"index"`
	State  string `json:"state"`
}

func progressResponse(status model.BookingStatus) []ProgressStepResponse {
	labels := catalog.Get().ProgressSteps
	steps := model.ProgressSteps(status)

	res := make([]ProgressStepResponse, len(steps))
	for i, step := range steps {
		res[i] = ProgressStepResponse{
			Status: string(step.Status),
			Label:  labels.Label(string(step.Status)),
			Index:  step.Index,
			State:  string(step.State),
		}
	}

	return res
}

type VehiclesResponse struct {
	Origin      []model.VehicleInfo `json:"origin"`
	Destination []model.VehicleInfo `json:"destination"`
}

func (r *VehiclesResponse) FromModel(registry model.VehicleRegistry) {
	r.Origin = nonNil(registry.Origin)
	r.Destination = nonNil(registry.Destination)
}

type CargoResponse struct {
	Mode        string            `json:"mode"`
	ModeLabel   string            `json:"mode_label"`
	Items       []model.CargoItem `json:"items"`
	PackingList *model.FileRef    `json:"packing_list"`
}

func (r *CargoResponse) FromModel(cargo model.CargoManifest) {
	r.Mode = string(cargo.Mode)
	r.ModeLabel = catalog.Get().CargoModes.Label(string(cargo.Mode))
	r.Items = nonNil(cargo.Items)
	r.PackingList = cargo.ActivePackingList()
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}

type BookingSummaryResponse struct {
	ID               string `json:"id"`
	BookingNumber    string `json:"booking_number"`
	Status           string `json:"status"`
	StatusLabel      string `json:"status_label"`
	CustomerID       string `json:"customer_id"`
	CSInCharge       string `json:"cs_in_charge"`
	BorderGate       string `json:"border_gate"`
	ImportExportType string `json:"import_export_type"`
	SummaryPlate     string `json:"summary_plate"`
	VehicleCount     int    `json:"vehicle_count"`
	JobCount         int    `json:"job_count"`
	CreatedDate      string `json:"created_date"`
	gDto.Metadata
}

func (r *BookingSummaryResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookingNumber = booking.BookingNumber
	r.Status = string(booking.Status)
	r.StatusLabel = catalog.Get().BookingStatuses.Label(string(booking.Status))
	r.CustomerID = booking.CustomerID
	r.CSInCharge = booking.CSInCharge
	r.BorderGate = booking.BorderGate
	r.ImportExportType = booking.ImportExportType
	r.SummaryPlate = booking.SummaryPlate()
	r.VehicleCount = booking.Vehicles.Count()
	r.JobCount = len(booking.Jobs)
	r.CreatedDate = booking.CreatedDate
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingSummaryResponse `json:"bookings"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingSummaryResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type BookingResponse struct {
	ID            string                 `json:"id"`
	BookingNumber string                 `json:"booking_number"`
	Status        string                 `json:"status"`
	StatusLabel   string                 `json:"status_label"`
	Progress      []ProgressStepResponse `json:"progress"`
	model.GeneralInfo
	SummaryPlate string           `json:"summary_plate"`
	Vehicles     VehiclesResponse `json:"vehicles"`
	Cargo        CargoResponse    `json:"cargo"`
	Jobs         []JobResponse    `json:"jobs"`
	CreatedDate  string           `json:"created_date"`
	Version      int64            `json:"version"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookingNumber = booking.BookingNumber
	r.Status = string(booking.Status)
	r.StatusLabel = catalog.Get().BookingStatuses.Label(string(booking.Status))
	r.Progress = progressResponse(booking.Status)
	r.GeneralInfo = booking.GeneralInfo
	r.SummaryPlate = booking.SummaryPlate()
	r.Vehicles.FromModel(booking.Vehicles)
	r.Cargo.FromModel(booking.Cargo)
	r.CreatedDate = booking.CreatedDate
	r.Version = booking.Version
	r.Metadata.FromModel(booking.Metadata)

	r.Jobs = make([]JobResponse, len(booking.Jobs))
	for i, job := range booking.Jobs {
		r.Jobs[i].FromModel(job)
	}
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// BookingStatsResponse feeds the dashboard counters. Every status is listed,
// zero counts included.
type BookingStatsResponse struct {
	Total    int                   `json:"total"`
	Statuses []StatusCountResponse `json:"statuses"`
}

func (r *BookingStatsResponse) FromCounts(counts map[model.BookingStatus]int) {
	labels := catalog.Get().BookingStatuses

	r.Total = 0
	r.Statuses = make([]StatusCountResponse, len(model.BookingStatuses))

	for i, status := range model.BookingStatuses {
		r.Statuses[i] = StatusCountResponse{
			Status: string(status),
			Label:  labels.Label(string(status)),
			Count:  counts[status],
		}
		r.Total += counts[status]
	}
}
