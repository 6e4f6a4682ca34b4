package dto

import (
	"net/http"

	"clearance/catalog"
	"clearance/internal/domains/booking/model"
	"clearance/shared"
	"clearance/shared/constant"
	gDto "clearance/shared/dto"
	"clearance/shared/timezone"
)

type CreateJobRequest struct {
	Type                string   `json:"type"                 validate:"omitempty,oneof=transshipment direct warehousing"`
	TransshipmentMethod string   `json:"transshipment_method" validate:"omitempty,oneof=forklift manual crane conveyor none"`
	VehicleCNID         string   `json:"vehicle_cn_id"        validate:"omitempty,max=20"`
	VehicleVNID         string   `json:"vehicle_vn_id"        validate:"omitempty,max=20"`
	CargoName           string   `json:"cargo_name"           validate:"omitempty,max=200"`
	Quantity            string   `json:"quantity"             validate:"omitempty,max=50"`
	PackingSpec         string   `json:"packing_spec"         validate:"omitempty,max=200"`
	SupplementalReqs    []string `json:"supplemental_reqs"    validate:"omitempty,dive,max=100"`
	OtherReqContent     string   `json:"other_req_content"    validate:"omitempty,max=500"`
	PerformDate         string   `json:"perform_date"         validate:"omitempty,max=50"`
	Note                string   `json:"note"                 validate:"omitempty,max=2000"`
}

func (r CreateJobRequest) ToDraft() model.JobDraft {
	reqs := make([]model.Requirement, len(r.SupplementalReqs))
	for i, req := range r.SupplementalReqs {
		reqs[i] = model.Requirement(req)
	}

	return model.JobDraft{
		Type:                model.JobType(r.Type),
		TransshipmentMethod: model.TransshipmentMethod(r.TransshipmentMethod),
		VehicleCNID:         r.VehicleCNID,
		VehicleVNID:         r.VehicleVNID,
		CargoName:           r.CargoName,
		Quantity:            r.Quantity,
		PackingSpec:         r.PackingSpec,
		SupplementalReqs:    reqs,
		OtherReqContent:     r.OtherReqContent,
		PerformDate:         r.PerformDate,
		Note:                r.Note,
	}
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed"`
}

type ListJobsRequest struct {
	Status    string `json:"status"     validate:"omitempty,oneof=pending processing completed"`
	Type      string `json:"type"       validate:"omitempty,oneof=transshipment direct warehousing"`
	BookingID string `json:"booking_id" validate:"omitempty,max=36"`
}

func (r *ListJobsRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.Status = query.Get(QueryStatus)
	r.Type = query.Get(QueryType)
	r.BookingID = query.Get(QueryBookingID)
}

func (r ListJobsRequest) Matches(booking model.Booking, job model.Job) bool {
	return (r.Status == "" || string(job.Status) == r.Status) &&
		(r.Type == "" || string(job.Type) == r.Type) &&
		(r.BookingID == "" || booking.ID == r.BookingID)
}

func (r ListJobsRequest) CacheParts() []string {
	return []string{
		QueryStatus + "=" + r.Status,
		QueryType + "=" + r.Type,
		QueryBookingID + "=" + r.BookingID,
	}
}

type RequirementResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type JobResponse struct {
	ID                       string                `json:"id"`
	JobCode                  string                `json:"job_code"`
	Type                     string                `json:"type"`
	TypeLabel                string                `json:"type_label"`
	TransshipmentMethod      string                `json:"transshipment_method"`
	TransshipmentMethodLabel string                `json:"transshipment_method_label"`
	Status                   string                `json:"status"`
	StatusLabel              string                `json:"status_label"`
	VehicleCNID              string                `json:"vehicle_cn_id"`
	VehicleVNID              string                `json:"vehicle_vn_id"`
	VehicleCNPlate           string                `json:"vehicle_cn_plate"`
	VehicleVNPlate           string                `json:"vehicle_vn_plate"`
	CargoName                string                `json:"cargo_name"`
	Quantity                 string                `json:"quantity"`
	PackingSpec              string                `json:"packing_spec"`
	SupplementalReqs         []RequirementResponse `json:"supplemental_reqs"`
	OtherReqContent          string                `json:"other_req_content"`
	PerformDate              string                `json:"perform_date"`
	Note                     string                `json:"note"`
	CreatedAt                string                `json:"created_at"`
}

func (r *JobResponse) FromModel(job model.Job) {
	c := catalog.Get()

	r.ID = job.ID
	r.JobCode = job.JobCode
	r.Type = string(job.Type)
	r.TypeLabel = c.JobTypes.Label(string(job.Type))
	r.TransshipmentMethod = string(job.TransshipmentMethod)
	r.Status = string(job.Status)
	r.StatusLabel = c.JobStatuses.Label(string(job.Status))
	r.VehicleCNID = job.VehicleCNID
	r.VehicleVNID = job.VehicleVNID
	r.VehicleCNPlate = job.VehicleCNPlate
	r.VehicleVNPlate = job.VehicleVNPlate
	r.CargoName = job.CargoName
	r.Quantity = job.Quantity
	r.PackingSpec = job.PackingSpec
	r.OtherReqContent = job.OtherReqContent
	r.PerformDate = job.PerformDate
	r.Note = job.Note
	r.CreatedAt = timezone.Format(job.CreatedAt, constant.DateFormat)

	if job.TransshipmentMethod != "" {
		r.TransshipmentMethodLabel = c.TransshipmentMethods.Label(string(job.TransshipmentMethod))
	}

	r.SupplementalReqs = make([]RequirementResponse, len(job.SupplementalReqs))
	for i, req := range job.SupplementalReqs {
		r.SupplementalReqs[i] = RequirementResponse{Value: string(req), Label: c.Requirements.Label(string(req))}
	}
}

// JobWithBookingResponse is a row of the cross-booking job list.
type JobWithBookingResponse struct {
	JobResponse
	BookingID     string `json:"booking_id"`
	BookingNumber string `json:"booking_number"`
	BookingStatus string `json:"booking_status"`
	CustomerID    string `json:"customer_id"`
}

func (r *JobWithBookingResponse) FromModel(booking model.Booking, job model.Job) {
	r.JobResponse.FromModel(job)
	r.BookingID = booking.ID
	r.BookingNumber = booking.BookingNumber
	r.BookingStatus = string(booking.Status)
	r.CustomerID = booking.CustomerID
}

type GetJobsResponse struct {
	Jobs      []JobWithBookingResponse `json:"jobs"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

// FromPage keeps the rows of the requested page out of every matching row.
func (r *GetJobsResponse) FromPage(rows []JobWithBookingResponse, params gDto.QueryParams) {
	r.TotalData = len(rows)
	r.TotalPage = shared.CalculateTotalPage(len(rows), params.Limit)

	if params.Limit <= 0 {
		r.Jobs = rows

		return
	}

	start := min(params.Offset(), len(rows))
	end := min(start+params.Limit, len(rows))
	r.Jobs = rows[start:end]
}

type VehicleOption struct {
	ID           string `json:"id"`
	LicensePlate string `json:"license_plate"`
}

func vehicleOptions(vehicles []model.VehicleInfo) []VehicleOption {
	options := make([]VehicleOption, len(vehicles))
	for i, v := range vehicles {
		options[i] = VehicleOption{ID: v.ID, LicensePlate: v.LicensePlate}
	}

	return options
}

// JobDraftResponse is the prefilled job form together with the vehicles it
// may reference.
type JobDraftResponse struct {
	Draft      model.JobDraft  `json:"draft"`
	VehiclesCN []VehicleOption `json:"vehicles_cn"`
	VehiclesVN []VehicleOption `json:"vehicles_vn"`
}

func (r *JobDraftResponse) FromModel(booking model.Booking, draft model.JobDraft) {
	r.Draft = draft
	r.VehiclesCN = vehicleOptions(booking.Vehicles.Origin)
	r.VehiclesVN = vehicleOptions(booking.Vehicles.Destination)
}

type JobStatsResponse struct {
	Total    int                   `json:"total"`
	Statuses []StatusCountResponse `json:"statuses"`
}

func (r *JobStatsResponse) FromBookings(bookings []model.Booking) {
	labels := catalog.Get().JobStatuses
	counts := map[model.JobStatus]int{}

	for _, booking := range bookings {
		for _, job := range booking.Jobs {
			counts[job.Status]++
		}
	}

	r.Total = 0
	r.Statuses = make([]StatusCountResponse, len(model.JobStatuses))

	for i, status := range model.JobStatuses {
		r.Statuses[i] = StatusCountResponse{
			Status: string(status),
			Label:  labels.Label(string(status)),
			Count:  counts[status],
		}
		r.Total += counts[status]
	}
}
