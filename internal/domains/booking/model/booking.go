package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"clearance/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingNumber = "booking_number"
	FieldStatus        = "status"
	FieldCustomerID    = "customer_id"
	FieldVersion       = "version"
	FieldData          = "data"
	FieldCreatedAt     = "created_at"
	FieldModifiedAt    = "modified_at"

	// SummaryPlateMulti stands in for the plate when a booking has several vehicles.
	SummaryPlateMulti = "Multi"
)

// GeneralInfo is everything edited on the first wizard step.
type GeneralInfo struct {
	Type                  string `json:"type"                    validate:"omitempty,max=100"`
	Nature                string `json:"nature"                  validate:"omitempty,max=100"`
	CSInCharge            string `json:"cs_in_charge"            validate:"omitempty,max=100"`
	CustomerID            string `json:"customer_id"             validate:"omitempty,max=50"`
	BorderGate            string `json:"border_gate"             validate:"omitempty,max=100"`
	ImportExportType      string `json:"import_export_type"      validate:"omitempty,max=50"`
	NeedsCustomsClearance bool   `json:"needs_customs_clearance"`
	NeedsYardService      bool   `json:"needs_yard_service"`
	ETAGeneral            string `json:"eta_general"             validate:"omitempty,max=50"`
	FieldOps              string `json:"field_ops"               validate:"omitempty,max=100"`
	FieldOpsPhone         string `json:"field_ops_phone"         validate:"omitempty,max=20"`
	CustomsOps            string `json:"customs_ops"             validate:"omitempty,max=100"`
	CustomsOpsPhone       string `json:"customs_ops_phone"       validate:"omitempty,max=20"`
	GeneralNotes          string `json:"general_notes"           validate:"omitempty,max=2000"`
}

// Booking is the aggregate root. It is always stored and replaced as a whole.
type Booking struct {
	ID            string        `json:"id"`
	BookingNumber string        `json:"booking_number"`
	Status        BookingStatus `json:"status"`
	GeneralInfo
	Vehicles    VehicleRegistry `json:"vehicles"`
	Cargo       CargoManifest   `json:"cargo"`
	Jobs        []Job           `json:"jobs"`
	JobSeq      int             `json:"job_seq"`
	CreatedDate string          `json:"created_date"`
	Version     int64           `json:"version"`
	model.Metadata
}

// NewBookingNumber formats PREFIX-YYYYMMDD-XXXXXX from the booking id.
func NewBookingNumber(prefix string, day string, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}

	return fmt.Sprintf("%s-%s-%s", prefix, day, suffix)
}

func (b *Booking) SetStatus(status BookingStatus) error {
	if !status.Valid() {
		return invalidValue(ErrInvalidBookingStatus, string(status))
	}

	b.Status = status

	return nil
}

func (b *Booking) FindJob(id string) (Job, error) {
	idx, err := b.jobIndex(id)
	if err != nil {
		return Job{}, err
	}

	return b.Jobs[idx], nil
}

func (b *Booking) jobIndex(id string) (int, error) {
	idx := slices.IndexFunc(b.Jobs, func(j Job) bool { return j.ID == id })
	if idx == -1 {
		return -1, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	return idx, nil
}

// RemoveJob deletes the job and returns it.
func (b *Booking) RemoveJob(id string) (Job, error) {
	idx, err := b.jobIndex(id)
	if err != nil {
		return Job{}, err
	}

	job := b.Jobs[idx]
	b.Jobs = slices.Delete(b.Jobs, idx, idx+1)

	return job, nil
}

// TransitionJob moves a job forward. changed is false when the job already
// had the requested status.
func (b *Booking) TransitionJob(id string, to JobStatus) (job Job, changed bool, err error) {
	if !to.Valid() {
		return Job{}, false, invalidValue(ErrInvalidJobStatus, string(to))
	}

	idx, err := b.jobIndex(id)
	if err != nil {
		return Job{}, false, err
	}

	from := b.Jobs[idx].Status
	if !CanTransitionJob(from, to) {
		return Job{}, false, fmt.Errorf("%w: %s to %s", ErrInvalidJobTransition, from, to)
	}

	b.Jobs[idx].Status = to

	return b.Jobs[idx], from != to, nil
}

// SummaryPlate is the plate column of the booking list.
func (b *Booking) SummaryPlate() string {
	switch b.Vehicles.Count() {
	case 0:
		return ""
	case 1:
		if len(b.Vehicles.Origin) == 1 {
			return b.Vehicles.Origin[0].LicensePlate
		}

		return b.Vehicles.Destination[0].LicensePlate
	default:
		return SummaryPlateMulti
	}
}

func (b *Booking) Validate() error {
	if !b.Status.Valid() {
		return invalidValue(ErrInvalidBookingStatus, string(b.Status))
	}

	return b.Cargo.Validate()
}

// Touch records a modification at now.
func (b *Booking) Touch(now time.Time) {
	b.Metadata.Touch(now)
}

// Clone returns a deep copy.
func (b Booking) Clone() Booking {
	c := b
	c.Vehicles = b.Vehicles.Clone()
	c.Cargo = b.Cargo.Clone()
	c.Jobs = make([]Job, len(b.Jobs))

	for i, job := range b.Jobs {
		job.SupplementalReqs = slices.Clone(job.SupplementalReqs)
		c.Jobs[i] = job
	}

	return c
}
