package model

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	JobTypeTransshipment JobType = "transshipment"
	JobTypeDirect        JobType = "direct"
	JobTypeWarehousing   JobType = "warehousing"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeTransshipment, JobTypeDirect, JobTypeWarehousing:
		return true
	}

	return false
}

type TransshipmentMethod string

const (
	TransshipmentForklift TransshipmentMethod = "forklift"
	TransshipmentManual   TransshipmentMethod = "manual"
	TransshipmentCrane    TransshipmentMethod = "crane"
	TransshipmentConveyor TransshipmentMethod = "conveyor"
	TransshipmentNone     TransshipmentMethod = "none"
)

func (m TransshipmentMethod) Valid() bool {
	switch m {
	case TransshipmentForklift, TransshipmentManual, TransshipmentCrane, TransshipmentConveyor, TransshipmentNone:
		return true
	}

	return false
}

// Requirement is a member of the fixed supplemental requirement catalog.
type Requirement string

const (
	RequirementAfter22h   Requirement = "Sang tải sau 22h"
	RequirementOversize   Requirement = "Hàng quá khổ"
	RequirementOverweight Requirement = "Hàng quá tải"
	RequirementFewItems   Requirement = "3-10 mặt hàng"
	RequirementManyItems  Requirement = "> 10 mặt hàng"
	// RequirementOther unlocks the free text OtherReqContent.
	RequirementOther Requirement = "Khác"
)

var Requirements = []Requirement{
	RequirementAfter22h,
	RequirementOversize,
	RequirementOverweight,
	RequirementFewItems,
	RequirementManyItems,
	RequirementOther,
}

func (r Requirement) Valid() bool {
	return slices.Contains(Requirements, r)
}

const JobCodePrefix = "REQ-"

type Job struct {
	ID                  string              `json:"id"`
	JobCode             string              `json:"job_code"`
	Type                JobType             `json:"type"`
	TransshipmentMethod TransshipmentMethod `json:"transshipment_method,omitempty"`
	Status              JobStatus           `json:"status"`

	// Weak references into the fleets plus the plates as they were when the
	// job was created. The plates are never refreshed.
	VehicleCNID    string `json:"vehicle_cn_id,omitempty"`
	VehicleVNID    string `json:"vehicle_vn_id,omitempty"`
	VehicleCNPlate string `json:"vehicle_cn_plate,omitempty"`
	VehicleVNPlate string `json:"vehicle_vn_plate,omitempty"`

	CargoName   string `json:"cargo_name"`
	Quantity    string `json:"quantity"`
	PackingSpec string `json:"packing_spec"`

	SupplementalReqs []Requirement `json:"supplemental_reqs"`
	OtherReqContent  string        `json:"other_req_content,omitempty"`

	PerformDate string    `json:"perform_date"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobDraft is the job creation form.
type JobDraft struct {
	Type                JobType             `json:"type"`
	TransshipmentMethod TransshipmentMethod `json:"transshipment_method"`
	VehicleCNID         string              `json:"vehicle_cn_id"`
	VehicleVNID         string              `json:"vehicle_vn_id"`
	CargoName           string              `json:"cargo_name"`
	Quantity            string              `json:"quantity"`
	PackingSpec         string              `json:"packing_spec"`
	SupplementalReqs    []Requirement       `json:"supplemental_reqs"`
	OtherReqContent     string              `json:"other_req_content"`
	PerformDate         string              `json:"perform_date"`
	Note                string              `json:"note"`
}

// OpenJobCreation builds a fresh form from the booking as it is now. The
// cargo fields come from the first cargo item and are not linked afterwards.
func OpenJobCreation(booking *Booking) JobDraft {
	first := booking.Cargo.First()

	return JobDraft{
		Type:                JobTypeTransshipment,
		TransshipmentMethod: TransshipmentForklift,
		CargoName:           first.Name,
		Quantity:            first.Quantity,
		PackingSpec:         first.PackingSpec,
		SupplementalReqs:    []Requirement{},
	}
}

func (d *JobDraft) SetType(jobType JobType) {
	d.Type = jobType
}

func (d *JobDraft) HasRequirement(req Requirement) bool {
	return slices.Contains(d.SupplementalReqs, req)
}

// ToggleRequirement adds req, or removes it when already selected.
// Removing RequirementOther clears OtherReqContent.
func (d *JobDraft) ToggleRequirement(req Requirement) {
	if !d.HasRequirement(req) {
		d.SupplementalReqs = append(d.SupplementalReqs, req)

		return
	}

	d.SupplementalReqs = slices.DeleteFunc(slices.Clone(d.SupplementalReqs), func(r Requirement) bool { return r == req })

	if req == RequirementOther {
		d.OtherReqContent = ""
	}
}

// withDefaults fills the type and, for transshipment, the method when the
// form leaves them empty.
func (d JobDraft) withDefaults() JobDraft {
	if d.Type == "" {
		d.Type = JobTypeTransshipment
	}

	if d.Type == JobTypeTransshipment && d.TransshipmentMethod == "" {
		d.TransshipmentMethod = TransshipmentForklift
	}

	return d
}

// Validate checks the form without touching any booking.
func (d *JobDraft) Validate() error {
	if strings.TrimSpace(d.PerformDate) == "" {
		return ErrPerformDateRequired
	}

	if !d.Type.Valid() {
		return invalidValue(ErrInvalidJobType, string(d.Type))
	}

	if d.Type == JobTypeTransshipment && !d.TransshipmentMethod.Valid() {
		return invalidValue(ErrInvalidTransshipmentMethod, string(d.TransshipmentMethod))
	}

	for _, req := range d.SupplementalReqs {
		if !req.Valid() {
			return invalidValue(ErrUnknownRequirement, string(req))
		}
	}

	return nil
}

// CreateJob validates the draft, turns it into a pending job and appends it
// to the booking. A failed validation leaves the booking untouched.
func CreateJob(booking *Booking, draft JobDraft, now time.Time) (Job, error) {
	draft = draft.withDefaults()

	if err := draft.Validate(); err != nil {
		return Job{}, err
	}

	job := Job{
		ID:               uuid.NewString(),
		JobCode:          booking.nextJobCode(),
		Type:             draft.Type,
		Status:           JobStatusPending,
		VehicleCNID:      draft.VehicleCNID,
		VehicleVNID:      draft.VehicleVNID,
		CargoName:        draft.CargoName,
		Quantity:         draft.Quantity,
		PackingSpec:      draft.PackingSpec,
		SupplementalReqs: uniqueRequirements(draft.SupplementalReqs),
		PerformDate:      draft.PerformDate,
		Note:             draft.Note,
		CreatedAt:        now,
	}

	if draft.Type == JobTypeTransshipment {
		job.TransshipmentMethod = draft.TransshipmentMethod
	}

	if slices.Contains(job.SupplementalReqs, RequirementOther) {
		job.OtherReqContent = draft.OtherReqContent
	}

	if v, ok := booking.Vehicles.Find(FleetOrigin, draft.VehicleCNID); ok {
		job.VehicleCNPlate = v.LicensePlate
	}

	if v, ok := booking.Vehicles.Find(FleetDestination, draft.VehicleVNID); ok {
		job.VehicleVNPlate = v.LicensePlate
	}

	booking.Jobs = append(booking.Jobs, job)

	return job, nil
}

func uniqueRequirements(reqs []Requirement) []Requirement {
	out := make([]Requirement, 0, len(reqs))
	for _, req := range reqs {
		if !slices.Contains(out, req) {
			out = append(out, req)
		}
	}

	return out
}

// nextJobCode advances the per booking counter. Counting from the larger of
// the counter and the job count keeps codes unique after deletions and for
// bookings stored before the counter existed.
func (b *Booking) nextJobCode() string {
	b.JobSeq = max(b.JobSeq, len(b.Jobs)) + 1

	return JobCodePrefix + strconv.Itoa(b.JobSeq)
}
