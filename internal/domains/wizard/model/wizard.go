package model

import (
	"slices"
	"strings"
	"time"

	bookingModel "clearance/internal/domains/booking/model"
	"clearance/shared/failure"

	"github.com/google/uuid"
)

const EntityName = "wizard"

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

type Step int

const (
	StepGeneral Step = iota + 1
	StepVehicles
	StepCargo
)

const (
	FirstStep = StepGeneral
	LastStep  = StepCargo
)

var (
	ErrWizardNotFound   = failure.NotFound("wizard session not found")
	ErrTargetMismatch   = failure.BadRequestFromString("wizard target does not match the booking")
	ErrUnexpectedTarget = failure.BadRequestFromString("a create wizard has no target booking")
	ErrMissingTarget    = failure.BadRequestFromString("an edit wizard needs its target booking")
)

// Defaults seed the general info of a new booking.
type Defaults struct {
	CSInCharge       string
	CustomerID       string
	BorderGate       string
	ImportExportType string
}

// Wizard stages edits to a booking over three steps. Nothing it holds is
// visible on the booking until Submit.
type Wizard struct {
	ID          string                       `json:"id"`
	Mode        Mode                         `json:"mode"`
	TargetID    string                       `json:"target_id,omitempty"`
	BaseVersion int64                        `json:"base_version"`
	CurrentStep Step                         `json:"current_step"`
	Form        bookingModel.GeneralInfo     `json:"form"`
	Vehicles    bookingModel.VehicleRegistry `json:"vehicles"`
	Cargo       bookingModel.CargoManifest   `json:"cargo"`
	CreatedAt   time.Time                    `json:"created_at"`
	// Uploads are the file keys stored while this session was open.
	Uploads []string `json:"uploads,omitempty"`
}

// NewCreateWizard starts with one vehicle per fleet and one blank consolidated item.
func NewCreateWizard(defaults Defaults, now time.Time) *Wizard {
	w := &Wizard{
		ID:          uuid.NewString(),
		Mode:        ModeCreate,
		CurrentStep: FirstStep,
		Form: bookingModel.GeneralInfo{
			CSInCharge:       defaults.CSInCharge,
			CustomerID:       defaults.CustomerID,
			BorderGate:       defaults.BorderGate,
			ImportExportType: defaults.ImportExportType,
		},
		Cargo:     bookingModel.NewCargoManifest(bookingModel.CargoModeConsolidated),
		CreatedAt: now,
	}

	// Both fleets are valid constants, these cannot fail.
	_, _ = w.Vehicles.Add(bookingModel.FleetOrigin)
	_, _ = w.Vehicles.Add(bookingModel.FleetDestination)
	_, _ = w.Cargo.AddItem()

	return w
}

// NewEditWizard stages a deep copy of the booking.
func NewEditWizard(booking bookingModel.Booking, now time.Time) *Wizard {
	staged := booking.Clone()

	return &Wizard{
		ID:          uuid.NewString(),
		Mode:        ModeEdit,
		TargetID:    booking.ID,
		BaseVersion: booking.Version,
		CurrentStep: FirstStep,
		Form:        staged.GeneralInfo,
		Vehicles:    staged.Vehicles,
		Cargo:       staged.Cargo,
		CreatedAt:   now,
	}
}

// Next moves forward and reports whether it moved. Fields are not checked.
func (w *Wizard) Next() bool {
	if w.CurrentStep >= LastStep {
		return false
	}

	w.CurrentStep++

	return true
}

// Prev moves back and reports whether it moved.
func (w *Wizard) Prev() bool {
	if w.CurrentStep <= FirstStep {
		return false
	}

	w.CurrentStep--

	return true
}

func (w *Wizard) TrackUpload(key string) {
	w.Uploads = append(w.Uploads, key)
}

// OwnsUpload reports whether key was stored during this session.
func (w *Wizard) OwnsUpload(key string) bool {
	return slices.Contains(w.Uploads, key)
}

func (w *Wizard) SetGeneral(info bookingModel.GeneralInfo) {
	w.Form = info
}

// SubmitOptions carries what the create path needs to mint a booking.
type SubmitOptions struct {
	NumberPrefix string
	Now          time.Time
	// Day is the calendar day of Now at the border, YYYY-MM-DD.
	Day string
}

// Submit produces the booking to store. A create wizard takes no target and
// yields a new draft booking. An edit wizard overwrites the general info, the
// fleets and the cargo of target and keeps its id, number, status and jobs.
// Only the cargo invariant is checked; step fields are taken as they are.
func (w *Wizard) Submit(target *bookingModel.Booking, opts SubmitOptions) (bookingModel.Booking, error) {
	if err := w.Cargo.Validate(); err != nil {
		return bookingModel.Booking{}, err
	}

	switch w.Mode {
	case ModeCreate:
		if target != nil {
			return bookingModel.Booking{}, ErrUnexpectedTarget
		}

		id := uuid.NewString()

		booking := bookingModel.Booking{
			ID:            id,
			BookingNumber: bookingModel.NewBookingNumber(opts.NumberPrefix, strings.ReplaceAll(opts.Day, "-", ""), id),
			Status:        bookingModel.BookingStatusDraft,
			GeneralInfo:   w.Form,
			Vehicles:      w.Vehicles.Clone(),
			Cargo:         w.Cargo.Clone(),
			Jobs:          []bookingModel.Job{},
			CreatedDate:   opts.Day,
		}
		booking.Touch(opts.Now)

		return booking, nil
	case ModeEdit:
		if target == nil {
			return bookingModel.Booking{}, ErrMissingTarget
		}

		if target.ID != w.TargetID {
			return bookingModel.Booking{}, ErrTargetMismatch
		}

		booking := target.Clone()
		booking.GeneralInfo = w.Form
		booking.Vehicles = w.Vehicles.Clone()
		booking.Cargo = w.Cargo.Clone()
		booking.Version = w.BaseVersion
		booking.Touch(opts.Now)

		return booking, nil
	}

	return bookingModel.Booking{}, failure.BadRequestf("unknown wizard mode %q", w.Mode)
}
