package dto

import (
	"mime/multipart"

	bookingModel "clearance/internal/domains/booking/model"
	bookingDto "clearance/internal/domains/booking/model/dto"
	"clearance/internal/domains/wizard/model"
	"clearance/shared/constant"
	"clearance/shared/timezone"
)

type StartWizardRequest struct {
	// BookingID opens an edit session. Empty starts a new booking.
	BookingID string `json:"booking_id" validate:"omitempty,max=36"`
}

type UpdateGeneralRequest struct {
	bookingModel.GeneralInfo
}

type CargoModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=bulk consolidated"`
}

type UploadFileRequest struct {
	File       *multipart.FileHeader `json:"file" validate:"required,mimetypes=application/pdf image/png image/jpeg application/vnd.openxmlformats-officedocument.spreadsheetml.sheet application/vnd.ms-excel,maxfilesize=10"`
	FileReader multipart.File        `json:"-"`
}

type WizardResponse struct {
	ID          string                      `json:"id"`
	Mode        string                      `json:"mode"`
	TargetID    string                      `json:"target_id"`
	BaseVersion int64                       `json:"base_version"`
	CurrentStep int                         `json:"current_step"`
	StepCount   int                         `json:"step_count"`
	CanPrev     bool                        `json:"can_prev"`
	CanNext     bool                        `json:"can_next"`
	Form        bookingModel.GeneralInfo    `json:"form"`
	Vehicles    bookingDto.VehiclesResponse `json:"vehicles"`
	Cargo       bookingDto.CargoResponse    `json:"cargo"`
	CreatedAt   string                      `json:"created_at"`
}

func (r *WizardResponse) FromModel(w model.Wizard) {
	r.ID = w.ID
	r.Mode = string(w.Mode)
	r.TargetID = w.TargetID
	r.BaseVersion = w.BaseVersion
	r.CurrentStep = int(w.CurrentStep)
	r.StepCount = int(model.LastStep)
	r.CanPrev = w.CurrentStep > model.FirstStep
	r.CanNext = w.CurrentStep < model.LastStep
	r.Form = w.Form
	r.Vehicles.FromModel(w.Vehicles)
	r.Cargo.FromModel(w.Cargo)
	r.CreatedAt = timezone.Format(w.CreatedAt, constant.DateFormat)
}
