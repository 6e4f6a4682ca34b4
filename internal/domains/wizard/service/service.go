package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Wizard=MockWizardService

import (
	"context"
	"fmt"
	"path"
	"slices"

	"clearance/config"
	"clearance/infras/otel"
	"clearance/infras/s3"
	bookingModel "clearance/internal/domains/booking/model"
	bookingDto "clearance/internal/domains/booking/model/dto"
	bookingRepository "clearance/internal/domains/booking/repository"
	bookingService "clearance/internal/domains/booking/service"
	"clearance/internal/domains/wizard/model"
	"clearance/internal/domains/wizard/model/dto"
	"clearance/internal/domains/wizard/repository"
	"clearance/shared/constant"
	"clearance/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const uploadDirectory = "packing-lists"

type Wizard interface {
	Start(ctx context.Context, req dto.StartWizardRequest) (dto.WizardResponse, error)
	Get(ctx context.Context, id string) (dto.WizardResponse, error)
	Cancel(ctx context.Context, id string) error
	Next(ctx context.Context, id string) (dto.WizardResponse, error)
	Prev(ctx context.Context, id string) (dto.WizardResponse, error)
	UpdateGeneral(ctx context.Context, id string, req dto.UpdateGeneralRequest) (dto.WizardResponse, error)

	AddVehicle(ctx context.Context, id, fleet string) (dto.WizardResponse, error)
	UpdateVehicle(ctx context.Context, id, fleet, vehicleID string, patch bookingModel.VehiclePatch) (dto.WizardResponse, error)
	RemoveVehicle(ctx context.Context, id, fleet, vehicleID string) (dto.WizardResponse, error)

	SetCargoMode(ctx context.Context, id string, req dto.CargoModeRequest) (dto.WizardResponse, error)
	AddCargoItem(ctx context.Context, id string) (dto.WizardResponse, error)
	UpdateCargoItem(ctx context.Context, id string, index int, patch bookingModel.CargoItemPatch) (dto.WizardResponse, error)
	RemoveCargoItem(ctx context.Context, id string, index int) (dto.WizardResponse, error)
	UploadItemFile(ctx context.Context, id string, index int, req dto.UploadFileRequest) (dto.WizardResponse, error)
	RemoveItemFile(ctx context.Context, id string, index int) (dto.WizardResponse, error)
	UploadPackingList(ctx context.Context, id string, req dto.UploadFileRequest) (dto.WizardResponse, error)

	Submit(ctx context.Context, id string) (bookingDto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Wizard
	bookings bookingRepository.Booking
	booking  bookingService.Booking
	cfg      *config.Config
	otel     otel.Otel
	s3       s3.S3
}

func New(
	repo repository.Wizard,
	bookings bookingRepository.Booking,
	booking bookingService.Booking,
	cfg *config.Config,
	otel otel.Otel,
	s3 s3.S3,
) Wizard {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		booking:  booking,
		cfg:      cfg,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) scope(ctx context.Context, name string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+model.EntityName+"."+name)
}

func (s *serviceImpl) defaults() model.Defaults {
	return model.Defaults{
		CSInCharge:       s.cfg.App.Booking.CSInCharge,
		CustomerID:       s.cfg.App.Booking.CustomerID,
		BorderGate:       s.cfg.App.Booking.BorderGate,
		ImportExportType: s.cfg.App.Booking.ImportExportType,
	}
}

func (s *serviceImpl) Start(ctx context.Context, req dto.StartWizardRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var w *model.Wizard

	if req.BookingID == "" {
		w = model.NewCreateWizard(s.defaults(), timezone.Now())
	} else {
		booking, getErr := s.bookings.Get(ctx, req.BookingID)
		if getErr != nil {
			log.Error().Err(getErr).Str("bookingID", req.BookingID).Msg("failed to get booking for wizard")

			return res, fmt.Errorf("failed to get booking: %w", getErr)
		}

		w = model.NewEditWizard(booking, timezone.Now())
	}

	if err = s.repo.Save(ctx, *w); err != nil {
		return res, err
	}

	res.FromModel(*w)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(w)

	return res, nil
}

// mutate applies fn to the stored session and writes it back. Nothing is
// written when fn fails.
func (s *serviceImpl) mutate(ctx context.Context, id string, fn func(w *model.Wizard) error) (res dto.WizardResponse, err error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if err = fn(&w); err != nil {
		return res, err
	}

	if err = s.repo.Save(ctx, w); err != nil {
		return res, err
	}

	res.FromModel(w)

	return res, nil
}

func (s *serviceImpl) Next(ctx context.Context, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "Next")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		w.Next()

		return nil
	})
}

func (s *serviceImpl) Prev(ctx context.Context, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "Prev")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		w.Prev()

		return nil
	})
}

func (s *serviceImpl) UpdateGeneral(ctx context.Context, id string, req dto.UpdateGeneralRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "UpdateGeneral")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		w.SetGeneral(req.GeneralInfo)

		return nil
	})
}

func (s *serviceImpl) AddVehicle(ctx context.Context, id, fleet string) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "AddVehicle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	f, err := bookingModel.ParseFleet(fleet)
	if err != nil {
		return res, err
	}

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		_, err := w.Vehicles.Add(f)

		return err
	})
}

func (s *serviceImpl) UpdateVehicle(ctx context.Context, id, fleet, vehicleID string, patch bookingModel.VehiclePatch) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "UpdateVehicle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	f, err := bookingModel.ParseFleet(fleet)
	if err != nil {
		return res, err
	}

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		_, err := w.Vehicles.Update(f, vehicleID, patch)

		return err
	})
}

func (s *serviceImpl) RemoveVehicle(ctx context.Context, id, fleet, vehicleID string) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "RemoveVehicle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	f, err := bookingModel.ParseFleet(fleet)
	if err != nil {
		return res, err
	}

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		return w.Vehicles.Remove(f, vehicleID)
	})
}

func (s *serviceImpl) SetCargoMode(ctx context.Context, id string, req dto.CargoModeRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "SetCargoMode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		return w.Cargo.SetMode(bookingModel.CargoMode(req.Mode))
	})
}

func (s *serviceImpl) AddCargoItem(ctx context.Context, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "AddCargoItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		_, err := w.Cargo.AddItem()

		return err
	})
}

func (s *serviceImpl) UpdateCargoItem(ctx context.Context, id string, index int, patch bookingModel.CargoItemPatch) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "UpdateCargoItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		_, err := w.Cargo.UpdateItem(index, patch)

		return err
	})
}

func (s *serviceImpl) RemoveCargoItem(ctx context.Context, id string, index int) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "RemoveCargoItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		return w.Cargo.RemoveItem(index)
	})
}

// upload stores the file and records it on the session.
func (s *serviceImpl) upload(ctx context.Context, w *model.Wizard, req dto.UploadFileRequest) (bookingModel.FileRef, error) {
	fileName := uuid.NewString() + path.Ext(req.File.Filename)

	obj, err := s.s3.UploadFile(ctx, uploadDirectory, req.FileReader, req.File, fileName)
	if err != nil {
		log.Error().Err(err).Str("wizardID", w.ID).Msg("failed to upload packing list")

		return bookingModel.FileRef{}, fmt.Errorf("failed to upload file: %w", err)
	}

	w.TrackUpload(obj.Key)

	return bookingModel.FileRef{Key: obj.Key, Name: req.File.Filename, URL: obj.URL}, nil
}

// attachUpload uploads the file and hands it to attach. The upload is removed
// again when the session cannot take it.
func (s *serviceImpl) attachUpload(
	ctx context.Context,
	id string,
	req dto.UploadFileRequest,
	attach func(w *model.Wizard, ref bookingModel.FileRef) error,
) (res dto.WizardResponse, err error) {
	var uploaded string

	res, err = s.mutate(ctx, id, func(w *model.Wizard) error {
		ref, err := s.upload(ctx, w, req)
		if err != nil {
			return err
		}

		uploaded = ref.Key

		return attach(w, ref)
	})
	if err != nil && uploaded != "" {
		s.discard(ctx, []string{uploaded})
	}

	return res, err
}

func (s *serviceImpl) UploadItemFile(ctx context.Context, id string, index int, req dto.UploadFileRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "UploadItemFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.attachUpload(ctx, id, req, func(w *model.Wizard, ref bookingModel.FileRef) error {
		_, err := w.Cargo.AttachItemFile(index, ref)

		return err
	})
}

func (s *serviceImpl) RemoveItemFile(ctx context.Context, id string, index int) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "RemoveItemFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, func(w *model.Wizard) error {
		_, err := w.Cargo.DetachItemFile(index)

		return err
	})
}

func (s *serviceImpl) UploadPackingList(ctx context.Context, id string, req dto.UploadFileRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.scope(ctx, "UploadPackingList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.attachUpload(ctx, id, req, func(w *model.Wizard, ref bookingModel.FileRef) error {
		_, err := w.Cargo.AttachPackingList(ref)

		return err
	})
}

// discard deletes stored files in the background. Failures only leave
// orphaned objects behind and are logged.
func (s *serviceImpl) discard(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		for _, key := range keys {
			if err := s.s3.DeleteFile(c, key); err != nil {
				log.Error().Err(err).Str("key", key).Msg("failed to delete unused packing list")
			}
		}
	}()
}

// unreferenced returns the candidates missing from keep, each once.
func unreferenced(candidates, keep []string) []string {
	out := []string{}

	for _, key := range candidates {
		if !slices.Contains(keep, key) && !slices.Contains(out, key) {
			out = append(out, key)
		}
	}

	return out
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.scope(ctx, "Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.discard(ctx, w.Uploads)

	return nil
}

func (s *serviceImpl) Submit(ctx context.Context, id string) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.scope(ctx, "Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	var (
		target   *bookingModel.Booking
		previous []string
	)

	if w.Mode == model.ModeEdit {
		booking, err := s.bookings.Get(ctx, w.TargetID)
		if err != nil {
			log.Error().Err(err).Str("bookingID", w.TargetID).Msg("failed to get booking for wizard")

			return res, fmt.Errorf("failed to get booking: %w", err)
		}

		target = &booking
		previous = booking.Cargo.FileKeys()
	}

	now := timezone.Now()

	booking, err := w.Submit(target, model.SubmitOptions{
		NumberPrefix: s.cfg.App.Booking.NumberPrefix,
		Now:          now,
		Day:          now.Format(timezone.DateLayout),
	})
	if err != nil {
		return res, err
	}

	saved, err := s.booking.Save(ctx, booking)
	if err != nil {
		return res, err
	}

	// The booking is stored, a leftover session only lingers until its TTL.
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("failed to close submitted wizard session")
	}

	s.discard(ctx, unreferenced(append(previous, w.Uploads...), saved.Cargo.FileKeys()))

	res.FromModel(saved)

	return res, nil
}
