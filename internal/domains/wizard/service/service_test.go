package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"clearance/config"
	otelMocks "clearance/infras/otel/mocks"
	"clearance/infras/s3"
	s3Mocks "clearance/infras/s3/mocks"
	bookingMocks "clearance/internal/domains/booking/mocks"
	bookingModel "clearance/internal/domains/booking/model"
	"clearance/internal/domains/wizard/mocks"
	"clearance/internal/domains/wizard/model"
	"clearance/internal/domains/wizard/model/dto"
	"clearance/internal/domains/wizard/service"
	"clearance/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo     *mocks.MockWizard
	bookings *bookingMocks.MockBooking
	booking  *bookingMocks.MockBookingService
	s3       *s3Mocks.MockS3
	svc      service.Wizard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:     mocks.NewMockWizard(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		booking:  bookingMocks.NewMockBookingService(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.Booking.CSInCharge = "Nguyễn Văn A"
	cfg.App.Booking.CustomerID = "CUST-VN-001"
	cfg.App.Booking.BorderGate = "Hữu Nghị"
	cfg.App.Booking.ImportExportType = "Nhập khẩu"
	cfg.App.Booking.NumberPrefix = "BK"

	f.svc = service.New(f.repo, f.bookings, f.booking, cfg, otelMocks.NewOtel(), f.s3)

	return f
}

// expectDeletes captures the keys removed from storage.
func (f *fixture) expectDeletes(n int) <-chan string {
	keys := make(chan string, n)

	f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any()).Times(n).DoAndReturn(func(_ context.Context, key string) error {
		keys <- key

		return nil
	})

	return keys
}

func collect(t *testing.T, keys <-chan string, n int) []string {
	t.Helper()

	out := make([]string, 0, n)

	for range n {
		select {
		case key := <-keys:
			out = append(out, key)
		case <-time.After(time.Second):
			t.Fatalf("expected %d deleted files, got %d", n, len(out))
		}
	}

	return out
}

// session returns a stored create wizard with one consolidated item.
func session() model.Wizard {
	w := model.NewCreateWizard(model.Defaults{CustomerID: "CUST-VN-001"}, time.Date(2025, 3, 15, 2, 0, 0, 0, time.UTC))
	w.ID = "w1"

	return *w
}

func bookingFixture() bookingModel.Booking {
	b := bookingModel.Booking{
		ID:            "b1",
		BookingNumber: "BK-20250315-B10000",
		Status:        bookingModel.BookingStatusReceived,
		GeneralInfo:   bookingModel.GeneralInfo{CustomerID: "CUST-VN-007"},
		Cargo:         bookingModel.NewCargoManifest(bookingModel.CargoModeConsolidated),
		Jobs:          []bookingModel.Job{},
		CreatedDate:   "2025-03-15",
		Version:       3,
	}
	_, _ = b.Vehicles.Add(bookingModel.FleetOrigin)
	_, _ = b.Cargo.AddItem()
	_, _ = b.Cargo.AttachItemFile(0, bookingModel.FileRef{Key: "packing-lists/old.pdf", Name: "old.pdf"})

	return b
}

func upload(name string) dto.UploadFileRequest {
	return dto.UploadFileRequest{File: &multipart.FileHeader{Filename: name, Size: 1024}}
}

func TestWizardService_Start(t *testing.T) {
	t.Run("create seeds defaults", func(t *testing.T) {
		f := newFixture(t)

		var saved model.Wizard
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w model.Wizard) error {
			saved = w

			return nil
		})

		res, err := f.svc.Start(context.Background(), dto.StartWizardRequest{})
		require.NoError(t, err)

		assert.Equal(t, saved.ID, res.ID)
		assert.Equal(t, string(model.ModeCreate), res.Mode)
		assert.Equal(t, 1, res.CurrentStep)
		assert.Equal(t, 3, res.StepCount)
		assert.False(t, res.CanPrev)
		assert.True(t, res.CanNext)
		assert.Equal(t, "CUST-VN-001", res.Form.CustomerID)
		assert.Equal(t, "Hữu Nghị", res.Form.BorderGate)
		assert.Len(t, res.Vehicles.Origin, 1)
		assert.Len(t, res.Vehicles.Destination, 1)
		assert.Len(t, res.Cargo.Items, 1)
	})

	t.Run("edit stages the booking", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Get(gomock.Any(), "b1").Return(bookingFixture(), nil)

		var saved model.Wizard
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w model.Wizard) error {
			saved = w

			return nil
		})

		res, err := f.svc.Start(context.Background(), dto.StartWizardRequest{BookingID: "b1"})
		require.NoError(t, err)

		assert.Equal(t, model.ModeEdit, saved.Mode)
		assert.Equal(t, bookingFixture().Vehicles, saved.Vehicles)

		assert.Equal(t, string(model.ModeEdit), res.Mode)
		assert.Equal(t, "b1", res.TargetID)
		assert.Equal(t, int64(3), res.BaseVersion)
		assert.Equal(t, "CUST-VN-007", res.Form.CustomerID)
	})

	t.Run("edit of unknown booking", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Get(gomock.Any(), "missing").Return(bookingModel.Booking{}, bookingModel.ErrBookingNotFound)

		_, err := f.svc.Start(context.Background(), dto.StartWizardRequest{BookingID: "missing"})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestWizardService_Navigation(t *testing.T) {
	next := func(svc service.Wizard) (dto.WizardResponse, error) {
		return svc.Next(context.Background(), "w1")
	}
	prev := func(svc service.Wizard) (dto.WizardResponse, error) {
		return svc.Prev(context.Background(), "w1")
	}

	tests := []struct {
		name     string
		step     model.Step
		call     func(svc service.Wizard) (dto.WizardResponse, error)
		wantStep int
	}{
		{
			name:     "next from general",
			step:     model.StepGeneral,
			call:     next,
			wantStep: 2,
		},
		{
			name:     "next stays on cargo",
			step:     model.StepCargo,
			call:     next,
			wantStep: 3,
		},
		{
			name:     "prev from vehicles",
			step:     model.StepVehicles,
			call:     prev,
			wantStep: 1,
		},
		{
			name:     "prev stays on general",
			step:     model.StepGeneral,
			call:     prev,
			wantStep: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			w := session()
			w.CurrentStep = tt.step

			f.repo.EXPECT().Get(gomock.Any(), "w1").Return(w, nil)
			f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved model.Wizard) error {
				assert.Equal(t, model.Step(tt.wantStep), saved.CurrentStep)

				return nil
			})

			res, err := tt.call(f.svc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStep, res.CurrentStep)
		})
	}
}

func TestWizardService_SessionNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), "gone").Return(model.Wizard{}, model.ErrWizardNotFound)

	_, err := f.svc.Next(context.Background(), "gone")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestWizardService_UpdateGeneral(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), "w1").Return(session(), nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	req := dto.UpdateGeneralRequest{GeneralInfo: bookingModel.GeneralInfo{CustomerID: "CUST-VN-002", NeedsYardService: true}}

	res, err := f.svc.UpdateGeneral(context.Background(), "w1", req)
	require.NoError(t, err)
	assert.Equal(t, "CUST-VN-002", res.Form.CustomerID)
	assert.True(t, res.Form.NeedsYardService)
}

func TestWizardService_Vehicles(t *testing.T) {
	plate := "29C-123.45"

	t.Run("add to destination", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), "w1").Return(session(), nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.AddVehicle(context.Background(), "w1", string(bookingModel.FleetDestination))
		require.NoError(t, err)
		assert.Len(t, res.Vehicles.Destination, 2)
	})

	t.Run("update plate", func(t *testing.T) {
		f := newFixture(t)

		w := session()
		id := w.Vehicles.Destination[0].ID

		f.repo.EXPECT().Get(gomock.Any(), "w1").Return(w, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.UpdateVehicle(context.Background(), "w1", string(bookingModel.FleetDestination), id, bookingModel.VehiclePatch{LicensePlate: &plate})
		require.NoError(t, err)
		assert.Equal(t, plate, res.Vehicles.Destination[0].LicensePlate)
	})

	t.Run("remove unknown vehicle writes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), "w1").Return(session(), nil)

		_, err := f.svc.RemoveVehicle(context.Background(), "w1", string(bookingModel.FleetOrigin), "cn-99")
		require.Error(t, err)
		assert.ErrorIs(t, err, bookingModel.ErrVehicleNotFound)
	})

	t.Run("invalid fleet is rejected before loading", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.AddVehicle(context.Background(), "w1", "sea")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestWizardService_Cargo(t *testing.T) {
	name := "Máy may"

	tests := []struct {
		name      string
		call      func(svc service.Wizard) (dto.WizardResponse, error)
		wantSave  bool
		wantErr   error
		wantItems int
	}{
		{
			name: "add item",
			call: func(svc service.Wizard) (dto.WizardResponse, error) {
				return svc.AddCargoItem(context.Background(), "w1")
			},
			wantSave:  true,
			wantItems: 2,
		},
		{
			name: "update item",
			call: func(svc service.Wizard) (dto.WizardResponse, error) {
				return svc.UpdateCargoItem(context.Background(), "w1", 0, bookingModel.CargoItemPatch{Name: &name})
			},
			wantSave:  true,
			wantItems: 1,
		},
		{
			name: "update out of range",
			call: func(svc service.Wizard) (dto.WizardResponse, error) {
				return svc.UpdateCargoItem(context.Background(), "w1", 5, bookingModel.CargoItemPatch{Name: &name})
			},
			wantErr: bookingModel.ErrCargoItemNotFound,
		},
		{
			name: "remove item",
			call: func(svc service.Wizard) (dto.WizardResponse, error) {
				return svc.RemoveCargoItem(context.Background(), "w1", 0)
			},
			wantSave:  true,
			wantItems: 0,
		},
		{
			name: "switch to bulk",
			call: func(svc service.Wizard) (dto.WizardResponse, error) {
				return svc.SetCargoMode(context.Background(), "w1", dto.CargoModeRequest{Mode: string(bookingModel.CargoModeBulk)})
			},
			wantSave:  true,
			wantItems: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), "w1").Return(session(), nil)
			if tt.wantSave {
				f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			res, err := tt.call(f.svc)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Cargo.Items, tt.wantItems)
		})
	}
}

func TestWizardService_UploadItemFile(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), "w1").Return(session(), nil)
	f.s3.EXPECT().
		UploadFile(gomock.Any(), "packing-lists", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dir string, _ multipart.File, _ *multipart.FileHeader, fileName string) (s3.Object, error) {
			assert.Regexp(t, `\.pdf$`, fileName)

			return s3.Object{Key: dir + "/" + fileName, URL: "https://files.example.com/" + dir + "/" + fileName}, nil
		})

	var saved model.Wizard
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w model.Wizard) error {
		saved = w

		return nil
	})

	res, err := f.svc.UploadItemFile(context.Background(), "w1", 0, upload("list.pdf"))
	require.NoError(t, err)

	require.NotNil(t, res.Cargo.Items[0].PackingList)
	assert.Equal(t, "list.pdf", res.Cargo.Items[0].PackingList.Name)
	require.Len(t, saved.Uploads, 1)
	assert.True(t, saved.OwnsUpload(res.Cargo.Items[0].PackingList.Key))
}

func TestWizardService_UploadPackingList(t *testing.T) {
	t.Run("bulk cargo", func(t *testing.T) {
		f := newFixture(t)

		w := session()
		require.NoError(t, w.Cargo.SetMode(bookingModel.CargoModeBulk))

		f.repo.EXPECT().Get(gomock.Any(), "w1").Return(w, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s3.Object{Key: "packing-lists/agg.xlsx", URL: "https://files.example.com/packing-lists/agg.xlsx"}, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.UploadPackingList(context.Background(), "w1", upload("agg.xlsx"))
		require.NoError(t, err)
		require.NotNil(t, res.Cargo.PackingList)
		assert.Equal(t, "packing-lists/agg.xlsx", res.Cargo.PackingList.Key)
	})

	t.Run("consolidated cargo discards the upload", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), "w1").Return(session(), nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s3.Object{Key: "packing-lists/agg.xlsx"}, nil)
		deleted := f.expectDeletes(1)

		_, err := f.svc.UploadPackingList(context.Background(), "w1", upload("agg.xlsx"))
		require.Error(t, err)
		assert.ErrorIs(t, err, bookingModel.ErrPackingListBulkOnly)
		assert.Equal(t, []string{"packing-lists/agg.xlsx"}, collect(t, deleted, 1))
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)

		w := session()
		require.NoError(t, w.Cargo.SetMode(bookingModel.CargoModeBulk))

		f.repo.EXPECT().Get(gomock.Any(), "w1").Return(w, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s3.Object{}, errors.New("bucket unavailable"))

		_, err := f.svc.UploadPackingList(context.Background(), "w1", upload("agg.xlsx"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload file")
	})
}

func TestWizardService_RemoveItemFile(t *testing.T) {
	f := newFixture(t)

	w := session()
	_, err := w.Cargo.AttachItemFile(0, bookingModel.FileRef{Key: "packing-lists/a.pdf"})
	require.NoError(t, err)

	f.repo.EXPECT().Get(gomock.Any(), "w1").Return(w, nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.RemoveItemFile(context.Background(), "w1", 0)
	require.NoError(t, err)
	assert.Nil(t, res.Cargo.Items[0].PackingList)
}

func TestWizardService_Cancel(t *testing.T) {
	f := newFixture(t)

	w := session()
	w.TrackUpload("packing-lists/a.pdf")
	w.TrackUpload("packing-lists/b.pdf")

	f.repo.EXPECT().Get(gomock.Any(), "w1").Return(w, nil)
	f.repo.EXPECT().Delete(gomock.Any(), "w1").Return(nil)
	deleted := f.expectDeletes(2)

	require.NoError(t, f.svc.Cancel(context.Background(), "w1"))
	assert.ElementsMatch(t, []string{"packing-lists/a.pdf", "packing-lists/b.pdf"}, collect(t, deleted, 2))
}

func TestWizardService_Submit(t *testing.T) {
	t.Run("create stores a draft booking", func(t *testing.T) {
		f := newFixture(t)

		w := session()
		_, err := w.Cargo.AttachItemFile(0, bookingModel.FileRef{Key: "packing-lists/kept.pdf"})
		require.NoError(t, err)
		w.TrackUpload("packing-lists/replaced.pdf")
		w.TrackUpload("packing-lists/kept.pdf")

		f.repo.EXPECT().Get(gomock.Any(), "w1").Return(w, nil)
		f.booking.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b bookingModel.Booking) (bookingModel.Booking, error) {
			assert.Equal(t, bookingModel.BookingStatusDraft, b.Status)
			assert.Equal(t, int64(0), b.Version)
			assert.Regexp(t, `^BK-\d{8}-[0-9A-F]{6}$`, b.BookingNumber)
			b.Version = 1

			return b, nil
		})
		f.repo.EXPECT().Delete(gomock.Any(), "w1").Return(nil)
		deleted := f.expectDeletes(1)

		res, err := f.svc.Submit(context.Background(), "w1")
		require.NoError(t, err)

		assert.Equal(t, string(bookingModel.BookingStatusDraft), res.Status)
		assert.Equal(t, int64(1), res.Version)
		assert.Equal(t, "CUST-VN-001", res.CustomerID)
		assert.Equal(t, []string{"packing-lists/replaced.pdf"}, collect(t, deleted, 1))
	})

	t.Run("edit drops files the booking no longer refers to", func(t *testing.T) {
		f := newFixture(t)

		target := bookingFixture()
		w := *model.NewEditWizard(target, time.Now())
		_, err := w.Cargo.DetachItemFile(0)
		require.NoError(t, err)

		f.repo.EXPECT().Get(gomock.Any(), w.ID).Return(w, nil)
		f.bookings.EXPECT().Get(gomock.Any(), "b1").Return(target, nil)
		f.booking.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b bookingModel.Booking) (bookingModel.Booking, error) {
			assert.Equal(t, "b1", b.ID)
			assert.Equal(t, int64(3), b.Version)
			b.Version = 4

			return b, nil
		})
		f.repo.EXPECT().Delete(gomock.Any(), w.ID).Return(nil)
		deleted := f.expectDeletes(1)

		res, err := f.svc.Submit(context.Background(), w.ID)
		require.NoError(t, err)

		assert.Equal(t, "BK-20250315-B10000", res.BookingNumber)
		assert.Equal(t, int64(4), res.Version)
		assert.Equal(t, []string{"packing-lists/old.pdf"}, collect(t, deleted, 1))
	})

	t.Run("stale edit keeps the session", func(t *testing.T) {
		f := newFixture(t)

		target := bookingFixture()
		w := *model.NewEditWizard(target, time.Now())

		f.repo.EXPECT().Get(gomock.Any(), w.ID).Return(w, nil)
		f.bookings.EXPECT().Get(gomock.Any(), "b1").Return(target, nil)
		f.booking.EXPECT().Save(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, bookingModel.ErrVersionConflict)

		_, err := f.svc.Submit(context.Background(), w.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("bulk cargo with several items", func(t *testing.T) {
		f := newFixture(t)

		w := session()
		w.Cargo.Mode = bookingModel.CargoModeBulk
		w.Cargo.Items = append(w.Cargo.Items, bookingModel.CargoItem{})

		f.repo.EXPECT().Get(gomock.Any(), "w1").Return(w, nil)

		_, err := f.svc.Submit(context.Background(), "w1")
		require.Error(t, err)
		assert.ErrorIs(t, err, bookingModel.ErrBulkSingleItem)
	})
}
