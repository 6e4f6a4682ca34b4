package wizard_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	otelMocks "clearance/infras/otel/mocks"
	bookingModel "clearance/internal/domains/booking/model"
	bookingDto "clearance/internal/domains/booking/model/dto"
	"clearance/internal/domains/wizard/mocks"
	"clearance/internal/domains/wizard/model"
	"clearance/internal/domains/wizard/model/dto"
	"clearance/internal/handlers/wizard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockWizardService) {
	t.Helper()

	svc := mocks.NewMockWizardService(gomock.NewController(t))
	handler := wizard.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func multipartRequest(t *testing.T, target, fileName, contentType string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.7"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandler_StartWizard(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     dto.StartWizardRequest
		wantCode int
	}{
		{name: "create without body", want: dto.StartWizardRequest{}, wantCode: http.StatusCreated},
		{name: "edit", body: `{"booking_id":"b1"}`, want: dto.StartWizardRequest{BookingID: "b1"}, wantCode: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().Start(gomock.Any(), tt.want).Return(dto.WizardResponse{ID: "w1", Mode: string(model.ModeCreate)}, nil)

			rec := serve(router, http.MethodPost, "/wizards", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_Navigation(t *testing.T) {
	router, svc := newRouter(t)

	gomock.InOrder(
		svc.EXPECT().Next(gomock.Any(), "w1").Return(dto.WizardResponse{CurrentStep: 2}, nil),
		svc.EXPECT().Prev(gomock.Any(), "w1").Return(dto.WizardResponse{CurrentStep: 1}, nil),
	)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/wizards/w1/next", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/wizards/w1/prev", "").Code)
}

func TestHandler_GetWizard_NotFound(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "gone").Return(dto.WizardResponse{}, model.ErrWizardNotFound)

	rec := serve(router, http.MethodGet, "/wizards/gone", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "wizard session not found")
}

func TestHandler_Vehicles(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			UpdateVehicle(gomock.Any(), "w1", "destination", "vn-2", gomock.Any()).
			DoAndReturn(func(_ any, _, _, _ string, patch bookingModel.VehiclePatch) (dto.WizardResponse, error) {
				require.NotNil(t, patch.DriverName)
				assert.Equal(t, "Trần Văn B", *patch.DriverName)
				assert.Nil(t, patch.LicensePlate)

				return dto.WizardResponse{}, nil
			})

		rec := serve(router, http.MethodPatch, "/wizards/w1/vehicles/destination/vn-2", `{"driver_name":"Trần Văn B"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("origin-only field on destination", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().UpdateVehicle(gomock.Any(), "w1", "destination", "vn-2", gomock.Any()).
			Return(dto.WizardResponse{}, bookingModel.ErrFleetOnlyField)

		rec := serve(router, http.MethodPatch, "/wizards/w1/vehicles/destination/vn-2", `{"export_loading_link":"https://x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("add and remove", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().AddVehicle(gomock.Any(), "w1", "origin").Return(dto.WizardResponse{}, nil)
		svc.EXPECT().RemoveVehicle(gomock.Any(), "w1", "origin", "cn-3").Return(dto.WizardResponse{}, nil)

		assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/wizards/w1/vehicles/origin", "").Code)
		assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/wizards/w1/vehicles/origin/cn-3", "").Code)
	})
}

func TestHandler_Cargo(t *testing.T) {
	t.Run("bad index", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPatch, "/wizards/w1/cargo/items/first", `{"name":"Máy may"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update item", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().UpdateCargoItem(gomock.Any(), "w1", 1, gomock.Any()).Return(dto.WizardResponse{}, nil)

		rec := serve(router, http.MethodPatch, "/wizards/w1/cargo/items/1", `{"name":"Máy may"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid mode", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPut, "/wizards/w1/cargo/mode", `{"mode":"pallet"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bulk cannot add items", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().AddCargoItem(gomock.Any(), "w1").Return(dto.WizardResponse{}, bookingModel.ErrBulkSingleItem)

		rec := serve(router, http.MethodPost, "/wizards/w1/cargo/items", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_UploadItemFile(t *testing.T) {
	t.Run("pdf", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			UploadItemFile(gomock.Any(), "w1", 0, gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ int, req dto.UploadFileRequest) (dto.WizardResponse, error) {
				assert.Equal(t, "list.pdf", req.File.Filename)
				assert.NotNil(t, req.FileReader)

				return dto.WizardResponse{}, nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/wizards/w1/cargo/items/0/file", "list.pdf", "application/pdf"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unsupported type", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, "/wizards/w1/cargo/items/0/file", "run.exe", "application/octet-stream"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/wizards/w1/cargo/packing-list", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_SubmitWizard(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "stored", wantCode: http.StatusOK},
		{name: "stale edit", err: bookingModel.ErrVersionConflict, wantCode: http.StatusConflict},
		{name: "bulk with several items", err: bookingModel.ErrBulkSingleItem, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().Submit(gomock.Any(), "w1").Return(bookingDto.BookingResponse{ID: "b1", BookingNumber: "BK-20250315-ABCDEF"}, tt.err)

			rec := serve(router, http.MethodPost, "/wizards/w1/submit", "")
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_CancelWizard(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Cancel(gomock.Any(), "w1").Return(nil)

	rec := serve(router, http.MethodDelete, "/wizards/w1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
