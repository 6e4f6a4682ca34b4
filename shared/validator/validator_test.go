package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"clearance/shared/constant"
	"clearance/shared/failure"
	"clearance/shared/validator"

	"github.com/stretchr/testify/assert"
)

type jobRequest struct {
	Type        string   `json:"type"        validate:"required,oneof=transshipment direct warehousing"`
	PerformDate string   `json:"performDate" validate:"required,date"`
	Quantity    int      `json:"quantity"    validate:"gte=0"`
	Reqs        []string `json:"supplementalReqs" validate:"max=6"`
}

type uploadRequest struct {
	File *multipart.FileHeader `validate:"required,mimetypes=application/pdf image/png,maxfilesize=1"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    jobRequest
		wantErr string
	}{
		{
			name: "valid",
			data: jobRequest{Type: "direct", PerformDate: "2025-03-14", Quantity: 2},
		},
		{
			name:    "missing perform date",
			data:    jobRequest{Type: "direct"},
			wantErr: "performDate is required",
		},
		{
			name:    "malformed perform date",
			data:    jobRequest{Type: "direct", PerformDate: "14/03/2025"},
			wantErr: "performDate must be a date in YYYY-MM-DD format",
		},
		{
			name:    "unknown type",
			data:    jobRequest{Type: "teleport", PerformDate: "2025-03-14"},
			wantErr: "type must be one of transshipment direct warehousing",
		},
		{
			name:    "negative quantity",
			data:    jobRequest{Type: "direct", PerformDate: "2025-03-14", Quantity: -1},
			wantErr: "quantity must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, failure.IsValidation(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"type":"warehousing","performDate":"2025-03-14","quantity":1}`,
		},
		{
			name:    "fails validation",
			body:    `{"type":"warehousing"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"type":}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req jobRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "warehousing", req.Type)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-12-31", "date"))
	assert.NoError(t, validator.ValidateVar("", "date"))
	assert.Error(t, validator.ValidateVar("2025-13-01", "date"))
	assert.Error(t, validator.ValidateVar("", "required"))
}

func TestFileValidation(t *testing.T) {
	header := func(contentType string, size int64) *multipart.FileHeader {
		h := textproto.MIMEHeader{}
		h.Set(constant.RequestHeaderContentType, contentType)

		return &multipart.FileHeader{Filename: "packing.pdf", Header: h, Size: size}
	}

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr bool
	}{
		{name: "accepted pdf", file: header("application/pdf", 512)},
		{name: "accepted png", file: header("image/png", 1024*1024)},
		{name: "wrong type", file: header("text/plain", 10), wantErr: true},
		{name: "too large", file: header("application/pdf", 1024*1024+1), wantErr: true},
		{name: "missing", file: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadRequest{File: tt.file})

			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
		})
	}
}
