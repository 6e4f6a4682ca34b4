package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"clearance/config"
	otelMocks "clearance/infras/otel/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	put       *s3.PutObjectInput
	body      []byte
	deleted   *s3.DeleteObjectInput
	putErr    error
	deleteErr error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = params
	f.body, _ = io.ReadAll(params.Body)

	return &s3.PutObjectOutput{}, f.putErr
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = params

	return &s3.DeleteObjectOutput{}, f.deleteErr
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "clearance-docs"
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"

	return cfg
}

func TestUploadFile(t *testing.T) {
	header := &multipart.FileHeader{Filename: "packing.pdf", Header: textproto.MIMEHeader{}}
	header.Header.Set("Content-Type", "application/pdf")

	tests := []struct {
		name    string
		putErr  error
		wantErr bool
	}{
		{name: "uploads under directory"},
		{name: "put fails", putErr: errors.New("denied"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeObjectAPI{putErr: tt.putErr}
			svc := newWithClient(api, testConfig(), otelMocks.NewOtel())

			file := memFile{bytes.NewReader([]byte("%PDF-1.7"))}
			obj, err := svc.UploadFile(context.Background(), "wizards/w-1/cargo/0", file, header, "packing.pdf")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, obj.Key)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "wizards/w-1/cargo/0/packing.pdf", obj.Key)
			assert.Equal(t, "https://cdn.example.com/wizards/w-1/cargo/0/packing.pdf", obj.URL)
			assert.Equal(t, "clearance-docs", aws.ToString(api.put.Bucket))
			assert.Equal(t, "application/pdf", aws.ToString(api.put.ContentType))
			assert.Equal(t, []byte("%PDF-1.7"), api.body)
		})
	}
}

func TestDeleteFile(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newWithClient(api, testConfig(), otelMocks.NewOtel())

	require.NoError(t, svc.DeleteFile(context.Background(), "wizards/w-1/packing-list/list.xlsx"))
	assert.Equal(t, "wizards/w-1/packing-list/list.xlsx", aws.ToString(api.deleted.Key))

	api.deleteErr = errors.New("gone")
	assert.Error(t, svc.DeleteFile(context.Background(), "k"))
}
