package otel_test

import (
	"context"
	"errors"
	"testing"

	"clearance/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder() (otel.Otel, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	return otel.NewWithProvider(provider), recorder
}

func TestScope_TraceIfError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
	}{
		{
			name:       "records error",
			err:        errors.New("booking not found"),
			wantStatus: codes.Error,
		},
		{
			name:       "nil error leaves status unset",
			err:        nil,
			wantStatus: codes.Unset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ot, recorder := newRecorder()

			_, scope := ot.NewScope(context.Background(), "service", "service.Get")
			scope.TraceIfError(tt.err)
			scope.End()

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, "service.Get", spans[0].Name())
			assert.Equal(t, tt.wantStatus, spans[0].Status().Code)
		})
	}
}

func TestScope_SetAttributes(t *testing.T) {
	ot, recorder := newRecorder()

	_, scope := ot.NewScope(context.Background(), "repository", "repository.List")
	scope.SetAttributes(map[string]any{
		"status":  "processing",
		"page":    2,
		"version": int64(7),
		"draft":   true,
	})
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.String("status", "processing"))
	assert.Contains(t, attrs, attribute.Int("page", 2))
	assert.Contains(t, attrs, attribute.Int64("version", 7))
	assert.Contains(t, attrs, attribute.Bool("draft", true))
}

func TestOtel_Shutdown(t *testing.T) {
	ot, _ := newRecorder()

	assert.NoError(t, ot.Shutdown(context.Background()))
}
