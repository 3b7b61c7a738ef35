package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewRecorder_NoEndpointIsNoop(t *testing.T) {
	r, err := NewRecorder(context.Background(), Options{})
	require.NoError(t, err)
	require.NotNil(t, r)

	r.Record(context.Background(), "sidebar.visibility", map[string]string{"open": "true"})
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *Recorder
	r.Record(context.Background(), "ignored", nil)
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestRecorder_RecordsNamespacedAttributes(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	r := NewRecorderFromProvider(tp)

	r.Record(context.Background(), "sidebar.visibility", map[string]string{
		"sidebar.id":   "abc",
		"sidebar.open": "true",
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "sidebar.visibility", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("signupdesk.sidebar.id", "abc"),
		attribute.String("signupdesk.sidebar.open", "true"),
	}, spans[0].Attributes())

	require.NoError(t, r.Shutdown(context.Background()))
}
