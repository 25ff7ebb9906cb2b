package otel_test

import (
	"context"
	"errors"
	"testing"
	"usertodo/config"
	"usertodo/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "usertodo-test"

	tracer, cleanup, err := otel.New(cfg)
	require.NoError(t, err)
	defer cleanup()

	ctx, scope := tracer.NewScope(context.Background(), "test", "test.span")

	span := oteltrace.SpanFromContext(ctx)
	assert.True(t, span.SpanContext().IsValid(), "expected a recording span in the returned context")

	scope.SetAttributes(map[string]any{
		"bool":   true,
		"string": "value",
		"int":    1,
		"slice":  []string{"a", "b"},
		"other":  int64(2),
	})
	scope.AddEvent("event")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("boom"))
	scope.End()
}
