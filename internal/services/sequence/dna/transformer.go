package dna

import (
	"context"

	apperrors "github.com/louisbranch/utility.tools/internal/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/louisbranch/utility.tools/internal/services/sequence/dna"

// Transformer runs ReverseComplement inside a trace span so every transport
// reports the same attributes.
type Transformer struct {
	tracer trace.Tracer
}

// NewTransformer builds a Transformer on provider. A nil provider uses the
// global tracer provider.
func NewTransformer(provider trace.TracerProvider) *Transformer {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &Transformer{tracer: provider.Tracer(instrumentationName)}
}

// ReverseComplement validates input and returns its reverse complement,
// recording input length and outcome on a "dna.ReverseComplement" span.
func (t *Transformer) ReverseComplement(ctx context.Context, input string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := otel.GetTracerProvider().Tracer(instrumentationName)
	if t != nil && t.tracer != nil {
		tracer = t.tracer
	}

	_, span := tracer.Start(ctx, "dna.ReverseComplement", trace.WithAttributes(
		attribute.Int("sequence.input_length", len(input)),
	))
	defer span.End()

	result, err := ReverseComplement(input)
	if err != nil {
		code := apperrors.GetCode(err)
		span.SetAttributes(attribute.String("sequence.outcome", string(code)))
		span.SetStatus(codes.Error, string(code))
		return "", err
	}
	span.SetAttributes(
		attribute.String("sequence.outcome", "ok"),
		attribute.Int("sequence.length", len(result)),
	)
	return result, nil
}
