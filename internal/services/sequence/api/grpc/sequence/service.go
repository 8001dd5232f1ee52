// Package sequence exposes sequence.v1.SequenceService over gRPC.
package sequence

import (
	"context"
	"errors"
	"log"

	apperrors "github.com/louisbranch/utility.tools/internal/platform/errors"
	errori18n "github.com/louisbranch/utility.tools/internal/platform/errors/i18n"
	platformgrpc "github.com/louisbranch/utility.tools/internal/platform/grpc"
	platformi18n "github.com/louisbranch/utility.tools/internal/platform/i18n"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Transformer computes reverse complements.
type Transformer interface {
	ReverseComplement(ctx context.Context, input string) (string, error)
}

// Service implements SequenceServiceServer.
type Service struct {
	transformer Transformer
}

// NewService creates a sequence service backed by transformer.
func NewService(transformer Transformer) *Service {
	return &Service{transformer: transformer}
}

// ReverseComplement validates the request sequence and returns its reverse
// complement. Validation failures are InvalidArgument with ErrorInfo and a
// LocalizedMessage in the caller's x-locale.
func (s *Service) ReverseComplement(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "reverse complement request is required")
	}
	if s == nil || s.transformer == nil {
		return nil, status.Error(codes.Internal, "sequence transformer is not configured")
	}

	result, err := s.transformer.ReverseComplement(ctx, in.GetValue())
	if err != nil {
		locale := platformi18n.NormalizeLocale(platformgrpc.LocaleFromIncoming(ctx, platformi18n.DefaultLocale()))
		return nil, toStatus(err, locale)
	}
	return wrapperspb.String(result), nil
}

func toStatus(err error, locale string) error {
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		log.Printf("reverse complement: %v", err)
		return status.Error(codes.Internal, "reverse complement failed")
	}
	message := errori18n.GetCatalog(locale).Format(string(domainErr.Code), domainErr.Metadata)
	return domainErr.ToGRPCStatus(locale, message)
}
