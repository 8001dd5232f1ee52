package reversecomplement

import (
	"context"
	"strings"
	"unicode/utf8"

	apperrors "github.com/louisbranch/utility.tools/internal/services/web/platform/errors"
)

// Transformer computes the reverse complement of a DNA sequence.
type Transformer interface {
	ReverseComplement(ctx context.Context, input string) (string, error)
}

type service struct {
	transformer Transformer
}

func newService(transformer Transformer) service {
	return service{transformer: transformer}
}

// result is one computed submission. Length counts the trimmed input so the
// page counter agrees with what was transformed.
type result struct {
	Sequence string
	Length   int
	Output   string
}

func (s service) reverseComplement(ctx context.Context, input string) (result, error) {
	out := result{Sequence: input, Length: utf8.RuneCountInString(strings.TrimSpace(input))}
	if s.transformer == nil {
		return out, apperrors.E(apperrors.KindUnavailable, "sequence transformer is not configured")
	}
	value, err := s.transformer.ReverseComplement(ctx, input)
	if err != nil {
		return out, err
	}
	out.Output = value
	return out, nil
}
