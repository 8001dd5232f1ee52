package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	platformerrors "github.com/louisbranch/utility.tools/internal/platform/errors"
	toolcatalog "github.com/louisbranch/utility.tools/internal/services/catalog"
	"github.com/louisbranch/utility.tools/internal/services/catalog/storage"
	apperrors "github.com/louisbranch/utility.tools/internal/services/web/platform/errors"
)

// ToolStore reads catalog entries.
type ToolStore interface {
	ListTools(ctx context.Context) ([]toolcatalog.Tool, error)
	GetTool(ctx context.Context, id string) (toolcatalog.Tool, error)
}

// Transformer computes the reverse complement of a DNA sequence.
type Transformer interface {
	ReverseComplement(ctx context.Context, input string) (string, error)
}

type service struct {
	store       ToolStore
	transformer Transformer
}

func newService(store ToolStore, transformer Transformer) service {
	return service{store: store, transformer: transformer}
}

func (s service) listTools(ctx context.Context) ([]toolcatalog.Tool, error) {
	if s.store == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "catalog store is not configured")
	}
	tools, err := s.store.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return tools, nil
}

func (s service) getTool(ctx context.Context, id string) (toolcatalog.Tool, error) {
	if s.store == nil {
		return toolcatalog.Tool{}, apperrors.E(apperrors.KindUnavailable, "catalog store is not configured")
	}
	id = strings.TrimSpace(id)
	tool, err := s.store.GetTool(ctx, id)
	if stderrors.Is(err, storage.ErrNotFound) {
		return toolcatalog.Tool{}, platformerrors.WrapWithMetadata(
			platformerrors.CodeToolNotFound,
			"tool not found",
			map[string]string{"ToolID": id},
			err,
		)
	}
	if err != nil {
		return toolcatalog.Tool{}, fmt.Errorf("get tool %q: %w", id, err)
	}
	return tool, nil
}

// reverseComplementResult is the computed result and the trimmed input length.
type reverseComplementResult struct {
	Result string
	Length int
}

func (s service) reverseComplement(ctx context.Context, input string) (reverseComplementResult, error) {
	if s.transformer == nil {
		return reverseComplementResult{}, apperrors.E(apperrors.KindUnavailable, "sequence transformer is not configured")
	}
	value, err := s.transformer.ReverseComplement(ctx, input)
	if err != nil {
		return reverseComplementResult{}, err
	}
	return reverseComplementResult{Result: value, Length: utf8.RuneCountInString(strings.TrimSpace(input))}, nil
}
