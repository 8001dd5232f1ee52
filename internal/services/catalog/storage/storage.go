// Package storage defines persistence contracts for the tool catalog.
package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/utility.tools/internal/services/catalog"
)

var (
	// ErrNotFound indicates a requested tool is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a tool with the same id already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// Store reads catalog entries.
type Store interface {
	ListTools(ctx context.Context) ([]catalog.Tool, error)
	GetTool(ctx context.Context, id string) (catalog.Tool, error)
}

// Static serves a fixed in-memory catalog.
type Static struct {
	tools []catalog.Tool
}

// NewStatic returns a store over tools, kept in the given order.
func NewStatic(tools []catalog.Tool) *Static {
	cloned := make([]catalog.Tool, len(tools))
	copy(cloned, tools)
	return &Static{tools: cloned}
}

// NewBuiltin returns a store over catalog.Builtin.
func NewBuiltin() *Static {
	return NewStatic(catalog.Builtin())
}

// ListTools returns every tool.
func (s *Static) ListTools(ctx context.Context) ([]catalog.Tool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	out := make([]catalog.Tool, len(s.tools))
	copy(out, s.tools)
	return out, nil
}

// GetTool returns one tool by id.
func (s *Static) GetTool(ctx context.Context, id string) (catalog.Tool, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Tool{}, err
	}
	if s == nil {
		return catalog.Tool{}, ErrNotFound
	}
	id = strings.TrimSpace(id)
	for _, tool := range s.tools {
		if tool.ID == id {
			return tool, nil
		}
	}
	return catalog.Tool{}, ErrNotFound
}
