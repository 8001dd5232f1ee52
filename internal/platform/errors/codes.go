// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Sequence errors
	CodeEmptyInput        Code = "EMPTY_INPUT"
	CodeInvalidCharacters  Code = "INVALID_CHARACTERS"

	// Catalog errors
	CodeToolNotFound Code = "TOOL_NOT_FOUND"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeEmptyInput,
		CodeInvalidCharacters:
		return codes.InvalidArgument

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeToolNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
