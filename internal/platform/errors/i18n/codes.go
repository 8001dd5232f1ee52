package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown           = "UNKNOWN"
	CodeEmptyInput        = "EMPTY_INPUT"
	CodeInvalidCharacters = "INVALID_CHARACTERS"
	CodeToolNotFound      = "TOOL_NOT_FOUND"
	CodeNotFound          = "NOT_FOUND"
)
