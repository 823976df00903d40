package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidLogLevel      ErrorCode = 102
	ErrCodeInvalidLogColor      ErrorCode = 103
	ErrCodeInvalidTraderID      ErrorCode = 104
	ErrCodeInvalidInstanceID    ErrorCode = 105
	ErrCodeMissingParameter     ErrorCode = 106
	ErrCodeInvalidVersion       ErrorCode = 107

	// I/O errors (200-299)
	ErrCodeIoWrite ErrorCode = 200
	ErrCodeIoFlush ErrorCode = 201

	// Handle errors (300-399)
	ErrCodeInvalidHandle ErrorCode = 300

	// Config errors (400-499)
	ErrCodeConfigReadFailed  ErrorCode = 400
	ErrCodeConfigParseFailed ErrorCode = 401

	// Version errors (500-599)
	ErrCodeVersionMismatch ErrorCode = 500
)

// Category groups codes by their hundreds digit.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryValidation
	CategoryIO
	CategoryHandle
	CategoryConfig
	CategoryVersion
)

func (c ErrorCode) Category() Category {
	category := Category(c / 100)
	if category > CategoryVersion || c < 0 {
		return CategoryGeneral
	}

	return category
}

func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryIO:
		return "io"
	case CategoryHandle:
		return "handle"
	case CategoryConfig:
		return "config"
	case CategoryVersion:
		return "version"
	default:
		return "general"
	}
}
