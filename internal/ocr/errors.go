package ocr

import "fmt"

// ErrorCode represents specific recognition failure types.
type ErrorCode string

const (
	ErrServiceUnavailable ErrorCode = "OCR_SERVICE_UNAVAILABLE"
	ErrServiceTimeout     ErrorCode = "OCR_SERVICE_TIMEOUT"
	ErrRateLimited        ErrorCode = "OCR_RATE_LIMITED"
	ErrInvalidImage       ErrorCode = "INVALID_IMAGE"
)

// Error is a structured error for recognition failures.
type Error struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsRetryable returns whether this error is retryable.
func (e *Error) IsRetryable() bool {
	return e.Retryable
}
