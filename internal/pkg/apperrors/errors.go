package apperrors

import "errors"

// GPA entry errors, checked in this order for every course entry
var (
	ErrInvalidMarks        = errors.New("invalid marks")
	ErrMarksOutOfRange     = errors.New("marks out of range")
	ErrInvalidCredits      = errors.New("invalid credits")
	ErrCreditsBelowMinimum = errors.New("credits below minimum")
	// ErrCreditsOverflow means the credit-weighted totals left float64 range
	ErrCreditsOverflow = errors.New("credit total too large")
)

// Calculation request errors
var (
	ErrTooManyEntries = errors.New("too many course entries")
)

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// IsEntryError reports whether err is one of the per-entry GPA errors
func IsEntryError(err error) bool {
	return Is(err, ErrInvalidMarks, ErrMarksOutOfRange, ErrInvalidCredits, ErrCreditsBelowMinimum, ErrCreditsOverflow)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
