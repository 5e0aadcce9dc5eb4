package availability

import "fmt"

// Kind classifies request-local validation failures.
type Kind string

const (
	KindInvalidTimeFormat Kind = "InvalidTimeFormat"
	KindInvalidDuration   Kind = "InvalidDuration"
	KindMissingField      Kind = "MissingField"
	KindNotFound          Kind = "NotFound"
)

// Error is returned by every availability operation that rejects its input.
// Message is safe to show to the caller as is.
type Error struct {
	Kind        Kind
	Participant string
	Field       string
	Value       string
	Message     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidTimeFormat = &Error{Kind: KindInvalidTimeFormat}
	ErrInvalidDuration   = &Error{Kind: KindInvalidDuration}
	ErrMissingField      = &Error{Kind: KindMissingField}
	ErrNotFound          = &Error{Kind: KindNotFound}
)

func newTimeFormatError(value string) *Error {
	return &Error{
		Kind:    KindInvalidTimeFormat,
		Value:   value,
		Message: fmt.Sprintf("invalid time %q. Use HH:MM.", value),
	}
}

func NewInvalidDurationError(value, msg string) *Error {
	return &Error{
		Kind:    KindInvalidDuration,
		Field:   "duration",
		Value:   value,
		Message: msg,
	}
}

func NewMissingFieldError(field, msg string) *Error {
	return &Error{
		Kind:    KindMissingField,
		Field:   field,
		Message: msg,
	}
}

func newNotFoundError(participant string) *Error {
	return &Error{
		Kind:        KindNotFound,
		Participant: participant,
		Message:     fmt.Sprintf("User with ID %s not found.", participant),
	}
}
