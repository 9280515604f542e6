package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	// ErrConfiguration is terminal for a screen: without a base URL and
	// token no request can be made.
	ErrConfiguration = errors.New("missing API URL or authentication token")

	// ErrAuthExpired means the bearer token is no longer accepted; the
	// stored token must be cleared and the operator sent back to sign-in.
	ErrAuthExpired = errors.New("session expired or invalid")

	// ErrInvalidRecord is returned when an edit is opened on a record
	// without an identifier.
	ErrInvalidRecord = errors.New("invalid record: missing identifier")

	// ErrBusy is returned when an operation is rejected because another
	// one for the same target is still in flight.
	ErrBusy = errors.New("operation already in flight")
)

// ValidationError is a field-level, recoverable failure. It never
// reaches the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// RemoteError is a transport or API-reported failure. Message is the
// user-facing text: the API's provided message when present, else a
// fixed fallback supplied by the caller.
type RemoteError struct {
	Op      string
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Remote builds a RemoteError, substituting fallback when the server
// provided no message.
func Remote(op, message, fallback string, err error) *RemoteError {
	if message == "" {
		message = fallback
	}
	return &RemoteError{Op: op, Message: message, Err: err}
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// MessageOrDefault returns err.Error() or a fallback message if err is nil.
func MessageOrDefault(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}

// UserMessage extracts the text a screen should surface for err:
// the RemoteError message when present, the validation reason for a
// ValidationError, otherwise fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	var invalid *ValidationError
	if errors.As(err, &invalid) {
		return invalid.Error()
	}
	if errors.Is(err, ErrAuthExpired) {
		return ErrAuthExpired.Error()
	}
	return fallback
}
