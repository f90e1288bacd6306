package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey = New("API key is required")
	ErrInvalidConfig = New("invalid configuration")

	// Storage errors
	ErrStorageUnavailable = New("storage backend unavailable")

	// Export errors
	ErrEmptyStore = New("no translations to export")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// StorageError reports a persistence backend failure for one store operation.
// It is never retried inside the store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err as a StorageError for op; nil stays nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// NotFoundError reports an operation that targeted an absent record.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("translation not found: %d", e.ID)
}

// DecodeError reports malformed base64 or binary input.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode failed: %s: %v", e.Reason, e.Err)
	}
	return "decode failed: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EmptyStoreError is returned when an export is attempted with zero records.
type EmptyStoreError struct{}

func (e *EmptyStoreError) Error() string { return ErrEmptyStore.Error() }

func (e *EmptyStoreError) Is(target error) bool { return target == ErrEmptyStore }

// TranscriptionError reports a failed call to a transcription backend.
type TranscriptionError struct {
	Provider string
	Err      error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed (%s): %v", e.Provider, e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// NewTranscriptionError wraps err for provider; nil stays nil.
func NewTranscriptionError(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &TranscriptionError{Provider: provider, Err: err}
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return stderrors.As(err, &nf)
}

// IsEmptyStore reports whether err is, or wraps, an EmptyStoreError.
func IsEmptyStore(err error) bool {
	var es *EmptyStoreError
	return stderrors.As(err, &es)
}

// IsStorage reports whether err is, or wraps, a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return stderrors.As(err, &se)
}

// IsDecode reports whether err is, or wraps, a DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return stderrors.As(err, &de)
}

// IsTranscription reports whether err is, or wraps, a TranscriptionError.
func IsTranscription(err error) bool {
	var te *TranscriptionError
	return stderrors.As(err, &te)
}

// UserMessage builds the message shown to a person after a failed action,
// e.g. UserMessage("Translation failed", err) -> "Translation failed: <reason>".
func UserMessage(action string, err error) string {
	if err == nil {
		return action
	}
	var te *TranscriptionError
	if stderrors.As(err, &te) && te.Err != nil {
		return action + ": " + te.Err.Error()
	}
	return action + ": " + err.Error()
}

// Helper functions for common patterns

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf("%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Newf("%s is invalid: %s", field, reason)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "is required") ||
		strings.Contains(msg, "is invalid")
}
