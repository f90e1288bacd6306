package errors

import (
	"fmt"
	"net/http"

	apperrors "voice-notes/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindNotFound           ErrorKind = "not_found"
	KindConflict           ErrorKind = "conflict"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindBadRequest         ErrorKind = "bad_request"
	KindBadGateway         ErrorKind = "bad_gateway"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Code      string            `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBadGateway:
		return http.StatusBadGateway
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *APIError {
	return &APIError{
		Kind:    KindConflict,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewServiceUnavailableError creates a service unavailable error
func NewServiceUnavailableError(message string) *APIError {
	return &APIError{
		Kind:    KindServiceUnavailable,
		Message: message,
	}
}

// FromDomain maps an error from the record store, codec, export or
// transcription layers onto an APIError. Unknown errors become internal.
func FromDomain(err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}

	switch {
	case apperrors.IsNotFound(err):
		return &APIError{Kind: KindNotFound, Message: err.Error()}
	case apperrors.IsEmptyStore(err):
		return &APIError{Kind: KindConflict, Message: "No translations to export!", Code: "empty_store"}
	case apperrors.IsDecode(err):
		return &APIError{Kind: KindValidation, Message: err.Error(), Code: "decode"}
	case apperrors.IsTranscription(err):
		return &APIError{Kind: KindBadGateway, Message: apperrors.UserMessage("Translation failed", err), Code: "transcription"}
	case apperrors.IsStorage(err):
		return &APIError{Kind: KindServiceUnavailable, Message: "Storage backend unavailable", Code: "storage"}
	case apperrors.IsValidationError(err):
		return &APIError{Kind: KindValidation, Message: err.Error()}
	default:
		return &APIError{Kind: KindInternal, Message: "Internal server error"}
	}
}
