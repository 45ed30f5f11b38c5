package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors
// derived through WithDetails still match their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Configuration errors are fatal at construction time and never retried.
	ErrConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_ERROR",
		"required external service is not configured",
		"",
	)

	// Credential-related errors
	ErrNoCredential = NewBaseError(
		http.StatusPreconditionFailed,
		"NO_CREDENTIAL",
		"no active cloud storage connection",
		"",
	)

	ErrTokenRefreshFailed = NewBaseError(
		http.StatusBadGateway,
		"TOKEN_REFRESH_FAILED",
		"failed to refresh cloud storage access token",
		"",
	)

	ErrOAuthCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_CODE_INVALID",
		"invalid authorization code",
		"",
	)

	// Validation-related errors
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"input validation failed",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"file type is not a supported image or video",
		"",
	)

	// Project-related errors
	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"project not found",
		"",
	)

	ErrProjectForbidden = NewBaseError(
		http.StatusForbidden,
		"PROJECT_FORBIDDEN",
		"you do not have access to this project",
		"",
	)

	ErrAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_FOUND",
		"asset not found",
		"",
	)

	// Template-related errors
	ErrTemplateNotFound = NewBaseError(
		http.StatusNotFound,
		"TEMPLATE_NOT_FOUND",
		"prompt template not found",
		"",
	)

	ErrTemplateForbidden = NewBaseError(
		http.StatusForbidden,
		"TEMPLATE_FORBIDDEN",
		"only the template owner can modify it",
		"",
	)

	ErrDefaultTemplateImmutable = NewBaseError(
		http.StatusForbidden,
		"DEFAULT_TEMPLATE_IMMUTABLE",
		"default templates cannot be modified or deleted",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// UpstreamError is a non-success response from an external provider.
type UpstreamError struct {
	Provider   string // e.g. dropbox, gemini, speech, scraper
	Stage      string // Operation that failed, e.g. list_folder
	StatusCode int    // Zero when the failure happened before a response arrived.
	Body       string // Truncated response body.
	Err        error
}

// NewUpstreamError creates an UpstreamError; body is truncated to 512 bytes.
func NewUpstreamError(provider, stage string, statusCode int, body string, err error) *UpstreamError {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody]
	}

	return &UpstreamError{
		Provider:   provider,
		Stage:      stage,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Provider, e.Stage)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s with status %d", msg, e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the transport error, if any.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.Provider + " request failed"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.Error()
}
