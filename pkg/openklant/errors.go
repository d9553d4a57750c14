package openklant

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrEmptyResponse   = errors.New("empty response body")
	ErrForeignURL      = errors.New("URL does not belong to the configured API")
)

const maxErrorBodyInMessage = 200

// TransportError reports that no HTTP response was obtained: DNS failures,
// refused connections, timeouts and cancelled contexts all end up here.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// InvalidParam is one entry of a problem document's invalidParams.
type InvalidParam struct {
	Name   string `json:"name"   yaml:"name"`
	Code   string `json:"code"   yaml:"code"`
	Reason string `json:"reason" yaml:"reason"`
}

// Problem is an RFC 7807 problem document as returned by Open Klant.
type Problem struct {
	Type          string         `json:"type,omitempty"          yaml:"type,omitempty"`
	Code          string         `json:"code,omitempty"          yaml:"code,omitempty"`
	Title         string         `json:"title,omitempty"         yaml:"title,omitempty"`
	Status        int            `json:"status,omitempty"        yaml:"status,omitempty"`
	Detail        string         `json:"detail,omitempty"        yaml:"detail,omitempty"`
	Instance      string         `json:"instance,omitempty"      yaml:"instance,omitempty"`
	InvalidParams []InvalidParam `json:"invalidParams,omitempty" yaml:"invalidParams,omitempty"`
}

// APIError reports a response with status 400 or higher. Body holds the raw
// response body; Problem is set when the body parsed as a problem document.
type APIError struct {
	StatusCode int
	Body       []byte
	Problem    *Problem
}

// NewAPIError builds an APIError from a status code and raw body.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}

	var problem Problem
	if err := json.Unmarshal(body, &problem); err == nil && (problem.Title != "" || problem.Detail != "" || len(problem.InvalidParams) > 0) {
		apiErr.Problem = &problem
	}

	return apiErr
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error: status %d %s", e.StatusCode, http.StatusText(e.StatusCode))

	switch {
	case e.Problem != nil && e.Problem.Detail != "":
		msg += ": " + e.Problem.Detail
	case e.Problem != nil && e.Problem.Title != "":
		msg += ": " + e.Problem.Title
	case len(e.Body) > 0:
		body := strings.TrimSpace(string(e.Body))
		if len(body) > maxErrorBodyInMessage {
			body = body[:maxErrorBodyInMessage] + "..."
		}

		msg += ": " + body
	}

	return msg
}

// FieldError describes one failed field check.
type FieldError struct {
	// Path is the dotted JSON path of the field, e.g. "partijIdentificatie.naam".
	Path    string `json:"path"            yaml:"path"`
	Tag     string `json:"tag"             yaml:"tag"`
	Param   string `json:"param,omitempty" yaml:"param,omitempty"`
	Message string `json:"message"         yaml:"message"`
}

// ValidationError reports that a value did not match its schema.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		if field.Path == "" {
			parts = append(parts, field.Message)

			continue
		}

		parts = append(parts, field.Path+": "+field.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the error for path, if any.
func (e *ValidationError) Field(path string) (FieldError, bool) {
	for _, field := range e.Fields {
		if field.Path == path {
			return field, true
		}
	}

	return FieldError{}, false
}

// Paths lists the paths of all failed fields.
func (e *ValidationError) Paths() []string {
	paths := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		paths = append(paths, field.Path)
	}

	return paths
}

// MultiError collects independent failures, e.g. from RetrieveMany or
// notification dispatch.
type MultiError struct {
	Errors []error
}

// Error implements the error interface.
func (e *MultiError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}

	return fmt.Sprintf("%d errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ErrorOrNil returns nil when nothing was collected.
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}

	return e
}

// StatusCode returns the HTTP status of an APIError in err's chain, or 0.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 from the API.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsValidation checks if the error is a client-side ValidationError.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsTransport checks if the error is a TransportError.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}
