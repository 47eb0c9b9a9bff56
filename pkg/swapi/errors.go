package swapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-success HTTP response from the catalog.
type APIError struct {
	Status     int    `json:"status"           yaml:"status"`
	StatusText string `json:"status_text"      yaml:"status_text"`
	Path       string `json:"path,omitempty"   yaml:"path,omitempty"`
	Detail     string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// NewAPIError builds an APIError from a status code and the raw status line.
// The status line may be in "404 Not Found" form or empty.
func NewAPIError(status int, statusLine, path string) *APIError {
	text := strings.TrimSpace(strings.TrimPrefix(statusLine, fmt.Sprintf("%d", status)))
	if text == "" {
		text = http.StatusText(status)
	}

	return &APIError{Status: status, StatusText: text, Path: path}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.Status, e.StatusText)
}

// errorBody is the error document the catalog returns, e.g. {"detail":"Not found"}.
type errorBody struct {
	Detail string `json:"detail"`
}

// ParseErrorDetail extracts the detail message from an error response body.
// It returns "" when the body is not an error document.
func ParseErrorDetail(data []byte) string {
	var body errorBody

	err := json.Unmarshal(data, &body)
	if err != nil {
		return ""
	}

	return body.Detail
}

// Issue is a single shape mismatch found while validating a payload.
type Issue struct {
	Path    string `json:"path"    yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// String renders the issue as "path: message".
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}

	return i.Path + ": " + i.Message
}

// ValidationError reports a payload that does not match the entity shape.
type ValidationError struct {
	Entity string  `json:"entity" yaml:"entity"`
	Issues []Issue `json:"issues" yaml:"issues"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return fmt.Sprintf("invalid %s payload", e.Entity)
	}

	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}

	return fmt.Sprintf("invalid %s payload: %s", e.Entity, strings.Join(parts, "; "))
}

// IsNotFound checks if an error is a 404 response.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsStatus checks if an error is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	return false
}

// IsValidationError checks if an error is a shape validation failure.
func IsValidationError(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// Common static errors that can be wrapped with context.
var (
	ErrIDRequired          = errors.New("id is required")
	ErrNilGetter           = errors.New("getter must not be nil")
	ErrNilSearcher         = errors.New("searcher must not be nil")
	ErrInvalidResolveLimit = errors.New("resolve limit must not be negative")
	ErrInvalidConcurrency  = errors.New("resolve concurrency must not be negative")
	ErrUnresolvableLocator = errors.New("locator has no extractable id")
	ErrUnknownEntityType   = errors.New("unknown entity type")
	ErrInvalidLocator      = errors.New("invalid locator")
	ErrEmptyResponse       = errors.New("empty response body")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrInvalidPage         = errors.New("page must be a positive integer")
	ErrConfigRequired      = errors.New("config is required")
	ErrNoMoreItems         = errors.New("no more items")
)
