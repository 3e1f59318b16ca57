package gitlab

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// GitLab-specific errors.
var (
	// ErrInvalidToken indicates the access token cannot be used as a credential.
	ErrInvalidToken = errors.New("gitlab: invalid access token")

	// ErrInvalidBaseURL indicates the configured GitLab URL is malformed.
	ErrInvalidBaseURL = errors.New("gitlab: invalid base URL")

	// ErrMaxRetriesExceeded indicates a search stayed rate limited after all retries.
	ErrMaxRetriesExceeded = errors.New("gitlab: max retries exceeded")
)

// APIError represents a non-success GitLab API response.
type APIError struct {
	// Operation is "list projects" or "search".
	Operation  string
	ProjectID  int64
	StatusCode int
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	status := fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		status += ": " + e.Message
	}
	if e.ProjectID != 0 {
		return fmt.Sprintf("gitlab: %s failed for project %d: %s", e.Operation, e.ProjectID, status)
	}
	return fmt.Sprintf("gitlab: %s failed: %s (URL: %s)", e.Operation, status, e.URL)
}

// ParseError represents a response body that is not the expected JSON.
type ParseError struct {
	Operation string
	BaseURL   string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"gitlab: failed to parse %s JSON: %v. Hint: check that the GitLab URL (%s) is correct and accessible; "+
			"an HTML login or 404 page usually means it is not",
		e.Operation, e.Err, e.BaseURL,
	)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsRateLimited checks if the error indicates retries were exhausted on 429s.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrMaxRetriesExceeded) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// wrapError adds the failed operation to a transport error.
func wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// errorMessage extracts GitLab's "message" or "error" field from a JSON body.
func errorMessage(body []byte) string {
	var payload struct {
		Message any    `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch m := payload.Message.(type) {
	case string:
		return strings.TrimSpace(m)
	case nil:
	default:
		if b, err := json.Marshal(m); err == nil {
			return string(b)
		}
	}
	return strings.TrimSpace(payload.Error)
}
