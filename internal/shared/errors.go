package shared

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s - %s", e.StatusCode, e.Status, e.Message)
}

// IsNotFound reports whether err carries a 404 from the provider
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

// ErrSearchFailed is the user-facing rejection of a track search.
var ErrSearchFailed = errors.New("search error")

// ErrProviderUnavailable is returned when every fallback strategy failed with an error.
var ErrProviderUnavailable = errors.New("metadata provider unavailable")

// ErrInvalidCredentials is returned when the login pair does not match the configured one.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidEmail is returned when the login email is malformed.
var ErrInvalidEmail = errors.New("invalid email address")

// ErrPasswordTooShort is returned when the password has fewer than six characters.
var ErrPasswordTooShort = errors.New("password must have at least 6 characters")

// ErrNotAuthenticated is returned when an operation needs a session user.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrPlaylistNotFound is returned for unknown playlist ids.
var ErrPlaylistNotFound = errors.New("playlist not found")

// ErrEmptyPlaylistName is returned when a playlist name is blank.
var ErrEmptyPlaylistName = errors.New("playlist name cannot be empty")
