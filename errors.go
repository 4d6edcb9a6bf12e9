package authclient

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	textCodeUnauthorized      = "UNAUTHORIZED"
	textCodeSessionExpired    = "SESSION_EXPIRED"
	textCodeMalformedResponse = "MALFORMED_RESPONSE"
	textCodeUnreachable       = "BACKEND_UNREACHABLE"
)

// ErrSessionExpired is returned when a 401 survived the single refresh-and-retry.
var ErrSessionExpired = errors.New("session expired", errors.CategoryAuth).
	WithTextCode(textCodeSessionExpired).
	WithCode(errors.CodeUnauthorized)

// ErrMalformedResponse is returned when the backend body does not match the
// endpoint's expected shape.
var ErrMalformedResponse = errors.New("malformed backend response", errors.CategoryBadInput).
	WithTextCode(textCodeMalformedResponse)

// ErrBackendUnreachable covers network failures and timeouts. These never
// trigger the refresh path.
var ErrBackendUnreachable = errors.New("backend unreachable", errors.CategoryOperation).
	WithTextCode(textCodeUnreachable)

// apiStatusError maps a non-2xx backend response to the error taxonomy,
// carrying the normalized user-facing message.
func apiStatusError(status int, message string) *errors.Error {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	switch {
	case status == 401:
		return errors.New(message, errors.CategoryAuth).
			WithTextCode(textCodeUnauthorized).
			WithCode(errors.CodeUnauthorized)
	case status == 403:
		return errors.New(message, errors.CategoryAuthz).
			WithCode(errors.CodeForbidden)
	case status == 404:
		return errors.New(message, errors.CategoryNotFound)
	case status >= 500:
		return errors.New(message, errors.CategoryInternal).
			WithCode(errors.CodeInternal)
	default:
		return errors.New(message, errors.CategoryValidation).
			WithCode(errors.CodeBadRequest)
	}
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr.TextCode == code
	}
	return false
}

// IsUnauthorizedError will check for raw 401 responses
func IsUnauthorizedError(err error) bool {
	return hasTextCode(err, textCodeUnauthorized)
}

// IsSessionExpiredError will check for the post-refresh-failure 401
func IsSessionExpiredError(err error) bool {
	return hasTextCode(err, textCodeSessionExpired)
}

// IsMalformedResponseError will check for unparseable backend bodies
func IsMalformedResponseError(err error) bool {
	return hasTextCode(err, textCodeMalformedResponse)
}

// IsNetworkError will check for network failures and timeouts
func IsNetworkError(err error) bool {
	return hasTextCode(err, textCodeUnreachable)
}

// IsVerificationPendingMessage matches the backend's free-text signal for a
// seller account awaiting manual verification. The backend has no structured
// code for this case, so we reproduce its substring contract.
func IsVerificationPendingMessage(message string) bool {
	if message == "" {
		return false
	}
	lowered := strings.ToLower(message)
	return strings.Contains(lowered, "pending verification") ||
		strings.Contains(lowered, "not verified")
}

// UserMessage extracts the display message from an error produced by this
// package, falling back to Error() for anything else.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) && richErr.Message != "" {
		return richErr.Message
	}
	return err.Error()
}
