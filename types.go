package authclient

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Config holds client options
type Config interface {
	GetBaseURL() string
	GetRequestTimeout() time.Duration
	GetDebug() bool
}

// Navigator receives navigation side effects. The embedding UI owns routing;
// the client only says where to go.
type Navigator interface {
	Navigate(target Redirect)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(target Redirect)

func (f NavigatorFunc) Navigate(target Redirect) {
	f(target)
}

// Refresher exchanges an expiring session for a renewed one. It reports
// success only; transport failures are absorbed into false.
type Refresher interface {
	Refresh(ctx context.Context) bool
}

// LoginResult is the typed outcome of a login attempt. NeedsVerification is
// set when the backend rejected a seller account still pending verification.
type LoginResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	NeedsVerification bool   `json:"needs_verification,omitempty"`
}

// RegisterResult is the typed outcome of a registration attempt.
type RegisterResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerificationStatus reports whether a seller account is still pending
// manual verification.
type VerificationStatus struct {
	NeedsVerification bool   `json:"needsVerification"`
	Message           string `json:"message"`
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTHCLIENT "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTHCLIENT "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTHCLIENT "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTHCLIENT "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

type noopNavigator struct{}

func (noopNavigator) Navigate(Redirect) {}
