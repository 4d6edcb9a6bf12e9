package authclient

import (
	"sync"
	"time"
)

type testConfig struct {
	baseURL string
	timeout time.Duration
	debug   bool
}

func (c testConfig) GetBaseURL() string {
	return c.baseURL
}

func (c testConfig) GetRequestTimeout() time.Duration {
	if c.timeout == 0 {
		return 5 * time.Second
	}
	return c.timeout
}

func (c testConfig) GetDebug() bool {
	return c.debug
}

type recordingNavigator struct {
	mu      sync.Mutex
	targets []Redirect
}

func (n *recordingNavigator) Navigate(target Redirect) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
}

func (n *recordingNavigator) Targets() []Redirect {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Redirect, len(n.targets))
	copy(out, n.targets)
	return out
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func testIdentity(role UserRole, verified bool) *Identity {
	return &Identity{
		ID:         "42",
		Username:   "malena",
		Email:      "malena@example.com",
		FullName:   "Malena Ortiz",
		Role:       role,
		IsActive:   true,
		IsVerified: verified,
	}
}
