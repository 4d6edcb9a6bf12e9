package authclient

import (
	"context"
	"sync"
)

var _ Refresher = &RefreshCoordinator{}

// RefreshCoordinator serializes token refresh so that any number of callers
// deciding "I got a 401, I should refresh" inside the same window produce
// exactly one network call. Callers that arrive while one is outstanding are
// queued and resolved with that call's outcome, in arrival order.
type RefreshCoordinator struct {
	mu       sync.Mutex
	inFlight bool
	waiters  []chan bool
	call     func(ctx context.Context) error
	logger   Logger
}

// NewRefreshCoordinator wraps the raw refresh call. The call must reach the
// backend's refresh endpoint without passing through the 401 interceptor.
func NewRefreshCoordinator(call func(ctx context.Context) error, logger Logger) *RefreshCoordinator {
	if logger == nil {
		logger = defLogger{}
	}
	return &RefreshCoordinator{call: call, logger: logger}
}

// Refresh reports whether the session was renewed. Transport failures are
// absorbed into false; waiters never see an error.
func (c *RefreshCoordinator) Refresh(ctx context.Context) bool {
	c.mu.Lock()
	if c.inFlight {
		wait := make(chan bool, 1)
		c.waiters = append(c.waiters, wait)
		c.mu.Unlock()

		select {
		case renewed := <-wait:
			return renewed
		case <-ctx.Done():
			return false
		}
	}
	c.inFlight = true
	c.mu.Unlock()

	err := c.call(ctx)
	renewed := err == nil
	if err != nil {
		c.logger.Debug("session refresh failed: %v", err)
	}

	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.inFlight = false
	c.mu.Unlock()

	for _, wait := range waiters {
		wait <- renewed
	}

	return renewed
}
