package authclient

import (
	"context"
)

// Client is the single composition point for the session core. It wires the
// store, transport, refresh coordinator, manager, and guard together so
// consumers never reach for ambient singletons.
type Client struct {
	store       *SessionStore
	transport   *Transport
	coordinator *RefreshCoordinator
	manager     *SessionManager
	guard       *RouteGuard
	navigator   Navigator
	routes      *Routes
	endpoints   *Endpoints
	logger      Logger
}

// Option customizes client construction.
type Option func(*Client)

// WithLogger overrides the default logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNavigator installs the navigation side-effect receiver. Without one,
// redirect signals are computed but go nowhere.
func WithNavigator(navigator Navigator) Option {
	return func(c *Client) {
		if navigator != nil {
			c.navigator = navigator
		}
	}
}

// WithRoutes overrides the storefront route table.
func WithRoutes(routes *Routes) Option {
	return func(c *Client) {
		if routes != nil {
			c.routes = routes
		}
	}
}

// WithEndpoints overrides the backend endpoint table.
func WithEndpoints(endpoints *Endpoints) Option {
	return func(c *Client) {
		if endpoints != nil {
			c.endpoints = endpoints
		}
	}
}

// New builds a fully wired client. Call Hydrate once at startup before
// evaluating any guard.
func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		store:     NewSessionStore(),
		navigator: noopNavigator{},
		routes:    DefaultRoutes(),
		endpoints: DefaultEndpoints(),
		logger:    defLogger{},
	}

	for _, opt := range opts {
		opt(c)
	}

	transport, err := NewTransport(cfg, c.store)
	if err != nil {
		return nil, err
	}
	transport.navigator = c.navigator
	transport.routes = c.routes
	transport.logger = c.logger
	c.transport = transport

	c.coordinator = NewRefreshCoordinator(transport.refreshCall(c.endpoints.Refresh), c.logger)
	transport.refresher = c.coordinator

	c.manager = &SessionManager{
		store:     c.store,
		transport: transport,
		refresher: c.coordinator,
		navigator: c.navigator,
		routes:    c.routes,
		endpoints: c.endpoints,
		logger:    c.logger,
	}

	c.guard = NewRouteGuard(c.store, c.routes)

	return c, nil
}

// Session returns the session manager.
func (c *Client) Session() *SessionManager {
	return c.manager
}

// Guard returns the route authorization guard.
func (c *Client) Guard() *RouteGuard {
	return c.guard
}

// Transport returns the credential transport for non-auth backend calls.
func (c *Client) Transport() *Transport {
	return c.transport
}

// State returns the current session snapshot.
func (c *Client) State() SessionState {
	return c.store.Snapshot()
}

// Hydrate establishes the initial session from existing cookie credentials.
func (c *Client) Hydrate(ctx context.Context) {
	c.manager.Hydrate(ctx)
}

// Teardown drops all session state and credentials: store back to the
// pre-hydration state, cookie jar emptied. Used on full sign-out.
func (c *Client) Teardown() error {
	c.store.reset()
	return c.transport.resetJar()
}
