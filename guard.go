package authclient

// GuardState is the outcome of an authorization check.
type GuardState string

const (
	// GuardPending means the session is still settling; render a loading
	// state and make no redirect decision yet.
	GuardPending GuardState = "pending"
	// GuardAuthorized means the identity may view the route.
	GuardAuthorized GuardState = "authorized"
	// GuardRedirect means the caller must navigate to Decision.Redirect.
	GuardRedirect GuardState = "redirect"
)

// Decision is a guard verdict. Identity is populated only when authorized;
// Redirect only when redirecting. Once settled a decision is terminal: there
// is no way back to pending short of a fresh hydration cycle.
type Decision struct {
	State    GuardState
	Identity *Identity
	Redirect *Redirect
}

func (d Decision) Authorized() bool {
	return d.State == GuardAuthorized
}

func (d Decision) Pending() bool {
	return d.State == GuardPending
}

// RouteGuard enforces role-based access per protected page. It only reads
// session state and computes targets; the embedding UI performs the actual
// navigation.
type RouteGuard struct {
	store  *SessionStore
	routes *Routes
}

func NewRouteGuard(store *SessionStore, routes *Routes) *RouteGuard {
	if routes == nil {
		routes = DefaultRoutes()
	}
	return &RouteGuard{store: store, routes: routes}
}

// Authorize evaluates the route at path against the required role set. An
// empty role set admits any authenticated identity. Unauthenticated visitors
// go to login, tagged with the requested path and, when the transport
// detected expiry rather than a plain cold visit, the expired flag. A wrong
// role redirects to that identity's own home.
func (g *RouteGuard) Authorize(path string, required ...UserRole) Decision {
	state := g.store.Snapshot()

	if state.Settling {
		return Decision{State: GuardPending}
	}

	if state.Identity == nil {
		return Decision{State: GuardRedirect, Redirect: &Redirect{
			Path:     g.routes.Login,
			Expired:  state.Expired,
			ReturnTo: path,
		}}
	}

	if len(required) > 0 && !state.Identity.Role.In(required...) {
		home := g.routes.homeFor(state.Identity)
		return Decision{State: GuardRedirect, Redirect: &home}
	}

	// Role matches, but an unverified seller is only ever admitted to the
	// holding page.
	if len(required) > 0 && state.Identity.IsSellerPendingVerification() {
		if path != g.routes.VerificationPending {
			pending := Redirect{Path: g.routes.VerificationPending}
			return Decision{State: GuardRedirect, Redirect: &pending}
		}
	}

	return Decision{State: GuardAuthorized, Identity: state.Identity}
}

// AuthorizeAdmin guards admin-only pages.
func (g *RouteGuard) AuthorizeAdmin(path string) Decision {
	return g.Authorize(path, RoleAdmin)
}

// AuthorizeSeller guards seller pages.
func (g *RouteGuard) AuthorizeSeller(path string) Decision {
	return g.Authorize(path, RoleSeller)
}

// AuthorizeCustomer guards customer pages.
func (g *RouteGuard) AuthorizeCustomer(path string) Decision {
	return g.Authorize(path, RoleCustomer)
}
