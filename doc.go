// Package authclient maintains the client side of a cookie-based auth session
// against the storefront backend: who the current user is, how that answer is
// established on startup, and how it survives token expiry.
//
// Session lifecycle:
//   - SessionStore is the single owner of the current Identity plus the
//     settling/initialized flags. Consumers read immutable snapshots; only the
//     SessionManager (and the transport expiry path) mutate it.
//   - SessionManager orchestrates Login, Logout, Register and the startup
//     Hydrate sequence, and derives the role-based RedirectTarget.
//
// Expiry handling:
//   - Transport attaches cookie credentials to every call and, once the first
//     hydration has settled, transparently refreshes and retries a request
//     that came back 401 — at most once per request.
//   - RefreshCoordinator guarantees that any number of concurrent expired
//     requests produce exactly one refresh call; every caller observes that
//     single call's outcome.
//
// Authorization:
//   - RouteGuard evaluates a required role set against the current session and
//     yields pending/authorized/redirect decisions; the embedding UI owns the
//     actual navigation via the Navigator it supplies.
package authclient
