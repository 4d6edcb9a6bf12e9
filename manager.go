package authclient

import (
	"context"
)

// SessionManager orchestrates the auth session lifecycle: login, logout,
// registration, and the startup hydration that decides whether an existing
// cookie still represents a valid identity. It is the only writer to the
// SessionStore.
type SessionManager struct {
	store     *SessionStore
	transport *Transport
	refresher Refresher
	navigator Navigator
	routes    *Routes
	endpoints *Endpoints
	logger    Logger
}

// Login posts the credential pair and installs the returned identity on
// success. Failures come back as a typed result, never an error: the message
// is normalized for display and NeedsVerification flags the seller-pending
// case so callers can route to the holding flow instead of a retry.
func (m *SessionManager) Login(ctx context.Context, identifier, password string) LoginResult {
	payload := LoginPayload{Identifier: identifier, Password: password}
	if err := payload.Validate(); err != nil {
		return LoginResult{Message: err.Error()}
	}

	m.store.setSettling(true)
	defer m.store.setSettling(false)

	var envelope identityEnvelope
	if err := m.transport.Post(ctx, m.endpoints.Login, payload, &envelope); err != nil {
		message := UserMessage(err)
		m.logger.Debug("login failed for %q: %s", identifier, message)
		return LoginResult{
			Message:           message,
			NeedsVerification: IsVerificationPendingMessage(message),
		}
	}

	if envelope.User == nil {
		return LoginResult{Message: "login failed: no user data returned"}
	}

	m.store.setIdentity(envelope.User)
	m.store.markInitialized()

	message := string(envelope.Message)
	if message == "" {
		message = "Login successful!"
	}

	return LoginResult{Success: true, Message: message}
}

// Logout posts to the logout endpoint best-effort, then unconditionally
// clears the identity and navigates to the login entry. The generation bump
// inside the clear makes this authoritative over any refresh still in flight.
func (m *SessionManager) Logout(ctx context.Context) {
	m.store.setSettling(true)
	defer m.store.setSettling(false)

	if err := m.transport.Post(ctx, m.endpoints.Logout, nil, nil); err != nil {
		m.logger.Warn("logout request failed: %s", UserMessage(err))
	}

	m.store.clearIdentity(false)
	m.navigator.Navigate(Redirect{Path: m.routes.Login})
}

// Register posts the registration payload to the role-dependent endpoint.
// Sellers go through their own registration path. Registration never
// authenticates; a follow-up Login is required.
func (m *SessionManager) Register(ctx context.Context, payload RegisterPayload) RegisterResult {
	payload.Role = NormalizeRole(string(payload.Role))
	if payload.Role == "" {
		payload.Role = RoleCustomer
	}

	if err := payload.Validate(); err != nil {
		return RegisterResult{Message: err.Error()}
	}

	endpoint := m.endpoints.Register
	if payload.Role.Is(RoleSeller) {
		endpoint = m.endpoints.RegisterSeller
	}

	var envelope messageEnvelope
	if err := m.transport.Post(ctx, endpoint, payload, &envelope); err != nil {
		return RegisterResult{Message: UserMessage(err)}
	}

	message := string(envelope.Message)
	if message == "" {
		message = "Registration successful! Please log in."
	}

	return RegisterResult{Success: true, Message: message}
}

// Hydrate runs once at startup. It fetches the profile with whatever cookie
// the browser (or jar) carries; on 401 it attempts exactly one coordinated
// refresh and one profile retry. Whatever happens, the store ends settled and
// initialized, and a cold logged-out start is silent: no error, no redirect.
func (m *SessionManager) Hydrate(ctx context.Context) {
	m.store.setSettling(true)
	defer func() {
		m.store.markInitialized()
		m.store.setSettling(false)
	}()

	gen := m.store.generation()

	identity, err := m.fetchProfile(ctx)
	if err == nil && identity != nil {
		m.installHydrated(identity, gen)
		return
	}

	if !IsUnauthorizedError(err) {
		return
	}

	if !m.refresher.Refresh(ctx) {
		m.logger.Debug("hydration refresh failed, settling unauthenticated")
		return
	}

	if identity, err := m.fetchProfile(ctx); err == nil && identity != nil {
		m.installHydrated(identity, gen)
	}
}

// RedirectTarget derives where the current identity belongs: login when
// absent, the verification holding page for unverified sellers, else the
// role's dashboard.
func (m *SessionManager) RedirectTarget() Redirect {
	state := m.store.Snapshot()
	return m.routes.homeFor(state.Identity)
}

// CheckVerificationStatus asks whether a seller account is still pending
// verification. Lookup failures collapse into a calm non-answer.
func (m *SessionManager) CheckVerificationStatus(ctx context.Context, email string) VerificationStatus {
	var status VerificationStatus
	err := m.transport.Post(ctx, m.endpoints.CheckVerification, map[string]string{"email": email}, &status)
	if err != nil {
		m.logger.Debug("verification status check failed: %s", UserMessage(err))
		return VerificationStatus{Message: "unable to check verification status"}
	}
	return status
}

// Store exposes read access to session state for guards and UI.
func (m *SessionManager) Store() *SessionStore {
	return m.store
}

func (m *SessionManager) installHydrated(identity *Identity, gen uint64) {
	if !m.store.setIdentityIfGeneration(identity, gen) {
		m.logger.Debug("hydration result discarded, session cleared meanwhile")
	}
}

func (m *SessionManager) fetchProfile(ctx context.Context) (*Identity, error) {
	var envelope identityEnvelope
	if err := m.transport.Get(ctx, m.endpoints.Profile, &envelope); err != nil {
		return nil, err
	}
	return envelope.User, nil
}
