package authclient

import (
	"sync"

	"github.com/goliatone/go-print"
)

// SessionState is a point-in-time view of the session. Identity is a copy;
// mutating it has no effect on the store.
type SessionState struct {
	Identity    *Identity
	Settling    bool
	Initialized bool
	Expired     bool
}

// Authenticated reports whether an identity is present.
func (s SessionState) Authenticated() bool {
	return s.Identity != nil
}

func (s SessionState) String() string {
	return print.MaybePrettyJSON(map[string]any{
		"identity":    s.Identity,
		"settling":    s.Settling,
		"initialized": s.Initialized,
		"expired":     s.Expired,
	})
}

// SessionStore is the single process-wide owner of the authenticated
// identity. Only the SessionManager (and the transport's expiry path) mutate
// it; everything else reads snapshots.
//
// The generation counter makes explicit sign-outs authoritative: it is bumped
// on every clear, and async flows that captured an older generation abort
// their write-back instead of resurrecting a cleared identity.
type SessionStore struct {
	mu          sync.RWMutex
	identity    *Identity
	settling    bool
	initialized bool
	expired     bool
	gen         uint64
}

// NewSessionStore returns a store in the pre-hydration state: settling, not
// initialized, no identity.
func NewSessionStore() *SessionStore {
	return &SessionStore{settling: true}
}

// Snapshot returns the current session state.
func (s *SessionStore) Snapshot() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionState{
		Identity:    s.identity.clone(),
		Settling:    s.settling,
		Initialized: s.initialized,
		Expired:     s.expired,
	}
}

func (s *SessionStore) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// setIdentity installs a fresh identity and consumes any expired latch.
func (s *SessionStore) setIdentity(identity *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity.clone()
	s.expired = false
}

// setIdentityIfGeneration installs the identity only if no clear happened
// since gen was captured. Reports whether the write took effect.
func (s *SessionStore) setIdentityIfGeneration(identity *Identity, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.identity = identity.clone()
	s.expired = false
	return true
}

// clearIdentity removes the identity, bumps the generation, and latches the
// expired flag when the clear came from session expiry. Reports whether an
// identity was actually present, so expiry side effects fire once per chain.
func (s *SessionStore) clearIdentity(expired bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.identity != nil
	s.identity = nil
	s.gen++
	if expired {
		s.expired = true
	}
	return had
}

func (s *SessionStore) setSettling(settling bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settling = settling
}

// markInitialized records that the first hydration attempt completed. The
// transport's 401 interceptor stays inert until this point.
func (s *SessionStore) markInitialized() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = true
}

// reset returns the store to its pre-hydration state. Used by Teardown.
func (s *SessionStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.settling = true
	s.initialized = false
	s.expired = false
	s.gen++
}
