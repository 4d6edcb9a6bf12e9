package authclient

import (
	"encoding/json"
	"fmt"
)

// OpaqueID is a backend identifier. The backend emits both numeric and string
// ids depending on the endpoint, so decoding accepts either and keeps the
// textual form.
type OpaqueID string

func (id OpaqueID) String() string {
	return string(id)
}

func (id *OpaqueID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		*id = OpaqueID(v)
	case float64:
		*id = OpaqueID(json.Number(fmt.Sprintf("%.0f", v)))
	case json.Number:
		*id = OpaqueID(v.String())
	default:
		return fmt.Errorf("unsupported id type %T", raw)
	}

	return nil
}

// Identity is the authenticated principal held client-side after a login or
// hydration. The SessionStore owns the canonical instance; everything it
// hands out is a copy, so readers can treat it as immutable.
type Identity struct {
	ID         OpaqueID `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	FullName   string   `json:"fullName,omitempty"`
	Role       UserRole `json:"role"`
	IsActive   bool     `json:"isActive"`
	IsVerified bool     `json:"isVerified"`
}

// IsSellerPendingVerification reports the one state that routes to the
// holding page instead of a dashboard.
func (i *Identity) IsSellerPendingVerification() bool {
	return i != nil && i.Role.Is(RoleSeller) && !i.IsVerified
}

func (i *Identity) clone() *Identity {
	if i == nil {
		return nil
	}
	copied := *i
	return &copied
}
