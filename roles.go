package authclient

import (
	"encoding/json"
	"strings"
)

// UserRole is the user's role
type UserRole string

const (
	// RoleCustomer is a regular shopper account
	RoleCustomer UserRole = "customer"
	// RoleSeller is a merchant account (dashboard gated on verification)
	RoleSeller UserRole = "seller"
	// RoleAdmin is a back-office administrator account
	RoleAdmin UserRole = "admin"
)

// NormalizeRole maps a wire role to its canonical lowercase form. Role
// comparisons throughout the package are case-insensitive.
func NormalizeRole(role string) UserRole {
	return UserRole(strings.ToLower(strings.TrimSpace(role)))
}

// IsValid checks if the role is one of the predefined valid roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// Is compares two roles ignoring case
func (r UserRole) Is(other UserRole) bool {
	return strings.EqualFold(string(r), string(other))
}

// In reports whether the role belongs to the given set, ignoring case
func (r UserRole) In(roles ...UserRole) bool {
	for _, candidate := range roles {
		if r.Is(candidate) {
			return true
		}
	}
	return false
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = NormalizeRole(raw)
	return nil
}
