package authclient

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginPayload carries the credential pair. Identifier accepts either the
// username or the email handle.
type LoginPayload struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// GetIdentifier returns the identifier
func (p LoginPayload) GetIdentifier() string {
	return p.Identifier
}

// GetPassword will return the password
func (p LoginPayload) GetPassword() string {
	return p.Password
}

// Validate will run validation rules
func (p LoginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(
			&p.Identifier,
			validation.Required,
			validation.Length(3, 100),
		),
		validation.Field(
			&p.Password,
			validation.Required,
		),
	)
}

// RegisterPayload is the registration form payload. Role decides which
// backend endpoint receives it.
type RegisterPayload struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName string   `json:"fullName,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Role     UserRole `json:"role"`
}

// Validate will validate the payload
func (p RegisterPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&p.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&p.FullName, validation.Length(1, 200)),
		validation.Field(&p.Phone, validation.Length(10, 11), is.Digit),
		validation.Field(&p.Role, validation.Required, validation.In(RoleCustomer, RoleSeller, RoleAdmin)),
	)
}
