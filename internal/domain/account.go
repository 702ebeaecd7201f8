package domain

import "time"

type Role string

const (
	RoleUser     Role = "USER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// Account is an authenticated identity. Role is immutable after creation;
// IsActive = false revokes all booking, payment and review privileges.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the resolved "who is asking" of a request: the account id and
// role carried by a verified access token.
type Principal struct {
	AccountID string
	Role      Role
}
