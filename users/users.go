package users

import "strings"

// RoleType represents the role attribute the backend assigns to a user.
// Navigation gating only distinguishes admin from everyone else; the
// remaining roles exist for the admin console's role filter.
type RoleType string

const (
	RoleAdmin    RoleType = "admin"
	RoleCustomer RoleType = "customer"
	RoleSeller   RoleType = "seller"
	RoleSupport  RoleType = "support"
)

// AuthType is the channel a user registered with.
type AuthType string

const (
	AuthEmail  AuthType = "email"
	AuthMobile AuthType = "mobile"
)

type User struct {
	UID         string `json:"uid,omitempty"`          // Unique identifier assigned by the backend
	Email       string `json:"email,omitempty"`        // User's email address
	Name        string `json:"name,omitempty"`         // Display name, may be empty
	AuthType    string `json:"auth_type,omitempty"`    // Registration channel (email / mobile)
	RoleName    string `json:"role_name,omitempty"`    // Role attribute used for navigation gating
	PhoneNumber string `json:"phone_number,omitempty"` // Phone number without the country code
	CountryCode string `json:"country_code,omitempty"` // Dialling prefix, e.g. "+91"
	IsVerified  bool   `json:"is_verified,omitempty"`  // Whether the backend has verified the account
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && strings.EqualFold(u.RoleName, string(RoleAdmin))
}

// DisplayName returns the name if present, falling back to the email address.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
