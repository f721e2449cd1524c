package models

import "time"

// User represents an account record stored in the "users" collection, keyed
// by the id the identity service assigned at registration.
type User struct {
	// ID is the identity-service-assigned user identifier, reused as the
	// document key in the users collection.
	ID string `json:"id,omitempty"`

	// Name and Email are profile fields, immutable after registration.
	Name  string `json:"name"`
	Email string `json:"email"`

	// Password is the primary credential, kept in the profile record the way
	// the upstream data model stored its redundant copy. With a single store
	// both roles collapse into this field: written at registration, read back
	// at login.
	Password string `json:"password,omitempty"`

	// SecurityPassword is an optional plaintext secondary gate applied
	// account-wide at login time. Blank means no gate.
	SecurityPassword string `json:"securityPassword,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing the users
// collection.
func (u User) TableName() string {
	return "users"
}

// HasSecurityGate reports whether the account requires the secondary
// security-password gate after primary authentication.
func (u User) HasSecurityGate() bool {
	return u.SecurityPassword != ""
}
