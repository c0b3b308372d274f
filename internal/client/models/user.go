package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Role is the user's authorization role as reported by the backend.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the identity record the session holds. Optional fields are
// pointers so a profile patch can tell "absent" from "zero".
type User struct {
	ID           ID        `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	Level        *int      `json:"level,omitempty"`
	Experience   *int      `json:"experience,omitempty"`
	Firstname    *string   `json:"firstname,omitempty"`
	Lastname     *string   `json:"lastname,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	IsBanned     *bool     `json:"isBanned,omitempty"`
	BanReason    *string   `json:"banReason,omitempty"`
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Merge overlays the fields present in patch (a JSON user object) onto a
// copy of u. Fields the patch omits keep their current values; u itself is
// not modified. A nil u merges into an empty user.
func (u *User) Merge(patch json.RawMessage) (*User, error) {
	base := map[string]json.RawMessage{}
	if u != nil {
		raw, err := json.Marshal(u)
		if err != nil {
			return nil, fmt.Errorf("encode user: %w", err)
		}
		if err := json.Unmarshal(raw, &base); err != nil {
			return nil, fmt.Errorf("decode user fields: %w", err)
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		return nil, fmt.Errorf("decode user patch: %w", err)
	}
	for k, v := range fields {
		base[k] = v
	}

	raw, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("encode merged user: %w", err)
	}
	merged := &User{}
	if err := json.Unmarshal(raw, merged); err != nil {
		return nil, fmt.Errorf("decode merged user: %w", err)
	}
	return merged, nil
}

// Registration is the sign-up payload. ConfirmPassword is checked by the
// form layer and never sent.
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Firstname       string `json:"firstname,omitempty"`
	Lastname        string `json:"lastname,omitempty"`
}

// Credentials is the login payload; Identity is an email or a username.
type Credentials struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

// AuthResult is returned by login and register.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// ProfileUpdate carries the mutable profile fields. Empty strings are not sent.
type ProfileUpdate struct {
	Firstname string
	Lastname  string
}

// PasswordChange is the update-password payload.
type PasswordChange struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
