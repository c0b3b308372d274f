// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrEmptyKey = errors.New("key cannot be empty")

	// Input validation errors raised before any request is sent.
	ErrEmptyCredentials = errors.New("identity and password are required")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
