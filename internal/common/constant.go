// Package common contains shared constants and helpers used across the
// challenge client packages.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in the Authorization header value.
const BearerPrefix = "Bearer "

// RequestIDHeaderName is attached to every outbound request for log correlation.
const RequestIDHeaderName = "X-Request-ID"

// SessionStorageKey is the fixed key the persisted session record lives under.
const SessionStorageKey = "user-storage"

// SessionRecordVersion is written into every persisted session record.
const SessionRecordVersion = 0
