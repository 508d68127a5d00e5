// Package common contains constants and byte helpers shared across the
// StudyPrep client components.
package common

// TokenKey is the secure-store key under which the session bearer token is
// persisted. It is the only key the session layer reads or writes.
const TokenKey = "token"

// AuthorizationHeaderName and RequestIDHeaderName are set on every outbound
// API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)
