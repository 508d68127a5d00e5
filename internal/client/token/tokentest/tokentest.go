// Package tokentest mints API-shaped tokens for tests.
package tokentest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var signingKey = []byte("tokentest-signing-key")

// Claims returns a complete, valid payload expiring in one hour.
// Tests override or delete keys to build broken tokens.
func Claims() jwt.MapClaims {
	return jwt.MapClaims{
		"userId":               42,
		"firstName":            "Anna",
		"lastName":             "Smith",
		"email":                "anna@example.com",
		"birthDate":            nil,
		"enrollmentNumber":     nil,
		"picture":              nil,
		"subscription":         "FREE",
		"userType":             "STUDENT",
		"profileInfoCompleted": "false",
		"exp":                  time.Now().Add(time.Hour).Unix(),
	}
}

// Mint signs claims with a test key.
func Mint(t testing.TB, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		t.Fatalf("tokentest: sign: %v", err)
	}
	return s
}

// Valid mints a token from Claims().
func Valid(t testing.TB) string {
	t.Helper()
	return Mint(t, Claims())
}
