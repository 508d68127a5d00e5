// Package token decodes the bearer token issued by the StudyPrep API.
//
// The client never holds the signing key, so the signature is not checked
// here; the server is the authority on validity. What Decode does guarantee
// is that the payload matches the expected schema: a caller either gets a
// fully typed Credential or an error wrapping ErrDecode, never a partial one.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studyprep/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

var ErrDecode = errors.New("token: malformed payload")

// Claims is the token payload as issued by the API.
type Claims struct {
	jwt.RegisteredClaims
	UserID               int64                    `json:"userId"`
	FirstName            string                   `json:"firstName"`
	LastName             string                   `json:"lastName"`
	Email                string                   `json:"email"`
	BirthDate            *string                  `json:"birthDate"`
	EnrollmentNumber     *string                  `json:"enrollmentNumber"`
	Picture              *string                  `json:"picture"`
	Subscription         models.Subscription      `json:"subscription"`
	UserType             string                   `json:"userType"`
	ProfileInfoCompleted models.ProfileCompletion `json:"profileInfoCompleted"`
}

// Credential is a raw token together with its decoded, validated payload.
type Credential struct {
	Token     string
	User      models.User
	ExpiresAt time.Time
}

// Expired reports whether the credential's expiry is at or before now.
func (c *Credential) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Decode parses raw without verifying its signature and validates the claims.
func Decode(raw string) (*Credential, error) {
	claims := &Claims{}

	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := claims.validate(); err != nil {
		return nil, err
	}

	return &Credential{
		Token:     raw,
		ExpiresAt: claims.ExpiresAt.Time,
		User: models.User{
			UserID:               claims.UserID,
			FirstName:            claims.FirstName,
			LastName:             claims.LastName,
			Email:                claims.Email,
			BirthDate:            claims.BirthDate,
			EnrollmentNumber:     claims.EnrollmentNumber,
			Picture:              claims.Picture,
			Subscription:         claims.Subscription,
			UserType:             claims.UserType,
			ProfileInfoCompleted: claims.ProfileInfoCompleted,
		},
	}, nil
}

func (c *Claims) validate() error {
	switch {
	case c.ExpiresAt == nil:
		return fmt.Errorf("%w: missing exp", ErrDecode)
	case c.UserID <= 0:
		return fmt.Errorf("%w: missing userId", ErrDecode)
	case c.Email == "":
		return fmt.Errorf("%w: missing email", ErrDecode)
	case !c.Subscription.Valid():
		return fmt.Errorf("%w: unknown subscription %q", ErrDecode, c.Subscription)
	}
	return nil
}
