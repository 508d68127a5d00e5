// Package models defines the client-side data models exchanged with the
// StudyPrep API and held in the session.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Subscription is the account tier.
type Subscription string

const (
	SubscriptionFree     Subscription = "FREE"
	SubscriptionStandard Subscription = "STANDARD"
	SubscriptionPremium  Subscription = "PREMIUM"
)

func (s Subscription) Valid() bool {
	switch s {
	case SubscriptionFree, SubscriptionStandard, SubscriptionPremium:
		return true
	}
	return false
}

// ProfileCompletion is the server's profileInfoCompleted flag. The API sends
// it as a string ("true"/"false"), sometimes as a bool, sometimes not at all;
// it is normalised here so no caller ever coerces a string to a boolean.
type ProfileCompletion int

const (
	ProfileCompletionUnknown ProfileCompletion = iota
	ProfileIncomplete
	ProfileCompleted
)

var ErrInvalidProfileCompletion = errors.New("invalid profileInfoCompleted value")

func (p ProfileCompletion) String() string {
	switch p {
	case ProfileIncomplete:
		return "false"
	case ProfileCompleted:
		return "true"
	default:
		return "unknown"
	}
}

func (p ProfileCompletion) MarshalJSON() ([]byte, error) {
	if p == ProfileCompletionUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(p.String())
}

func (p *ProfileCompletion) UnmarshalJSON(b []byte) error {
	switch strings.ToLower(string(bytes.TrimSpace(b))) {
	case `"true"`, `true`:
		*p = ProfileCompleted
	case `"false"`, `false`:
		*p = ProfileIncomplete
	case `null`, `""`:
		*p = ProfileCompletionUnknown
	default:
		return fmt.Errorf("%w: %s", ErrInvalidProfileCompletion, string(b))
	}
	return nil
}

// User is the authoritative profile record returned by the profile endpoint
// and by login/signup.
type User struct {
	UserID               int64             `json:"userId"`
	FirstName            string            `json:"firstName"`
	LastName             string            `json:"lastName"`
	Email                string            `json:"email"`
	BirthDate            *string           `json:"birthDate"`
	EnrollmentNumber     *string           `json:"enrollmentNumber"`
	PrimaryPhone         string            `json:"primaryPhone,omitempty"`
	SecondaryPhone       string            `json:"secondaryPhone,omitempty"`
	Semester             int               `json:"semester,omitempty"`
	CollegeName          string            `json:"collegeName,omitempty"`
	Picture              *string           `json:"picture"`
	UserType             string            `json:"userType"`
	Subscription         Subscription      `json:"subscription,omitempty"`
	ProfileInfoCompleted ProfileCompletion `json:"profileInfoCompleted"`
	CreatePasswordTrue   bool              `json:"createPasswordTrue"`
	UpdateTime           string            `json:"updateTime,omitempty"`
}

var ErrInvalidUser = errors.New("invalid user record")

// Validate rejects records the session cannot be built from.
func (u *User) Validate() error {
	if u == nil {
		return fmt.Errorf("%w: empty", ErrInvalidUser)
	}
	if u.UserID <= 0 {
		return fmt.Errorf("%w: missing userId", ErrInvalidUser)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: missing email", ErrInvalidUser)
	}
	if u.Subscription != "" && !u.Subscription.Valid() {
		return fmt.Errorf("%w: unknown subscription %q", ErrInvalidUser, u.Subscription)
	}
	return nil
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ProfileComplete reports whether the user finished onboarding. Unknown
// counts as not complete.
func (u *User) ProfileComplete() bool {
	return u != nil && u.ProfileInfoCompleted == ProfileCompleted
}
