package session

import "github.com/dmitrijs2005/studyprep/internal/client/models"

type State int

const (
	Unauthenticated State = iota
	AuthenticatedPendingProfile
	AuthenticatedProfileIncomplete
	AuthenticatedReady
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case AuthenticatedPendingProfile:
		return "pending-profile"
	case AuthenticatedProfileIncomplete:
		return "profile-incomplete"
	case AuthenticatedReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Route is the navigation decision for a state.
type Route string

const (
	RouteNone            Route = ""
	RouteLogin           Route = "/auth/login"
	RouteCompleteProfile Route = "/auth/complete-profile"
	RouteMain            Route = "/(tabs)"
)

func (s State) Route() Route {
	switch s {
	case Unauthenticated:
		return RouteLogin
	case AuthenticatedProfileIncomplete:
		return RouteCompleteProfile
	case AuthenticatedReady:
		return RouteMain
	default:
		return RouteNone
	}
}

// Snapshot is an immutable view of the session at one moment.
type Snapshot struct {
	State State
	Route Route
	User  *models.User
}

func deriveState(user *models.User, pending bool) State {
	switch {
	case pending:
		return AuthenticatedPendingProfile
	case user == nil:
		return Unauthenticated
	case user.ProfileComplete():
		return AuthenticatedReady
	default:
		return AuthenticatedProfileIncomplete
	}
}
