// Package session holds the authenticated-user context and the launch-time
// bootstrap that decides where the user lands.
//
// Session is passed down explicitly rather than kept in a global. Its state
// is derived from what it holds, never stored:
//
//	no user, not pending     -> Unauthenticated             -> /auth/login
//	fetch in flight          -> AuthenticatedPendingProfile -> (no route)
//	user, profile completed  -> AuthenticatedReady          -> /(tabs)
//	user, anything else      -> AuthenticatedProfileIncomplete -> /auth/complete-profile
//
// Every change bumps a generation counter, so a profile fetch that was
// started before a logout or a newer bootstrap can never write its result
// back.
package session
