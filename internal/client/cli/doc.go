// Package cli provides the interactive StudyPrep command-line client.
//
// It wires configuration, the local secure store, the API client, the
// session and the services, restores the session on start, and then runs a
// REPL whose commands follow the session's route:
//
//	/auth/login             login, signup
//	/auth/complete-profile  complete-profile, colleges, logout
//	/(tabs)                 profile, logout
//	always                  help, status, retry, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
