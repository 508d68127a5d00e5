// Package services contains the application services of the StudyPrep
// client: authentication (login, signup, logout) and profile completion.
//
// Every submission is gated on the validation package. A form with rule
// violations is returned as validation.Errors and never reaches the network.
package services
