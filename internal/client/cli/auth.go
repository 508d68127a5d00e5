package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studyprep/internal/client/services"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText   = GetSimpleText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
)

// Login prompts for email and password and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	snap, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.report(err)
		return err
	}

	a.announce(snap)
	return nil
}

// Signup prompts for the signup form and creates an account.
func (a *App) Signup(ctx context.Context) error {
	var form services.SignupForm
	var err error

	if form.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if form.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	snap, err := a.authService.Signup(ctx, form)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, "Account created.")
	a.announce(snap)
	return nil
}

// Logout forgets the token and returns to the login route.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
