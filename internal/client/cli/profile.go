package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/studyprep/internal/client/services"
	"github.com/dmitrijs2005/studyprep/internal/validation"
)

// CompleteProfile prompts for the onboarding form and submits it.
func (a *App) CompleteProfile(ctx context.Context) error {
	var form services.ProfileForm
	var err error

	if form.College, err = getSimpleText(a.reader, "College name", a.out); err != nil {
		return err
	}
	if form.Semester, err = getSimpleText(a.reader, "Current semester (1-12)", a.out); err != nil {
		return err
	}
	if form.Mobile, err = getSimpleText(a.reader, "Mobile number", a.out); err != nil {
		return err
	}
	if form.OTP, err = getOptionalText(a.reader, "OTP", a.out); err != nil {
		return err
	}
	if form.EnrollmentNumber, err = getOptionalText(a.reader, "Enrollment number", a.out); err != nil {
		return err
	}
	if form.DateOfBirth, err = getOptionalText(a.reader, "Date of birth (YYYY-MM-DD)", a.out); err != nil {
		return err
	}

	snap, err := a.profileService.CompleteProfile(ctx, form)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, "Profile completed.")
	a.announce(snap)
	return nil
}

// Enroll prompts for the enrollment details and the mobile verification
// step, then submits them as the completed profile.
func (a *App) Enroll(ctx context.Context) error {
	var form services.EnrollmentForm
	var err error

	codes := slices.Sorted(maps.Keys(validation.CoreFields))

	if form.EnrollmentNumber, err = getSimpleText(a.reader, "Enrollment number", a.out); err != nil {
		return err
	}
	if form.CollegeName, err = getSimpleText(a.reader, "College name", a.out); err != nil {
		return err
	}
	if form.CurrentSemester, err = getSimpleText(a.reader, "Current semester (1-8)", a.out); err != nil {
		return err
	}
	if form.CoreField, err = getSimpleText(a.reader, "Core field ("+strings.Join(codes, ", ")+")", a.out); err != nil {
		return err
	}
	if form.DateOfBirth, err = getSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if form.Mobile, err = getSimpleText(a.reader, "Mobile number", a.out); err != nil {
		return err
	}
	if form.OTP, err = getSimpleText(a.reader, "OTP", a.out); err != nil {
		return err
	}

	snap, err := a.profileService.Enroll(ctx, form)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, "Enrollment completed.")
	a.announce(snap)
	return nil
}

// Colleges prints the college list.
func (a *App) Colleges(ctx context.Context) error {
	opts, err := a.profileService.Colleges(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	if len(opts) == 0 {
		fmt.Fprintln(a.out, "No colleges available.")
		return nil
	}
	for _, o := range opts {
		fmt.Fprintf(a.out, "  %4d  %s\n", o.Value, o.Label)
	}
	return nil
}

// Profile prints the signed-in user.
func (a *App) Profile(context.Context) error {
	u := a.profileService.Current()
	if u == nil {
		fmt.Fprintln(a.out, "You are not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "Name:         %s\n", u.FullName())
	fmt.Fprintf(a.out, "Email:        %s\n", u.Email)
	if u.CollegeName != "" {
		fmt.Fprintf(a.out, "College:      %s\n", u.CollegeName)
	}
	if u.Semester > 0 {
		fmt.Fprintf(a.out, "Semester:     %d\n", u.Semester)
	}
	if u.PrimaryPhone != "" {
		fmt.Fprintf(a.out, "Mobile:       %s\n", u.PrimaryPhone)
	}
	if u.Subscription != "" {
		fmt.Fprintf(a.out, "Subscription: %s\n", u.Subscription)
	}
	return nil
}
