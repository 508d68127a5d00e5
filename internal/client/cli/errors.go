package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studyprep/internal/client/client"
	"github.com/dmitrijs2005/studyprep/internal/client/session"
	"github.com/dmitrijs2005/studyprep/internal/validation"
)

// report prints err in user terms.
func (a *App) report(err error) {
	var fieldErrs validation.Errors

	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			fmt.Fprintf(a.out, "  %s: %s\n", fe.Field, fe.Message)
		}
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Not authorized. Check your credentials or log in again.")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, please try again later.")
	case errors.Is(err, session.ErrSessionInvalid):
		fmt.Fprintln(a.out, "You are not logged in.")
	default:
		if apiErr, ok := client.IsAPIError(err); ok && apiErr.Message != "" {
			fmt.Fprintln(a.out, apiErr.Message)
			return
		}
		fmt.Fprintf(a.out, "Something went wrong: %v\n", err)
	}
}
