package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studyprep/internal/client/client"
	"github.com/dmitrijs2005/studyprep/internal/client/models"
	"github.com/dmitrijs2005/studyprep/internal/client/session"
	"github.com/dmitrijs2005/studyprep/internal/client/store"
	"github.com/dmitrijs2005/studyprep/internal/client/token"
	"github.com/dmitrijs2005/studyprep/internal/common"
	"github.com/dmitrijs2005/studyprep/internal/logging"
	"github.com/dmitrijs2005/studyprep/internal/validation"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Login / Signup: validate the form, call the API, persist the returned
//     token and install the user in the session.
//   - Logout: forget the token and clear the session. The server is not told.
type AuthService interface {
	Login(ctx context.Context, email, password string) (session.Snapshot, error)
	Signup(ctx context.Context, form SignupForm) (session.Snapshot, error)
	Logout(ctx context.Context) error
}

// SignupForm is the raw input of the signup screen.
type SignupForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type authService struct {
	client  client.Client
	store   store.SecretStore
	session *session.Session
	log     logging.Logger
}

func NewAuthService(c client.Client, st store.SecretStore, s *session.Session, log logging.Logger) AuthService {
	return &authService{client: c, store: st, session: s, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, email, password string) (session.Snapshot, error) {
	if err := validation.ValidateLoginForm(email, password).Err(); err != nil {
		return a.session.Snapshot(), err
	}

	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return a.session.Snapshot(), fmt.Errorf("login: %w", err)
	}

	return a.establish(ctx, res)
}

func (a *authService) Signup(ctx context.Context, form SignupForm) (session.Snapshot, error) {
	errs := validation.ValidateSignupForm(form.FirstName, form.LastName, form.Email, form.Password, form.ConfirmPassword)
	if err := errs.Err(); err != nil {
		return a.session.Snapshot(), err
	}

	res, err := a.client.Signup(ctx, models.SignupRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		return a.session.Snapshot(), fmt.Errorf("signup: %w", err)
	}

	return a.establish(ctx, res)
}

func (a *authService) Logout(ctx context.Context) error {
	err := a.store.Delete(ctx, common.TokenKey)
	if err != nil {
		a.log.Error(ctx, "delete token on logout", "error", err)
	}
	a.session.Clear()
	a.log.Info(ctx, "logged out")

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// establish persists the token and installs the user. When the API omits the
// user, it is taken from the token payload.
func (a *authService) establish(ctx context.Context, res *models.AuthResult) (session.Snapshot, error) {
	user := res.User
	if user == nil {
		cred, err := token.Decode(res.Token)
		if err != nil {
			return a.session.Snapshot(), fmt.Errorf("%w: %w", client.ErrBadResponse, err)
		}
		user = &cred.User
	}

	if err := a.store.Set(ctx, common.TokenKey, res.Token); err != nil {
		return a.session.Snapshot(), fmt.Errorf("save token: %w", err)
	}

	if err := a.session.SetUser(user); err != nil {
		return a.session.Snapshot(), err
	}

	snap := a.session.Snapshot()
	a.log.Info(ctx, "authenticated", "user_id", user.UserID, "state", snap.State)
	return snap, nil
}
