package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/studyprep/internal/client/client"
	"github.com/dmitrijs2005/studyprep/internal/client/models"
	"github.com/dmitrijs2005/studyprep/internal/client/session"
	"github.com/dmitrijs2005/studyprep/internal/client/token/tokentest"
	"github.com/dmitrijs2005/studyprep/internal/common"
	"github.com/dmitrijs2005/studyprep/internal/logging"
	"github.com/dmitrijs2005/studyprep/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(c *fakeClient, st *fakeStore) (AuthService, *session.Session) {
	s := session.New(logging.NewNopLogger())
	return NewAuthService(c, st, s, logging.NewNopLogger()), s
}

func TestLogin_ValidationBlocksNetwork(t *testing.T) {
	c := &fakeClient{}
	svc, _ := newAuth(c, newFakeStore())

	snap, err := svc.Login(context.Background(), "not-an-email", "short")
	require.Error(t, err)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 2)
	assert.Equal(t, validation.FieldEmail, errs[0].Field)
	assert.Equal(t, validation.FieldPassword, errs[1].Field)

	assert.Zero(t, c.LoginCalls)
	assert.Equal(t, session.Unauthenticated, snap.State)
}

func TestLogin_Success(t *testing.T) {
	c := &fakeClient{LoginRet: &models.AuthResult{Token: "tok", User: testUser(models.ProfileCompleted)}}
	st := newFakeStore()
	svc, s := newAuth(c, st)

	snap, err := svc.Login(context.Background(), "anna@example.com", "password1")
	require.NoError(t, err)

	assert.Equal(t, "anna@example.com", c.LastLoginEmail)
	assert.Equal(t, "password1", c.LastLoginPassword)
	assert.Equal(t, "tok", st.data[common.TokenKey])
	assert.Equal(t, session.AuthenticatedReady, snap.State)
	assert.Equal(t, session.RouteMain, s.Snapshot().Route)
}

func TestLogin_UserFromTokenWhenOmitted(t *testing.T) {
	raw := tokentest.Valid(t)
	c := &fakeClient{LoginRet: &models.AuthResult{Token: raw}}
	svc, _ := newAuth(c, newFakeStore())

	snap, err := svc.Login(context.Background(), "anna@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, session.AuthenticatedProfileIncomplete, snap.State)
	assert.Equal(t, int64(42), snap.User.UserID)
}

func TestLogin_UndecodableTokenWhenUserOmitted(t *testing.T) {
	st := newFakeStore()
	c := &fakeClient{LoginRet: &models.AuthResult{Token: "garbage"}}
	svc, _ := newAuth(c, st)

	snap, err := svc.Login(context.Background(), "anna@example.com", "password1")
	require.ErrorIs(t, err, client.ErrBadResponse)
	assert.Equal(t, session.Unauthenticated, snap.State)
	assert.Empty(t, st.data)
}

func TestLogin_ServerErrors(t *testing.T) {
	for _, e := range []error{client.ErrUnauthorized, client.ErrUnavailable, &client.APIError{Status: 400, Message: "nope"}} {
		t.Run(e.Error(), func(t *testing.T) {
			st := newFakeStore()
			svc, _ := newAuth(&fakeClient{LoginErr: e}, st)

			snap, err := svc.Login(context.Background(), "anna@example.com", "password1")
			require.ErrorIs(t, err, e)
			assert.Equal(t, session.Unauthenticated, snap.State)
			assert.Empty(t, st.data)
		})
	}
}

func TestLogin_TokenSaveFailure(t *testing.T) {
	st := newFakeStore()
	st.SetErr = errors.New("disk full")
	c := &fakeClient{LoginRet: &models.AuthResult{Token: "tok", User: testUser(models.ProfileCompleted)}}
	svc, _ := newAuth(c, st)

	snap, err := svc.Login(context.Background(), "anna@example.com", "password1")
	require.ErrorContains(t, err, "save token")
	assert.Equal(t, session.Unauthenticated, snap.State)
}

func TestSignup_ValidationBlocksNetwork(t *testing.T) {
	c := &fakeClient{}
	svc, _ := newAuth(c, newFakeStore())

	_, err := svc.Signup(context.Background(), SignupForm{
		FirstName: "A", LastName: "Smith", Email: "anna@example.com",
		Password: "password1", ConfirmPassword: "password2",
	})

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	_, ok := errs.Field(validation.FieldFirstName)
	assert.True(t, ok)
	_, ok = errs.Field(validation.FieldConfirmPassword)
	assert.True(t, ok)
	assert.Zero(t, c.SignupCalls)
}

func TestSignup_NewUserLandsOnCompleteProfile(t *testing.T) {
	c := &fakeClient{SignupRet: &models.AuthResult{Token: "tok", User: testUser(models.ProfileCompletionUnknown)}}
	st := newFakeStore()
	svc, _ := newAuth(c, st)

	snap, err := svc.Signup(context.Background(), SignupForm{
		FirstName: "Anna", LastName: "Smith", Email: "anna@example.com",
		Password: "password1", ConfirmPassword: "password1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SignupRequest{FirstName: "Anna", LastName: "Smith", Email: "anna@example.com", Password: "password1"}, c.LastSignup)
	assert.Equal(t, session.AuthenticatedProfileIncomplete, snap.State)
	assert.Equal(t, session.RouteCompleteProfile, snap.Route)
	assert.Equal(t, "tok", st.data[common.TokenKey])
}

func TestSignup_ServerError(t *testing.T) {
	c := &fakeClient{SignupErr: &client.APIError{Status: 409, Message: "Email already registered"}}
	svc, _ := newAuth(c, newFakeStore())

	_, err := svc.Signup(context.Background(), SignupForm{
		FirstName: "Anna", LastName: "Smith", Email: "anna@example.com",
		Password: "password1", ConfirmPassword: "password1",
	})
	apiErr, ok := client.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Email already registered", apiErr.Message)
}

func TestLogout(t *testing.T) {
	st := newFakeStore()
	c := &fakeClient{LoginRet: &models.AuthResult{Token: "tok", User: testUser(models.ProfileCompleted)}}
	svc, s := newAuth(c, st)

	_, err := svc.Login(context.Background(), "anna@example.com", "password1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, st.data)
	assert.Equal(t, session.Unauthenticated, s.Snapshot().State)
}

func TestLogout_StoreFailureStillClearsSession(t *testing.T) {
	st := newFakeStore()
	c := &fakeClient{LoginRet: &models.AuthResult{Token: "tok", User: testUser(models.ProfileCompleted)}}
	svc, s := newAuth(c, st)

	_, err := svc.Login(context.Background(), "anna@example.com", "password1")
	require.NoError(t, err)

	st.DeleteErr = errors.New("locked")
	require.ErrorContains(t, svc.Logout(context.Background()), "locked")
	assert.Equal(t, session.Unauthenticated, s.Snapshot().State)
}
