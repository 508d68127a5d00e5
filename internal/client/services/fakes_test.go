package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/studyprep/internal/client/models"
)

type fakeClient struct {
	LoginRet  *models.AuthResult
	LoginErr  error
	SignupRet *models.AuthResult
	SignupErr error

	UpdateRet *models.User
	UpdateErr error

	CollegesRet []models.College
	CollegesErr error

	LoginCalls    int
	SignupCalls   int
	UpdateCalls   int
	CollegesCalls int

	LastLoginEmail    string
	LastLoginPassword string
	LastSignup        models.SignupRequest
	LastUpdate        models.ProfileUpdate
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.AuthResult, error) {
	f.LoginCalls++
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(_ context.Context, req models.SignupRequest) (*models.AuthResult, error) {
	f.SignupCalls++
	f.LastSignup = req
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) GetProfile(context.Context) (*models.User, error) {
	return nil, errors.New("not used")
}

func (f *fakeClient) UpdateProfile(_ context.Context, update models.ProfileUpdate) (*models.User, error) {
	f.UpdateCalls++
	f.LastUpdate = update
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) ListColleges(context.Context) ([]models.College, error) {
	f.CollegesCalls++
	return f.CollegesRet, f.CollegesErr
}

type fakeStore struct {
	data      map[string]string
	SetErr    error
	DeleteErr error
}

func newFakeStore() *fakeStore { return &fakeStore{data: map[string]string{}} }

func (f *fakeStore) Get(_ context.Context, key string) (string, error) { return f.data[key], nil }

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	delete(f.data, key)
	return nil
}

func testUser(completion models.ProfileCompletion) *models.User {
	return &models.User{
		UserID:               42,
		FirstName:            "Anna",
		LastName:             "Smith",
		Email:                "anna@example.com",
		Subscription:         models.SubscriptionFree,
		ProfileInfoCompleted: completion,
	}
}
