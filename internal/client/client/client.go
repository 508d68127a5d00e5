package client

import (
	"context"

	"github.com/dmitrijs2005/studyprep/internal/client/models"
)

// Client is the StudyPrep REST API as the client core uses it.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResult, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
	ListColleges(ctx context.Context) ([]models.College, error)
}
