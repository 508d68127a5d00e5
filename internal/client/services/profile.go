package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/studyprep/internal/client/client"
	"github.com/dmitrijs2005/studyprep/internal/client/models"
	"github.com/dmitrijs2005/studyprep/internal/client/session"
	"github.com/dmitrijs2005/studyprep/internal/logging"
	"github.com/dmitrijs2005/studyprep/internal/validation"
)

// ProfileService covers the onboarding screen and the profile view.
type ProfileService interface {
	CompleteProfile(ctx context.Context, form ProfileForm) (session.Snapshot, error)
	Enroll(ctx context.Context, form EnrollmentForm) (session.Snapshot, error)
	Colleges(ctx context.Context) ([]models.CollegeOption, error)
	Current() *models.User
}

// ProfileForm is the raw input of the complete-profile screen. OTP,
// EnrollmentNumber and DateOfBirth are optional.
type ProfileForm struct {
	College          string
	Semester         string
	Mobile           string
	OTP              string
	EnrollmentNumber string
	DateOfBirth      string
}

// EnrollmentForm is the enrollment screen: academic details followed by
// mobile verification. Both steps are required.
type EnrollmentForm struct {
	validation.EnrollmentForm
	Mobile string
	OTP    string
}

type profileService struct {
	client  client.Client
	session *session.Session
	log     logging.Logger

	mu       sync.Mutex
	colleges []models.CollegeOption
}

func NewProfileService(c client.Client, s *session.Session, log logging.Logger) ProfileService {
	return &profileService{client: c, session: s, log: log.With("component", "profile")}
}

func (p *profileService) CompleteProfile(ctx context.Context, form ProfileForm) (session.Snapshot, error) {
	current := p.session.Snapshot()
	if current.User == nil {
		return current, session.ErrSessionInvalid
	}

	errs := validation.ValidateProfileForm(form.College, form.Semester, form.Mobile)
	if form.OTP != "" {
		if fe := validation.ValidateOTP(form.OTP); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if err := errs.Err(); err != nil {
		return current, err
	}

	semester, _ := strconv.Atoi(form.Semester)

	update := models.ProfileUpdate{
		FirstName:            current.User.FirstName,
		LastName:             current.User.LastName,
		Email:                current.User.Email,
		Phone:                form.Mobile,
		OTP:                  form.OTP,
		EnrollmentNumber:     form.EnrollmentNumber,
		CurrentSemester:      semester,
		CollegeName:          form.College,
		DateOfBirth:          optional(form.DateOfBirth),
		ProfilePicture:       current.User.Picture,
		ProfileInfoCompleted: models.ProfileCompleted,
	}

	return p.submit(ctx, update)
}

// Enroll is the alternative onboarding path. It runs the enrollment rules
// (semester 1..8, core field, date of birth) instead of ValidateProfileForm.
func (p *profileService) Enroll(ctx context.Context, form EnrollmentForm) (session.Snapshot, error) {
	current := p.session.Snapshot()
	if current.User == nil {
		return current, session.ErrSessionInvalid
	}

	errs := validation.ValidateEnrollmentForm(form.EnrollmentForm)
	errs = append(errs, validation.ValidateMobileVerification(form.Mobile, form.OTP)...)
	if err := errs.Err(); err != nil {
		return current, err
	}

	semester, _ := strconv.Atoi(form.CurrentSemester)

	update := models.ProfileUpdate{
		FirstName:            current.User.FirstName,
		LastName:             current.User.LastName,
		Email:                current.User.Email,
		Phone:                form.Mobile,
		OTP:                  form.OTP,
		EnrollmentNumber:     form.EnrollmentNumber,
		CoreField:            form.CoreField,
		CurrentSemester:      semester,
		CollegeName:          form.CollegeName,
		DateOfBirth:          optional(form.DateOfBirth),
		ProfilePicture:       current.User.Picture,
		ProfileInfoCompleted: models.ProfileCompleted,
	}

	return p.submit(ctx, update)
}

func (p *profileService) submit(ctx context.Context, update models.ProfileUpdate) (session.Snapshot, error) {
	user, err := p.client.UpdateProfile(ctx, update)
	if err != nil {
		return p.session.Snapshot(), fmt.Errorf("update profile: %w", err)
	}

	if err := p.session.MarkProfileCompleted(user); err != nil {
		return p.session.Snapshot(), err
	}

	snap := p.session.Snapshot()
	p.log.Info(ctx, "profile completed", "user_id", user.UserID)
	return snap, nil
}

// Colleges returns the college picker options. The list is fetched once;
// a failed fetch is not cached.
func (p *profileService) Colleges(ctx context.Context) ([]models.CollegeOption, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.colleges != nil {
		return p.colleges, nil
	}

	list, err := p.client.ListColleges(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}

	p.colleges = models.CollegeOptions(list)
	return p.colleges, nil
}

func (p *profileService) Current() *models.User {
	return p.session.Snapshot().User
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
