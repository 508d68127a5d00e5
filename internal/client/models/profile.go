package models

// ProfileUpdate is the body of PUT /profile/updateUser, sent when the user
// completes onboarding.
type ProfileUpdate struct {
	FirstName            string            `json:"firstName,omitempty"`
	LastName             string            `json:"lastName,omitempty"`
	Email                string            `json:"email,omitempty"`
	Phone                string            `json:"phone"`
	OTP                  string            `json:"otp,omitempty"`
	EnrollmentNumber     string            `json:"enrollmentNumber,omitempty"`
	CoreField            string            `json:"coreField,omitempty"`
	CurrentSemester      int               `json:"currentSemester"`
	CollegeName          string            `json:"collegeName"`
	DateOfBirth          *string           `json:"dateOfBirth"`
	ProfilePicture       *string           `json:"profilePicture"`
	ProfileInfoCompleted ProfileCompletion `json:"profileInfoCompleted,omitempty"`
}
