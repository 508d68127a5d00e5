package validation

import (
	"regexp"
	"unicode/utf8"
)

// Logical field names used in FieldError.Field.
const (
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldConfirmPassword  = "confirmPassword"
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldMobile           = "mobile"
	FieldOTP              = "otp"
	FieldCollege          = "college"
	FieldSemester         = "semester"
	FieldEnrollmentNumber = "enrollmentNumber"
	FieldCollegeName      = "collegeName"
	FieldCurrentSemester  = "currentSemester"
	FieldCoreField        = "coreField"
	FieldDateOfBirth      = "dateOfBirth"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	passwordRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{8,}$`)
	hasLetter     = regexp.MustCompile(`[A-Za-z]`)
	hasDigit      = regexp.MustCompile(`\d`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	nameRegex     = regexp.MustCompile(`^[a-zA-Z\s'-]{2,50}$`)
	otpRegex      = regexp.MustCompile(`^\d{4,6}$`)
	semesterRegex = regexp.MustCompile(`^([1-9]|1[0-2])$`)
)

// ValidateEmail requires a local part, an @ and a domain with an alphabetic TLD.
func ValidateEmail(email string) *FieldError {
	if email == "" {
		return &FieldError{Field: FieldEmail, Message: "Email is required"}
	}
	if !emailRegex.MatchString(email) {
		return &FieldError{Field: FieldEmail, Message: "Please enter a valid email address"}
	}
	return nil
}

// ValidatePassword requires at least 8 characters from [A-Za-z0-9@$!%*#?&]
// with at least one letter and one digit.
func ValidatePassword(password string) *FieldError {
	if password == "" {
		return &FieldError{Field: FieldPassword, Message: "Password is required"}
	}
	if !passwordRegex.MatchString(password) || !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return &FieldError{
			Field:   FieldPassword,
			Message: "Password must be at least 8 characters with at least one letter and one number",
		}
	}
	return nil
}

// ValidatePasswordConfirmation compares byte for byte; no trimming or case folding.
func ValidatePasswordConfirmation(password, confirmPassword string) *FieldError {
	if confirmPassword == "" {
		return &FieldError{Field: FieldConfirmPassword, Message: "Please confirm your password"}
	}
	if password != confirmPassword {
		return &FieldError{Field: FieldConfirmPassword, Message: "Passwords do not match"}
	}
	return nil
}

// ValidateName checks a person name and reports under fieldName
// (FieldFirstName or FieldLastName).
func ValidateName(name, fieldName string) *FieldError {
	if name == "" {
		return &FieldError{Field: fieldName, Message: fieldName + " is required"}
	}
	if !nameRegex.MatchString(name) {
		return &FieldError{
			Field:   fieldName,
			Message: fieldName + " must be between 2-50 characters and contain only letters, spaces, hyphens, and apostrophes",
		}
	}
	return nil
}

// ValidatePhone accepts 10 to 15 digits with an optional leading '+'.
func ValidatePhone(phone string) *FieldError {
	if phone == "" {
		return &FieldError{Field: FieldMobile, Message: "Mobile number is required"}
	}
	if !phoneRegex.MatchString(phone) {
		return &FieldError{Field: FieldMobile, Message: "Please enter a valid mobile number"}
	}
	return nil
}

// ValidateOTP accepts a 4 to 6 digit code.
func ValidateOTP(otp string) *FieldError {
	if otp == "" {
		return &FieldError{Field: FieldOTP, Message: "OTP is required"}
	}
	if !otpRegex.MatchString(otp) {
		return &FieldError{Field: FieldOTP, Message: "OTP must be 4-6 digits"}
	}
	return nil
}

// ValidateCollege requires a college name of at least two characters.
func ValidateCollege(college string) *FieldError {
	if college == "" {
		return &FieldError{Field: FieldCollege, Message: "College is required"}
	}
	if utf8.RuneCountInString(college) < 2 {
		return &FieldError{Field: FieldCollege, Message: "Please enter a valid college name"}
	}
	return nil
}

// ValidateSemester accepts the decimal strings "1" through "12" and nothing
// else: no sign, no padding, no leading zero.
func ValidateSemester(semester string) *FieldError {
	if semester == "" {
		return &FieldError{Field: FieldSemester, Message: "Semester is required"}
	}
	if !semesterRegex.MatchString(semester) {
		return &FieldError{Field: FieldSemester, Message: "Semester must be between 1-12"}
	}
	return nil
}
