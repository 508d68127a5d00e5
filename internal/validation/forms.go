package validation

import (
	"strconv"
	"time"
	"unicode/utf8"
)

// ValidateLoginForm checks email then password.
func ValidateLoginForm(email, password string) Errors {
	var errs Errors
	errs.add(ValidateEmail(email))
	errs.add(ValidatePassword(password))
	return errs
}

// ValidateSignupForm checks the confirmation against password even when
// password itself failed.
func ValidateSignupForm(firstName, lastName, email, password, confirmPassword string) Errors {
	var errs Errors
	errs.add(ValidateName(firstName, FieldFirstName))
	errs.add(ValidateName(lastName, FieldLastName))
	errs.add(ValidateEmail(email))
	errs.add(ValidatePassword(password))
	errs.add(ValidatePasswordConfirmation(password, confirmPassword))
	return errs
}

// ValidateProfileForm covers the profile-completion screen. It does not
// check the OTP; callers that collect one run ValidateOTP separately.
func ValidateProfileForm(college, semester, mobile string) Errors {
	var errs Errors
	errs.add(ValidateCollege(college))
	errs.add(ValidateSemester(semester))
	errs.add(ValidatePhone(mobile))
	return errs
}

// ValidateMobileVerification is the second step of the enrollment flow.
func ValidateMobileVerification(mobile, otp string) Errors {
	var errs Errors
	errs.add(ValidatePhone(mobile))
	errs.add(ValidateOTP(otp))
	return errs
}

// CoreFields lists the accepted enrollment core-field codes with their labels.
var CoreFields = map[string]string{
	"cs": "Computer Science",
	"ee": "Electrical Engineering",
	"me": "Mechanical Engineering",
	"ce": "Civil Engineering",
	"it": "Information Technology",
}

const (
	minEnrollmentNumberLength = 5
	maxEnrollmentSemester     = 8
	dateOfBirthLayout         = "2006-01-02"
)

// EnrollmentForm is the first step of the enrollment flow.
type EnrollmentForm struct {
	EnrollmentNumber string
	CollegeName      string
	CurrentSemester  string
	CoreField        string
	DateOfBirth      string
}

// ValidateEnrollmentForm applies the enrollment screen's own rules, which
// are stricter on semester (1..8) than ValidateSemester.
func ValidateEnrollmentForm(f EnrollmentForm) Errors {
	var errs Errors

	if utf8.RuneCountInString(f.EnrollmentNumber) < minEnrollmentNumberLength {
		errs = append(errs, FieldError{Field: FieldEnrollmentNumber, Message: "Enrollment number must be at least 5 characters."})
	}
	if f.CollegeName == "" {
		errs = append(errs, FieldError{Field: FieldCollegeName, Message: "Please select a college."})
	}
	if n, err := strconv.Atoi(f.CurrentSemester); err != nil || n < 1 || n > maxEnrollmentSemester {
		errs = append(errs, FieldError{Field: FieldCurrentSemester, Message: "Semester must be between 1 and 8."})
	}
	if _, ok := CoreFields[f.CoreField]; !ok {
		errs = append(errs, FieldError{Field: FieldCoreField, Message: "Please select your core field."})
	}
	if _, err := time.Parse(dateOfBirthLayout, f.DateOfBirth); err != nil {
		errs = append(errs, FieldError{Field: FieldDateOfBirth, Message: "Please select your date of birth."})
	}

	return errs
}
