package services

import (
	"net/mail"
	"strings"
	"time"

	"github.com/assistco/assist-api/internal/constants"
	apierrors "github.com/assistco/assist-api/internal/errors"
)

// Validation messages kept stable for API consumers.
const (
	msgRequired       = "This field is required."
	msgInvalidEmail   = "Enter a valid email address."
	msgEmailExists    = "Email already exists"
	msgPhoneExists    = "Phone number already exists"
	msgInvalidDate    = "Date has wrong format. Use YYYY-MM-DD."
	msgUnknownOption  = "Object with permalink=%s does not exist."
	msgEmailOrPhone   = "Either email or phone is required."
	msgInvalidState   = "Not a valid task state."
	msgPasswordLength = "Password is too short."
)

// NormalizeEmail lowercases an email for case-insensitive matching.
// Emails are stored in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the address is syntactically valid.
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// AccountFields are the credentials and names shared by client and
// assistant accounts. Both entities hold their own copies of these
// columns; the validation is shared here instead.
type AccountFields struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth string
}

// ValidateAccountFields collects presence and format errors for the
// shared account fields into errs, returning the parsed date of birth.
// Uniqueness checks stay with the caller because they differ per
// entity. The returned date is only meaningful when errs stays empty.
func ValidateAccountFields(f AccountFields, errs apierrors.ValidationErrors) time.Time {
	if f.Email == "" {
		errs.Add("email", msgRequired)
	} else if !ValidEmail(NormalizeEmail(f.Email)) {
		errs.Add("email", msgInvalidEmail)
	}

	if f.Password == "" {
		errs.Add("password", msgRequired)
	} else if len(f.Password) < constants.MinPasswordLength {
		errs.Add("password", msgPasswordLength)
	}

	if f.FirstName == "" {
		errs.Add("first_name", msgRequired)
	}
	if f.LastName == "" {
		errs.Add("last_name", msgRequired)
	}

	var dob time.Time
	if f.DateOfBirth == "" {
		errs.Add("date_of_birth", msgRequired)
	} else {
		parsed, err := time.Parse(constants.DateLayout, f.DateOfBirth)
		if err != nil {
			errs.Add("date_of_birth", msgInvalidDate)
		} else {
			dob = parsed
		}
	}

	return dob
}
