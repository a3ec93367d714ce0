package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cms-backend/internal/shared/apperror"
)

const (
	PhoneNumberLength = 10

	MsgNameRequired  = "Failed name validation. All authors have a name"
	MsgNameTaken     = "Author already exists"
	MsgPhoneNumber   = "Phone numbers are exactly ten digits"
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
)

var phoneNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// NameRules are the store-independent rules for an author name
func NameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(MsgNameRequired),
	}
}

// PhoneNumberRules require exactly ten ASCII digits. Required is listed so an
// empty string is rejected instead of being skipped by Match.
func PhoneNumberRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(MsgPhoneNumber),
		validation.Match(phoneNumberPattern).Error(MsgPhoneNumber),
	}
}

// ValidateName fails when the name is empty
func ValidateName(name string) error {
	return apperror.FromValidation(FieldName, validation.Validate(name, NameRules()...))
}

// ValidatePhoneNumber fails unless number is exactly ten decimal digits
func ValidatePhoneNumber(number string) error {
	return apperror.FromValidation(FieldPhoneNumber, validation.Validate(number, PhoneNumberRules()...))
}

// NameTakenError is returned when another author already uses the name
func NameTakenError() error {
	return apperror.NewValidation(FieldName, MsgNameTaken)
}
