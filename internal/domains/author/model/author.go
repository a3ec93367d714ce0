package model

import (
	"fmt"
	"time"
)

// Author represents a persisted author record.
// Fields are only changed through the validated setters so an invalid value
// never reaches the repository.
type Author struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	PhoneNumber *string    `json:"phone_number,omitempty" db:"phone_number"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// NewAuthor builds an author after validating every field.
// Nothing is returned when any field fails.
func NewAuthor(name string, phone *string) (*Author, error) {
	a := &Author{}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	if err := a.SetPhoneNumber(phone); err != nil {
		return nil, err
	}
	return a, nil
}

// SetName validates and assigns the name. Uniqueness is checked by the service
// because it needs the store.
func (a *Author) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	a.Name = name
	return nil
}

// SetPhoneNumber validates and assigns the phone number. A nil phone clears it.
func (a *Author) SetPhoneNumber(phone *string) error {
	if phone != nil {
		if err := ValidatePhoneNumber(*phone); err != nil {
			return err
		}
		p := *phone
		phone = &p
	}
	a.PhoneNumber = phone
	return nil
}

func (a Author) String() string {
	return fmt.Sprintf("Author(id=%d, name=%s)", a.ID, a.Name)
}
