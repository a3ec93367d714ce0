package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cms-backend/internal/shared/apperror"
)

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// Validate checks the shape of every field. Name uniqueness is checked by the service.
func (r CreateAuthorRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, NameRules()...),
		validation.Field(&r.PhoneNumber,
			validation.When(r.PhoneNumber != nil, PhoneNumberRules()...),
		),
	)
	return apperror.FromValidation("", err)
}

// ToEntity converts the request into a validated Author
func (r CreateAuthorRequest) ToEntity() (*Author, error) {
	return NewAuthor(r.Name, r.PhoneNumber)
}

// UpdateAuthorRequest - PATCH /api/v1/authors/:id
// All fields optional; only fields that are present get re-validated and assigned.
type UpdateAuthorRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, NameRules()...),
		),
		validation.Field(&r.PhoneNumber,
			validation.When(r.PhoneNumber != nil, PhoneNumberRules()...),
		),
	)
	return apperror.FromValidation("", err)
}

// IsEmpty reports whether the request carries no changes
func (r UpdateAuthorRequest) IsEmpty() bool {
	return r.Name == nil && r.PhoneNumber == nil
}

// ApplyTo assigns the present fields to a copy of the author and only writes the
// copy back when every assignment succeeded.
func (r UpdateAuthorRequest) ApplyTo(a *Author) error {
	next := *a
	if r.Name != nil {
		if err := next.SetName(*r.Name); err != nil {
			return err
		}
	}
	if r.PhoneNumber != nil {
		if err := next.SetPhoneNumber(r.PhoneNumber); err != nil {
			return err
		}
	}
	*a = next
	return nil
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// AuthorFilter - query parameters for listing
type AuthorFilter struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// Normalize applies the default page size and clamps out of range values
func (f *AuthorFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// AuthorResponse - API representation of an author
type AuthorResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// AuthorListResponse - paginated list
type AuthorListResponse struct {
	Data  []AuthorResponse `json:"data"`
	Total int64            `json:"total"`
}

// ToResponse converts Author to AuthorResponse
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
