package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cms-backend/internal/shared/apperror"
)

// CreatePostRequest - POST /api/v1/posts
type CreatePostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Summary  *string  `json:"summary,omitempty"`
	Category Category `json:"category"`
}

func (r CreatePostRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, TitleRules()...),
		validation.Field(&r.Content, ContentRules()...),
		validation.Field(&r.Summary, SummaryRules()...),
		validation.Field(&r.Category, CategoryRules()...),
	)
	return apperror.FromValidation("", err)
}

// ToEntity converts the request into a validated Post
func (r CreatePostRequest) ToEntity() (*Post, error) {
	return NewPost(r.Title, r.Content, r.Summary, r.Category)
}

// UpdatePostRequest - PATCH /api/v1/posts/:id
type UpdatePostRequest struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Summary  *string   `json:"summary,omitempty"`
	Category *Category `json:"category,omitempty"`

	// ClearSummary removes the summary; a JSON null cannot be told apart from an absent field
	ClearSummary bool `json:"clear_summary,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, TitleRules()...)),
		validation.Field(&r.Content, validation.When(r.Content != nil, ContentRules()...)),
		validation.Field(&r.Summary, SummaryRules()...),
		validation.Field(&r.Category, validation.When(r.Category != nil, CategoryRules()...)),
	)
	return apperror.FromValidation("", err)
}

func (r UpdatePostRequest) IsEmpty() bool {
	return r.Title == nil && r.Content == nil && r.Summary == nil && r.Category == nil && !r.ClearSummary
}

// ApplyTo assigns the present fields to a copy of the post and only writes the
// copy back when every assignment succeeded
func (r UpdatePostRequest) ApplyTo(p *Post) error {
	next := *p
	if r.Title != nil {
		if err := next.SetTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Content != nil {
		if err := next.SetContent(*r.Content); err != nil {
			return err
		}
	}
	if r.ClearSummary {
		_ = next.SetSummary(nil)
	} else if r.Summary != nil {
		if err := next.SetSummary(r.Summary); err != nil {
			return err
		}
	}
	if r.Category != nil {
		if err := next.SetCategory(*r.Category); err != nil {
			return err
		}
	}
	*p = next
	return nil
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// PostFilter - query parameters for listing. An empty Category lists every post.
type PostFilter struct {
	Category Category `form:"category"`
	Limit    int      `form:"limit"`
	Offset   int      `form:"offset"`
}

// Validate rejects a category filter that no post can have
func (f PostFilter) Validate() error {
	if f.Category != "" && !f.Category.IsValid() {
		return apperror.NewValidation(FieldCategory, MsgCategory)
	}
	return nil
}

// Normalize applies the default page size and clamps out of range values
func (f *PostFilter) Normalize() {
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

// PostResponse - API representation of a post
type PostResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Summary   *string    `json:"summary,omitempty"`
	Category  Category   `json:"category"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (p *Post) ToResponse() *PostResponse {
	return &PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Summary:   p.Summary,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
