package model

import (
	"fmt"
	"time"
)

// Post represents a persisted post record.
// A Post built through NewPost or the setters always satisfies every field rule.
type Post struct {
	ID        int64      `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	Summary   *string    `json:"summary,omitempty" db:"summary"`
	Category  Category   `json:"category" db:"category"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// NewPost validates all fields and builds the post only if every one passes
func NewPost(title, content string, summary *string, category Category) (*Post, error) {
	p := &Post{}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	if err := p.SetContent(content); err != nil {
		return nil, err
	}
	if err := p.SetSummary(summary); err != nil {
		return nil, err
	}
	if err := p.SetCategory(category); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Post) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	p.Title = title
	return nil
}

func (p *Post) SetContent(content string) error {
	if err := ValidateContent(content); err != nil {
		return err
	}
	p.Content = content
	return nil
}

// SetSummary assigns an optional summary; nil clears it
func (p *Post) SetSummary(summary *string) error {
	if err := ValidateSummary(summary); err != nil {
		return err
	}
	if summary != nil {
		s := *summary
		summary = &s
	}
	p.Summary = summary
	return nil
}

func (p *Post) SetCategory(category Category) error {
	if err := ValidateCategory(string(category)); err != nil {
		return err
	}
	p.Category = category
	return nil
}

func (p Post) String() string {
	summary := "None"
	if p.Summary != nil {
		summary = *p.Summary
	}
	return fmt.Sprintf("Post(id=%d, title=%s content=%s, summary=%s)", p.ID, p.Title, p.Content, summary)
}
