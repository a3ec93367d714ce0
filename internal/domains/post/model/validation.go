package model

import (
	"fmt"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cms-backend/internal/shared/apperror"
)

const (
	MinContentLength = 250
	MaxSummaryLength = 250

	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSummary  = "summary"
	FieldCategory = "category"

	MsgContentLength = "Content must be at least 250 characters long."
	MsgSummaryLength = "Summary must be a maximum of 250 characters."
	MsgCategory      = "Category must be Fiction or Non-Fiction."
)

// ClickbaitPhrases are the substrings a title must contain at least one of
var ClickbaitPhrases = []string{"Won't Believe", "Secret", "Top", "Guess"}

// containsAnyRule passes when the string value contains one of the phrases
type containsAnyRule struct {
	phrases []string
	err     validation.Error
}

// TitleContainsAny builds a case-sensitive substring rule over phrases.
// Unlike most ozzo rules it does not skip empty values, so "" fails.
func TitleContainsAny(phrases ...string) validation.Rule {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = "'" + p + "'"
	}
	msg := "Title should be sufficiently clickbait-y and must contain " + joinOr(quoted) + "."

	return containsAnyRule{
		phrases: phrases,
		err:     validation.NewError("validation_title_clickbait", msg),
	}
}

func (r containsAnyRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return r.err
	}
	s, err := validation.EnsureString(value)
	if err != nil {
		return err
	}
	for _, phrase := range r.phrases {
		if strings.Contains(s, phrase) {
			return nil
		}
	}
	return r.err
}

// CategoryIn requires the value to equal one of allowed exactly
func CategoryIn(allowed ...Category) validation.Rule {
	return validation.By(func(value any) error {
		value, isNil := validation.Indirect(value)
		if !isNil {
			var c Category
			switch v := value.(type) {
			case Category:
				c = v
			case string:
				c = Category(v)
			}
			if c.In(allowed...) {
				return nil
			}
		}
		return validation.NewError("validation_category_in", MsgCategory)
	})
}

// minRunes requires at least n characters.
// ozzo's RuneLength skips empty values; content must reject them.
func minRunes(n int, msg string) validation.Rule {
	return validation.By(func(value any) error {
		value, _ = validation.Indirect(value)
		s, _ := value.(string)
		if utf8.RuneCountInString(s) < n {
			return validation.NewError("validation_min_runes", msg)
		}
		return nil
	})
}

func TitleRules() []validation.Rule {
	return []validation.Rule{TitleContainsAny(ClickbaitPhrases...)}
}

func ContentRules() []validation.Rule {
	return []validation.Rule{minRunes(MinContentLength, MsgContentLength)}
}

// SummaryRules skip absent and empty summaries
func SummaryRules() []validation.Rule {
	return []validation.Rule{
		validation.RuneLength(0, MaxSummaryLength).Error(MsgSummaryLength),
	}
}

func CategoryRules() []validation.Rule {
	return []validation.Rule{CategoryIn(Categories...)}
}

// ValidateTitle succeeds iff title contains one of ClickbaitPhrases
func ValidateTitle(title string) error {
	return apperror.FromValidation(FieldTitle, validation.Validate(title, TitleRules()...))
}

// ValidateContent succeeds iff content has at least MinContentLength characters
func ValidateContent(content string) error {
	return apperror.FromValidation(FieldContent, validation.Validate(content, ContentRules()...))
}

// ValidateSummary succeeds iff summary is absent or at most MaxSummaryLength characters
func ValidateSummary(summary *string) error {
	if summary == nil {
		return nil
	}
	return apperror.FromValidation(FieldSummary, validation.Validate(*summary, SummaryRules()...))
}

// ValidateCategory succeeds iff category is exactly one of Categories
func ValidateCategory(category string) error {
	return apperror.FromValidation(FieldCategory, validation.Validate(Category(category), CategoryRules()...))
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s or %s", items[0], items[1])
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
