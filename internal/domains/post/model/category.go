package model

// Category is the literal genre of a post
type Category string

const (
	CategoryFiction    Category = "Fiction"
	CategoryNonFiction Category = "Non-Fiction"
)

// Categories lists every accepted category, compared case-sensitively
var Categories = []Category{CategoryFiction, CategoryNonFiction}

// IsValid checks c against Categories
func (c Category) IsValid() bool {
	return c.In(Categories...)
}

// In reports whether c equals one of allowed exactly
func (c Category) In(allowed ...Category) bool {
	for _, a := range allowed {
		if c == a {
			return true
		}
	}
	return false
}
