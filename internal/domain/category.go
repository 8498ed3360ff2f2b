package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#FFFFFF"

// Category groups a user's words. NameSearch mirrors Name in lowercase and
// is maintained in lockstep with it, same as Word.TextSearch.
type Category struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	NameSearch string
	Color      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsValidCategoryColor reports whether s looks like a color code:
// exactly 7 characters starting with '#'. The remaining characters are
// not checked against [0-9a-f]; the original system accepted any suffix
// and clients rely on that laxity.
func IsValidCategoryColor(s string) bool {
	return len(s) == 7 && s[0] == '#'
}
