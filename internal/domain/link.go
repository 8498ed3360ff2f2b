package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WordCategoryLink associates a word with a category. The document's
// presence is the sole existence signal; there is no separate flag.
type WordCategoryLink struct {
	ID         string
	WordID     uuid.UUID
	CategoryID uuid.UUID
	UserID     uuid.UUID
	CreatedAt  time.Time
}

// WordCategoryLinkID builds the deterministic composite id "{wordID}_{categoryID}".
// The format is a public contract of the storage layout: external tooling
// depends on it, so it must not change.
func WordCategoryLinkID(wordID, categoryID uuid.UUID) string {
	return fmt.Sprintf("%s_%s", wordID, categoryID)
}
