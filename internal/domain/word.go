package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a user's vocabulary word. TextSearch is the lowercase-normalized
// copy of Text and must be rewritten in the same statement whenever Text
// changes; prefix search and duplicate detection depend on it.
type Word struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Text       string
	TextSearch string
	Stars      int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Descriptions []Description
	Examples     []Example
}

// Description is a word's description sub-entity. IsInitial marks the
// description supplied at word creation; it is informational only.
type Description struct {
	ID        uuid.UUID
	WordID    uuid.UUID
	UserID    uuid.UUID
	Text      string
	IsInitial bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Example is a word's usage-example sub-entity.
type Example struct {
	ID        uuid.UUID
	WordID    uuid.UUID
	UserID    uuid.UUID
	Text      string
	IsInitial bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WordFilter selects and orders a user's words. Zero values fall back to
// repository defaults (created_at DESC, limit 50).
type WordFilter struct {
	// MinStars keeps only words with at least that many stars. nil means
	// no star filter.
	MinStars *int

	// SortBy determines the sort column: "text", "stars", "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC".
	SortOrder string

	Limit  int
	Offset int
}

var (
	descriptionMilestones = map[int]bool{5: true, 10: true, 15: true, 20: true}
	exampleMilestones     = map[int]bool{10: true, 20: true, 30: true, 40: true}
)

// MilestonePrompts are the advisory signals returned after starring a word.
// They are computed from the new star count and never stored.
type MilestonePrompts struct {
	PromptDescription bool
	PromptExample     bool
}

// StarMilestones evaluates milestone prompts for the given star count.
// Description prompts trigger at 5, 10, 15, 20 stars; example prompts at
// 10, 20, 30, 40 stars.
func StarMilestones(stars int) MilestonePrompts {
	return MilestonePrompts{
		PromptDescription: descriptionMilestones[stars],
		PromptExample:     exampleMilestones[stars],
	}
}
