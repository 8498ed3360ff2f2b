package word

import (
	"strings"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
)

// CreateWordInput holds the parameters for creating a word.
type CreateWordInput struct {
	Text        string
	Description string
	Example     string
}

// Validate checks all fields and collects all errors.
func (i CreateWordInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > 200 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 200 characters"})
	}

	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if strings.TrimSpace(i.Example) == "" {
		errs = append(errs, domain.FieldError{Field: "example", Message: "required"})
	}
	if len(i.Example) > 2000 {
		errs = append(errs, domain.FieldError{Field: "example", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWordInput holds the parameters for renaming a word.
type UpdateWordInput struct {
	WordID uuid.UUID
	Text   string
}

// Validate checks all fields and collects all errors.
func (i UpdateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > 200 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddDescriptionInput holds the parameters for adding a description to a word.
type AddDescriptionInput struct {
	WordID uuid.UUID
	Text   string
}

// Validate checks all fields and collects all errors.
func (i AddDescriptionInput) Validate() error {
	return validateSubEntity("word_id", i.WordID, i.Text)
}

// UpdateDescriptionInput holds the parameters for rewriting a description.
type UpdateDescriptionInput struct {
	DescriptionID uuid.UUID
	Text          string
}

// Validate checks all fields and collects all errors.
func (i UpdateDescriptionInput) Validate() error {
	return validateSubEntity("description_id", i.DescriptionID, i.Text)
}

// AddExampleInput holds the parameters for adding an example to a word.
type AddExampleInput struct {
	WordID uuid.UUID
	Text   string
}

// Validate checks all fields and collects all errors.
func (i AddExampleInput) Validate() error {
	return validateSubEntity("word_id", i.WordID, i.Text)
}

// UpdateExampleInput holds the parameters for rewriting an example.
type UpdateExampleInput struct {
	ExampleID uuid.UUID
	Text      string
}

// Validate checks all fields and collects all errors.
func (i UpdateExampleInput) Validate() error {
	return validateSubEntity("example_id", i.ExampleID, i.Text)
}

func validateSubEntity(idField string, id uuid.UUID, text string) error {
	var errs []domain.FieldError

	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: idField, Message: "required"})
	}
	if strings.TrimSpace(text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > 2000 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
