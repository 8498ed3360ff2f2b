package category

import (
	"strings"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
// An empty Color falls back to domain.DefaultCategoryColor.
type CreateCategoryInput struct {
	Name  string
	Color string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validateColor(i.Color)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCategoryInput holds the parameters for updating a category.
// An empty Color keeps the category's current color.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       string
	Color      string
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validateColor(i.Color)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	var errs []domain.FieldError
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(trimmed) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

func validateColor(color string) []domain.FieldError {
	if color == "" || domain.IsValidCategoryColor(color) {
		return nil
	}
	return []domain.FieldError{{Field: "color", Message: "must be 7 characters starting with '#'"}}
}
