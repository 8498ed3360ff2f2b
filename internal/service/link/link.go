package link

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// Link associates a word with a category. Both must exist and belong to the
// authenticated user; the word is checked first. Linking an already-linked
// pair is rejected with a DuplicateError carrying the link's composite id.
func (s *Service) Link(ctx context.Context, wordID, categoryID uuid.UUID) (*domain.WordCategoryLink, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateIDs(wordID, categoryID); err != nil {
		return nil, err
	}

	if err := s.checkWord(ctx, userID, wordID); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	linkID := domain.WordCategoryLinkID(wordID, categoryID)
	existing, err := s.links.GetByID(ctx, linkID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find link: %w", err)
	}
	if existing != nil {
		return nil, domain.NewDuplicateError("word_category_link", linkID)
	}

	created, err := s.links.Create(ctx, &domain.WordCategoryLink{
		ID:         linkID,
		WordID:     wordID,
		CategoryID: categoryID,
		UserID:     userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create link: %w", err)
	}

	s.log.InfoContext(ctx, "word linked to category",
		slog.String("user_id", userID.String()),
		slog.String("link_id", linkID),
	)

	return created, nil
}

// Unlink removes the association between a word and a category. The same
// ownership checks as Link apply; an absent link yields ErrNotFound.
func (s *Service) Unlink(ctx context.Context, wordID, categoryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := validateIDs(wordID, categoryID); err != nil {
		return err
	}

	if err := s.checkWord(ctx, userID, wordID); err != nil {
		return err
	}
	if err := s.checkCategory(ctx, userID, categoryID); err != nil {
		return err
	}

	linkID := domain.WordCategoryLinkID(wordID, categoryID)
	if _, err := s.links.GetByID(ctx, linkID); err != nil {
		return err
	}

	if err := s.links.Delete(ctx, linkID); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}

	s.log.InfoContext(ctx, "word unlinked from category",
		slog.String("user_id", userID.String()),
		slog.String("link_id", linkID),
	)

	return nil
}

// WordsForCategory returns the user's words linked to the category. Links
// whose word no longer resolves to the owner are silently skipped.
func (s *Service) WordsForCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if categoryID == uuid.Nil {
		return nil, domain.NewValidationError("category_id", "required")
	}

	if err := s.checkCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	links, err := s.links.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	words := make([]domain.Word, 0, len(links))
	for _, l := range links {
		w, err := s.words.GetByID(ctx, l.WordID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get word %s: %w", l.WordID, err)
		}
		if w.UserID != userID {
			continue
		}
		words = append(words, *w)
	}
	return words, nil
}

// CategoriesForWord returns the user's categories the word is linked to.
func (s *Service) CategoriesForWord(ctx context.Context, wordID uuid.UUID) ([]domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("word_id", "required")
	}

	if err := s.checkWord(ctx, userID, wordID); err != nil {
		return nil, err
	}

	links, err := s.links.ListByWord(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	categories := make([]domain.Category, 0, len(links))
	for _, l := range links {
		c, err := s.categories.GetByID(ctx, l.CategoryID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get category %s: %w", l.CategoryID, err)
		}
		if c.UserID != userID {
			continue
		}
		categories = append(categories, *c)
	}
	return categories, nil
}

func (s *Service) checkWord(ctx context.Context, userID, wordID uuid.UUID) error {
	w, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return err
	}
	if w.UserID != userID {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}

func (s *Service) checkCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	c, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}
	return nil
}

func validateIDs(wordID, categoryID uuid.UUID) error {
	var errs []domain.FieldError
	if wordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if categoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
