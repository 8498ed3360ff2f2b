package word

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// CreateWord creates a word with its initial description and example for the
// authenticated user. A case-insensitive duplicate of the text within the
// user's vocabulary is rejected with a DuplicateError carrying the existing
// word's id. The word and both sub-entities are written in one transaction.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	textSearch := domain.SearchKey(text)

	existing, err := s.words.FindByTextSearch(ctx, userID, textSearch)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find duplicate: %w", err)
	}
	if existing != nil {
		return nil, domain.NewDuplicateError("word", existing.ID.String())
	}

	count, err := s.words.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}
	if count >= s.cfg.MaxWordsPerUser {
		return nil, domain.NewValidationError("words", "limit reached")
	}

	var created *domain.Word
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.words.Create(txCtx, &domain.Word{
			ID:         uuid.New(),
			UserID:     userID,
			Text:       text,
			TextSearch: textSearch,
		})
		if createErr != nil {
			return fmt.Errorf("create word: %w", createErr)
		}

		desc, descErr := s.words.AddDescription(txCtx, &domain.Description{
			ID:        uuid.New(),
			WordID:    created.ID,
			UserID:    userID,
			Text:      strings.TrimSpace(input.Description),
			IsInitial: true,
		})
		if descErr != nil {
			return fmt.Errorf("create initial description: %w", descErr)
		}

		example, exErr := s.words.AddExample(txCtx, &domain.Example{
			ID:        uuid.New(),
			WordID:    created.ID,
			UserID:    userID,
			Text:      strings.TrimSpace(input.Example),
			IsInitial: true,
		})
		if exErr != nil {
			return fmt.Errorf("create initial example: %w", exErr)
		}

		created.Descriptions = []domain.Description{*desc}
		created.Examples = []domain.Example{*example}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("user_id", userID.String()),
		slog.String("word_id", created.ID.String()),
		slog.String("text", text),
	)

	return created, nil
}

// FindDuplicate returns the authenticated user's word matching text
// case-insensitively, or ErrNotFound when no such word exists.
func (s *Service) FindDuplicate(ctx context.Context, text string) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	key := domain.SearchKey(text)
	if key == "" {
		return nil, domain.NewValidationError("text", "required")
	}

	return s.words.FindByTextSearch(ctx, userID, key)
}
