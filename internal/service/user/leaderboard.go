package user

import (
	"context"
	"fmt"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// Leaderboard returns the top users by total score, highest first. The
// limit is clamped to [1, cfg.LeaderboardMaxLimit]; zero and negative
// values fall back to the default of 10.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > s.cfg.LeaderboardMaxLimit {
		limit = s.cfg.LeaderboardMaxLimit
	}

	users, err := s.users.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return users, nil
}
