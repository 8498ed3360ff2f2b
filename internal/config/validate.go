package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Vocab.MaxWordsPerUser <= 0 {
		return fmt.Errorf("vocab.max_words_per_user must be > 0 (got %d)", c.Vocab.MaxWordsPerUser)
	}
	if c.Vocab.MaxCategoriesPerUser <= 0 {
		return fmt.Errorf("vocab.max_categories_per_user must be > 0 (got %d)", c.Vocab.MaxCategoriesPerUser)
	}
	if c.Vocab.LeaderboardMaxLimit <= 0 {
		return fmt.Errorf("vocab.leaderboard_max_limit must be > 0 (got %d)", c.Vocab.LeaderboardMaxLimit)
	}

	return nil
}
