package domain

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// User represents an application user. Total score is mutated only by
// admin score adjustments; the history of those adjustments lives in
// ScoreHistoryEntry.
type User struct {
	ID         uuid.UUID
	Name       string
	Code       string
	TotalScore int64
	IsAdmin    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UserCodeLength is the fixed length of a user's share code.
const UserCodeLength = 8

// userCodeAlphabet is the canonical code alphabet: uppercase letters and digits.
const userCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewUserCode generates a random share code of UserCodeLength characters.
// The code is assigned once at user creation and is immutable afterwards.
func NewUserCode() (string, error) {
	buf := make([]byte, UserCodeLength)
	max := big.NewInt(int64(len(userCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = userCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// IsValidUserCode reports whether s is a well-formed share code.
func IsValidUserCode(s string) bool {
	if len(s) != UserCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
