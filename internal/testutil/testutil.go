package testutil

import (
	"time"

	"wordfight/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word with a fresh id
func NewTestWord(spelling, translation string, repeatCount int) domain.Word {
	return domain.Word{
		ID:          uuid.New(),
		Spelling:    spelling,
		Translation: translation,
		RepeatCount: repeatCount,
	}
}

// NewSeenWord creates a test word that was last presented at seenAt
func NewSeenWord(spelling string, repeatCount int, seenAt time.Time) domain.Word {
	w := NewTestWord(spelling, spelling+"-tr", repeatCount)
	w.LastSeenAt = &seenAt
	return w
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
