package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a single vocabulary entry with its repetition metadata
type Word struct {
	ID          uuid.UUID  `json:"id"`
	Spelling    string     `json:"spelling" validate:"required"`
	Translation string     `json:"translation"`
	RepeatCount int        `json:"repeatCount" validate:"gte=0"`
	LastSeenAt  *time.Time `json:"lastSeenAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// NewWord creates a word that is not yet in the store
func NewWord(spelling, translation string) Word {
	return Word{
		Spelling:    spelling,
		Translation: translation,
	}
}

// IsMastered reports whether the word has dropped out of the practice rotation
func (w Word) IsMastered(threshold int) bool {
	return w.RepeatCount >= threshold
}

// SeenBefore reports whether w was presented earlier than other.
// A word that has never been seen comes before any seen word.
func (w Word) SeenBefore(other Word) bool {
	switch {
	case w.LastSeenAt == nil && other.LastSeenAt == nil:
		return false
	case w.LastSeenAt == nil:
		return true
	case other.LastSeenAt == nil:
		return false
	}
	return w.LastSeenAt.Before(*other.LastSeenAt)
}

// Card is what a practice round presents
type Card struct {
	Word            Word
	ShowTranslation bool
	Pronounce       bool
}

// Progress summarizes the store against the current repeat threshold
type Progress struct {
	Total    int
	Learning int
	Mastered int
}
