package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWord_IsMastered(t *testing.T) {
	tests := []struct {
		name        string
		repeatCount int
		threshold   int
		expected    bool
	}{
		{name: "below threshold", repeatCount: 4, threshold: 5, expected: false},
		{name: "at threshold", repeatCount: 5, threshold: 5, expected: true},
		{name: "above threshold", repeatCount: 7, threshold: 5, expected: true},
		{name: "fresh word", repeatCount: 0, threshold: 1, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Word{Spelling: "cat", RepeatCount: tt.repeatCount}
			assert.Equal(t, tt.expected, w.IsMastered(tt.threshold))
		})
	}
}

func TestWord_SeenBefore(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	never := Word{Spelling: "a"}
	seenOld := Word{Spelling: "b", LastSeenAt: &older}
	seenNew := Word{Spelling: "c", LastSeenAt: &newer}

	assert.True(t, never.SeenBefore(seenOld))
	assert.False(t, seenOld.SeenBefore(never))
	assert.False(t, never.SeenBefore(never))
	assert.True(t, seenOld.SeenBefore(seenNew))
	assert.False(t, seenNew.SeenBefore(seenOld))
}

func TestSettings_CardFor(t *testing.T) {
	w := NewWord("cat", "gato")

	card := DefaultSettings().CardFor(w)
	assert.Equal(t, w, card.Word)
	assert.True(t, card.ShowTranslation)
	assert.True(t, card.Pronounce)

	quiet := Settings{RepeatThreshold: 3}
	card = quiet.CardFor(w)
	assert.False(t, card.ShowTranslation)
	assert.False(t, card.Pronounce)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 5, s.RepeatThreshold)
	assert.True(t, s.ShouldAutoTranslate)
	assert.True(t, s.ShouldPronounce)
}
