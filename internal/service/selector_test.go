package service

import (
	"testing"
	"time"

	"wordfight/internal/domain"
	"wordfight/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSelectNext(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	fresh := testutil.NewTestWord("fresh", "", 0)
	freshBusy := testutil.NewTestWord("fresh-busy", "", 2)
	old := testutil.NewSeenWord("old", 1, base)
	recent := testutil.NewSeenWord("recent", 1, base.Add(time.Hour))
	mastered := testutil.NewTestWord("mastered", "", 5)
	masteredOld := testutil.NewSeenWord("mastered-old", 9, base.Add(-time.Hour))

	tests := []struct {
		name      string
		words     []domain.Word
		threshold int
		lastID    uuid.UUID
		expected  string
		ok        bool
	}{
		{
			name:      "empty store",
			words:     nil,
			threshold: 5,
			ok:        false,
		},
		{
			name:      "everything mastered",
			words:     []domain.Word{mastered, masteredOld},
			threshold: 5,
			ok:        false,
		},
		{
			name:      "never seen comes first",
			words:     []domain.Word{recent, old, fresh},
			threshold: 5,
			expected:  "fresh",
			ok:        true,
		},
		{
			name:      "oldest seen wins among seen words",
			words:     []domain.Word{recent, old},
			threshold: 5,
			expected:  "old",
			ok:        true,
		},
		{
			name:      "lower repeat count breaks ties",
			words:     []domain.Word{freshBusy, fresh},
			threshold: 5,
			expected:  "fresh",
			ok:        true,
		},
		{
			name:      "store order breaks full ties",
			words:     []domain.Word{fresh, testutil.NewTestWord("twin", "", 0)},
			threshold: 5,
			expected:  "fresh",
			ok:        true,
		},
		{
			name:      "mastered words are skipped",
			words:     []domain.Word{masteredOld, recent},
			threshold: 5,
			expected:  "recent",
			ok:        true,
		},
		{
			name:      "last presented word is avoided",
			words:     []domain.Word{fresh, recent},
			threshold: 5,
			lastID:    fresh.ID,
			expected:  "recent",
			ok:        true,
		},
		{
			name:      "last presented word repeats when it is the only one",
			words:     []domain.Word{fresh, mastered},
			threshold: 5,
			lastID:    fresh.ID,
			expected:  "fresh",
			ok:        true,
		},
		{
			name:      "lower threshold masters more words",
			words:     []domain.Word{old, freshBusy},
			threshold: 2,
			expected:  "old",
			ok:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := SelectNext(tt.words, tt.threshold, tt.lastID)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, w.Spelling)
			}
		})
	}
}

func TestSelectNext_NeverPicksMastered(t *testing.T) {
	words := []domain.Word{
		testutil.NewTestWord("a", "", 5),
		testutil.NewTestWord("b", "", 4),
		testutil.NewTestWord("c", "", 10),
		testutil.NewTestWord("d", "", 0),
	}

	var lastID uuid.UUID
	for i := 0; i < 20; i++ {
		w, ok := SelectNext(words, 5, lastID)
		assert.True(t, ok)
		assert.False(t, w.IsMastered(5))
		assert.NotEqual(t, lastID, w.ID)
		lastID = w.ID
	}
}
