package service

import (
	"wordfight/internal/domain"

	"github.com/google/uuid"
)

// SelectNext picks the word to practice next, or reports false when every
// word is mastered or the list is empty.
//
// Words with RepeatCount below threshold are eligible. The word presented
// last is skipped while another eligible word exists. Among the rest the
// least recently seen wins, then the lower repeat count, then store order.
func SelectNext(words []domain.Word, threshold int, lastID uuid.UUID) (domain.Word, bool) {
	eligible := make([]domain.Word, 0, len(words))
	for _, w := range words {
		if !w.IsMastered(threshold) {
			eligible = append(eligible, w)
		}
	}
	if len(eligible) == 0 {
		return domain.Word{}, false
	}

	best := -1
	for i, w := range eligible {
		if len(eligible) > 1 && lastID != uuid.Nil && w.ID == lastID {
			continue
		}
		if best < 0 || preferred(w, eligible[best]) {
			best = i
		}
	}
	return eligible[best], true
}

func preferred(a, b domain.Word) bool {
	if a.SeenBefore(b) {
		return true
	}
	if b.SeenBefore(a) {
		return false
	}
	return a.RepeatCount < b.RepeatCount
}
