package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"wordfight/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PracticeService runs repetition rounds over the word store
type PracticeService struct {
	store    *WordStore
	settings *SettingsService
	logger   *zap.Logger
	now      func() time.Time

	mu     sync.Mutex
	lastID uuid.UUID
}

// NewPracticeService creates a new practice service
func NewPracticeService(store *WordStore, settings *SettingsService, logger *zap.Logger) *PracticeService {
	return &PracticeService{
		store:    store,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// Next returns the card to present, or nil when there is nothing to practice
func (s *PracticeService) Next() *domain.Card {
	settings := s.settings.Get()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := SelectNext(s.store.Words(), settings.RepeatThreshold, s.lastID)
	if !ok {
		return nil
	}
	s.lastID = w.ID
	return settings.CardFor(w)
}

// Success records a correct recall: the repeat count goes up and the word
// is marked as just seen.
func (s *PracticeService) Success(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	now := s.now()
	w, err := s.store.Modify(ctx, id, func(w *domain.Word) {
		w.RepeatCount++
		w.LastSeenAt = &now
	})
	if err != nil {
		return domain.Word{}, err
	}

	if w.IsMastered(s.settings.Get().RepeatThreshold) {
		s.logger.Info("Word mastered",
			zap.String("word", w.Spelling),
			zap.Int("repeat_count", w.RepeatCount),
		)
	}
	return w, nil
}

// Miss records a failed recall. Only the last seen time moves, which sends
// the word to the back of the queue.
func (s *PracticeService) Miss(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	now := s.now()
	return s.store.Modify(ctx, id, func(w *domain.Word) {
		w.LastSeenAt = &now
	})
}

// Save adds a brand-new word to the end of the store
func (s *PracticeService) Save(ctx context.Context, spelling, translation string) (domain.Word, error) {
	spelling = strings.TrimSpace(spelling)
	translation = strings.TrimSpace(translation)
	if spelling == "" {
		return domain.Word{}, domain.ErrInvalidWord
	}

	w, err := s.store.Append(ctx, domain.NewWord(spelling, translation))
	if err != nil {
		return domain.Word{}, err
	}

	s.logger.Info("Word saved",
		zap.String("word", w.Spelling),
		zap.String("translation", w.Translation),
	)
	return w, nil
}
