package service

import (
	"context"
	"errors"
	"sync"

	"wordfight/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EditorService is the edit dialog state machine. It is either idle or
// editing exactly one word, held by id and resolved to a position only
// when a transition is applied.
type EditorService struct {
	store  *WordStore
	logger *zap.Logger

	mu       sync.Mutex
	selected uuid.UUID
}

// NewEditorService creates an idle editor over store
func NewEditorService(store *WordStore, logger *zap.Logger) *EditorService {
	return &EditorService{
		store:  store,
		logger: logger,
	}
}

// SelectForEditing opens the word at index, replacing any previous selection
func (s *EditorService) SelectForEditing(index int) (domain.Word, error) {
	w, err := s.store.At(index)
	if err != nil {
		return domain.Word{}, err
	}

	s.mu.Lock()
	s.selected = w.ID
	s.mu.Unlock()

	return w, nil
}

// SelectByID opens the word with the given id
func (s *EditorService) SelectByID(id uuid.UUID) (domain.Word, error) {
	w, err := s.store.Get(id)
	if err != nil {
		return domain.Word{}, err
	}

	s.mu.Lock()
	s.selected = w.ID
	s.mu.Unlock()

	return w, nil
}

// IsEditing reports whether a word is open
func (s *EditorService) IsEditing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected != uuid.Nil
}

// Selected returns the open word. It resets to idle if the word is gone.
func (s *EditorService) Selected() (domain.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == uuid.Nil {
		return domain.Word{}, false
	}
	w, err := s.store.Get(s.selected)
	if err != nil {
		s.selected = uuid.Nil
		return domain.Word{}, false
	}
	return w, true
}

// Cancel closes the dialog without touching the store
func (s *EditorService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = uuid.Nil
}

// Update stores w in place of the open word. An empty spelling deletes
// the word instead. Text is stored as given; callers trim user input.
func (s *EditorService) Update(ctx context.Context, w domain.Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == uuid.Nil {
		return domain.ErrNotEditing
	}

	if w.Spelling == "" {
		return s.deleteSelected(ctx)
	}

	_, err := s.store.ReplaceByID(ctx, s.selected, w)
	return s.finish(err)
}

// Delete removes the open word
func (s *EditorService) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == uuid.Nil {
		return domain.ErrNotEditing
	}
	return s.deleteSelected(ctx)
}

func (s *EditorService) deleteSelected(ctx context.Context) error {
	_, err := s.store.RemoveByID(ctx, s.selected)
	return s.finish(err)
}

// finish returns to idle unless the store failed to persist; then the
// selection stays open.
func (s *EditorService) finish(err error) error {
	if err == nil || errors.Is(err, domain.ErrWordNotFound) || errors.Is(err, domain.ErrInvalidWord) {
		s.selected = uuid.Nil
	}
	if err != nil {
		s.logger.Warn("Edit was not applied", zap.Error(err))
	}
	return err
}
