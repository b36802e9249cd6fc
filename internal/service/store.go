package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"wordfight/internal/domain"
	"wordfight/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validate = validator.New()

// WordStore keeps the ordered word list and mirrors every change to the
// words slot. Mutations hold the lock until the slot write finishes.
type WordStore struct {
	slots  repository.SlotRepository
	logger *zap.Logger
	now    func() time.Time

	mu    sync.Mutex
	words []domain.Word
}

// NewWordStore creates an empty word store backed by slots
func NewWordStore(slots repository.SlotRepository, logger *zap.Logger) *WordStore {
	return &WordStore{
		slots:  slots,
		logger: logger,
		now:    time.Now,
	}
}

// Load replaces the in-memory list with the persisted snapshot.
// A corrupt snapshot is logged and treated as empty.
func (s *WordStore) Load(ctx context.Context) error {
	data, err := s.slots.Get(ctx, repository.WordsKey)
	if err != nil {
		return fmt.Errorf("failed to read words: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = s.decode(data)
	s.logger.Info("Words loaded", zap.Int("count", len(s.words)))
	return nil
}

func (s *WordStore) decode(data []byte) []domain.Word {
	if len(data) == 0 {
		return nil
	}

	var stored []domain.Word
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.Warn("Stored words are malformed, starting with an empty list", zap.Error(err))
		return nil
	}

	words := make([]domain.Word, 0, len(stored))
	seen := make(map[uuid.UUID]bool, len(stored))
	for i, w := range stored {
		if w.RepeatCount < 0 {
			s.logger.Warn("Clamping negative repeat count",
				zap.Int("index", i),
				zap.Int("repeat_count", w.RepeatCount),
			)
			w.RepeatCount = 0
		}
		if err := validate.Struct(w); err != nil {
			s.logger.Warn("Dropping invalid stored word",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		// Snapshots written before ids existed carry none
		if w.ID == uuid.Nil || seen[w.ID] {
			w.ID = uuid.New()
		}
		seen[w.ID] = true
		words = append(words, w)
	}
	return words
}

// Words returns a copy of the list in store order
func (s *WordStore) Words() []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Word, len(s.words))
	copy(out, s.words)
	return out
}

// Len returns the number of words
func (s *WordStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

// At returns the word at index
func (s *WordStore) At(index int) (domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.words) {
		return domain.Word{}, fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	return s.words[index], nil
}

// Get returns the word with the given id
func (s *WordStore) Get(id uuid.UUID) (domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return domain.Word{}, domain.ErrWordNotFound
	}
	return s.words[index], nil
}

// IndexOf returns the position of the word with the given id, or -1
func (s *WordStore) IndexOf(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id)
}

func (s *WordStore) indexOf(id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}
	for i, w := range s.words {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// Append adds w at the end of the list and persists
func (s *WordStore) Append(ctx context.Context, w domain.Word) (domain.Word, error) {
	if err := validate.Struct(w); err != nil {
		return domain.Word{}, fmt.Errorf("%w: %v", domain.ErrInvalidWord, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ID == uuid.Nil || s.indexOf(w.ID) >= 0 {
		w.ID = uuid.New()
	}
	if w.CreatedAt == nil {
		now := s.now()
		w.CreatedAt = &now
	}

	prev := s.words
	s.words = append(append(make([]domain.Word, 0, len(prev)+1), prev...), w)
	if err := s.persist(ctx); err != nil {
		s.words = prev
		return domain.Word{}, err
	}
	return w, nil
}

// ReplaceAt overwrites the word at index with w and persists.
// The replaced word keeps its id and creation time.
func (s *WordStore) ReplaceAt(ctx context.Context, index int, w domain.Word) (domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceAt(ctx, index, w)
}

// ReplaceByID overwrites the word with the given id and persists
func (s *WordStore) ReplaceByID(ctx context.Context, id uuid.UUID, w domain.Word) (domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return domain.Word{}, domain.ErrWordNotFound
	}
	return s.replaceAt(ctx, index, w)
}

// Modify applies fn to the word with the given id and persists the result
func (s *WordStore) Modify(ctx context.Context, id uuid.UUID, fn func(*domain.Word)) (domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return domain.Word{}, domain.ErrWordNotFound
	}
	w := s.words[index]
	fn(&w)
	return s.replaceAt(ctx, index, w)
}

func (s *WordStore) replaceAt(ctx context.Context, index int, w domain.Word) (domain.Word, error) {
	if index < 0 || index >= len(s.words) {
		return domain.Word{}, fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	if err := validate.Struct(w); err != nil {
		return domain.Word{}, fmt.Errorf("%w: %v", domain.ErrInvalidWord, err)
	}

	old := s.words[index]
	w.ID = old.ID
	if w.CreatedAt == nil {
		w.CreatedAt = old.CreatedAt
	}

	s.words[index] = w
	if err := s.persist(ctx); err != nil {
		s.words[index] = old
		return domain.Word{}, err
	}
	return w, nil
}

// RemoveAt deletes the word at index and persists
func (s *WordStore) RemoveAt(ctx context.Context, index int) (domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeAt(ctx, index)
}

// RemoveByID deletes the word with the given id and persists
func (s *WordStore) RemoveByID(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return domain.Word{}, domain.ErrWordNotFound
	}
	return s.removeAt(ctx, index)
}

func (s *WordStore) removeAt(ctx context.Context, index int) (domain.Word, error) {
	if index < 0 || index >= len(s.words) {
		return domain.Word{}, fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}

	prev := s.words
	removed := prev[index]
	next := make([]domain.Word, 0, len(prev)-1)
	next = append(next, prev[:index]...)
	next = append(next, prev[index+1:]...)

	s.words = next
	if err := s.persist(ctx); err != nil {
		s.words = prev
		return domain.Word{}, err
	}
	return removed, nil
}

// Persist writes the whole list to the words slot
func (s *WordStore) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx)
}

func (s *WordStore) persist(ctx context.Context) error {
	words := s.words
	if words == nil {
		words = []domain.Word{}
	}

	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to encode words: %w", err)
	}

	if err := s.slots.Set(ctx, repository.WordsKey, data); err != nil {
		s.logger.Error("Failed to persist words", zap.Error(err), zap.Int("count", len(words)))
		return fmt.Errorf("failed to persist words: %w", err)
	}
	return nil
}
