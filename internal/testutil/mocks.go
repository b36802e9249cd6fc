package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockSlotRepository is a mock for SlotRepository
type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSlotRepository) Set(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

// MemorySlotRepository keeps slots in a map. It stands in for a real
// backend where a test needs to reload what was written.
type MemorySlotRepository struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// NewMemorySlotRepository creates an empty in-memory slot repository
func NewMemorySlotRepository() *MemorySlotRepository {
	return &MemorySlotRepository{slots: make(map[string][]byte)}
}

func (m *MemorySlotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.slots[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *MemorySlotRepository) Set(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = append([]byte(nil), data...)
	return nil
}
