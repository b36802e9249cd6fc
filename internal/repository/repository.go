package repository

import "context"

// WordsKey is the slot holding the word snapshot
const WordsKey = "words"

// SlotRepository stores whole values under string keys.
// Get returns nil data and a nil error when the slot is empty.
type SlotRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}
