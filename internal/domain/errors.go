package domain

import "errors"

var (
	// ErrIndexOutOfRange is returned when a store position does not exist
	ErrIndexOutOfRange = errors.New("word index out of range")

	// ErrWordNotFound is returned when a word id is no longer in the store
	ErrWordNotFound = errors.New("word not found")

	// ErrInvalidWord is returned when a word fails validation, e.g. has no spelling
	ErrInvalidWord = errors.New("invalid word")

	// ErrNotEditing is returned when an edit transition runs with nothing selected
	ErrNotEditing = errors.New("no word is selected for editing")

	// ErrInvalidSettings is returned when settings fail validation
	ErrInvalidSettings = errors.New("invalid settings")
)
