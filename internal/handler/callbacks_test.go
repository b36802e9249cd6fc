package handler

import (
	"testing"

	"wordfight/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "test_data",
			expected: "test_data",
		},
		{
			name:     "string with whitespace",
			input:    "  test_data  ",
			expected: "test_data",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "string with tab",
			input:    "test\tdata",
			expected: "testdata",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "telebot callback prefix",
			input:    "\fpage_2",
			expected: "page_2",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseIDData(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name          string
		data          string
		prefix        string
		expected      uuid.UUID
		expectedError bool
	}{
		{
			name:     "valid id",
			data:     "pick_" + id.String(),
			prefix:   "pick_",
			expected: id,
		},
		{
			name:     "surrounding whitespace",
			data:     "  ok_" + id.String() + " ",
			prefix:   "ok_",
			expected: id,
		},
		{
			name:          "garbage",
			data:          "pick_nope",
			prefix:        "pick_",
			expectedError: true,
		},
		{
			name:          "empty payload",
			data:          "again_",
			prefix:        "again_",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseIDData(tt.data, tt.prefix)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHandler_State(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, nil, zap.NewNop())

	assert.Equal(t, domain.StateIdle, h.GetState(42).State)

	h.SetState(42, &domain.StateData{State: domain.StateWaitingTranslation, CurrentWord: "cat"})
	state := h.GetState(42)
	assert.Equal(t, domain.StateWaitingTranslation, state.State)
	assert.Equal(t, "cat", state.CurrentWord)
	assert.Equal(t, domain.StateIdle, h.GetState(7).State)

	h.ResetState(42)
	assert.Equal(t, domain.StateIdle, h.GetState(42).State)
}
