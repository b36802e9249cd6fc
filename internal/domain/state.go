package domain

import "github.com/google/uuid"

// InputState represents what the chat expects the next text message to be
type InputState string

const (
	StateIdle               InputState = "idle"
	StateWaitingSpelling    InputState = "waiting_spelling"
	StateWaitingTranslation InputState = "waiting_translation"
	StateEditingSpelling    InputState = "editing_spelling"
	StateEditingTranslation InputState = "editing_translation"
)

// StateData holds temporary data for the current input state
type StateData struct {
	State       InputState
	CurrentWord string
	WordID      uuid.UUID // word a pending edit applies to
}
