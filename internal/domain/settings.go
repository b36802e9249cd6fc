package domain

const (
	DefaultRepeatThreshold = 5
	MaxRepeatThreshold     = 100
)

// Settings holds the practice preferences. They live in memory only.
type Settings struct {
	RepeatThreshold     int `validate:"min=1"`
	ShouldAutoTranslate bool
	ShouldPronounce     bool
}

// DefaultSettings returns the settings every session starts with
func DefaultSettings() Settings {
	return Settings{
		RepeatThreshold:     DefaultRepeatThreshold,
		ShouldAutoTranslate: true,
		ShouldPronounce:     true,
	}
}

// CardFor builds the practice card for w under these settings
func (s Settings) CardFor(w Word) *Card {
	return &Card{
		Word:            w,
		ShowTranslation: s.ShouldAutoTranslate,
		Pronounce:       s.ShouldPronounce,
	}
}
