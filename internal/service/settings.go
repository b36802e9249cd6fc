package service

import (
	"fmt"
	"sync"

	"wordfight/internal/domain"
)

// SettingsService holds the session settings in memory
type SettingsService struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsService creates a settings service with the defaults
func NewSettingsService() *SettingsService {
	return &SettingsService{settings: domain.DefaultSettings()}
}

// Get returns the current settings
func (s *SettingsService) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Save replaces the settings if they are valid
func (s *SettingsService) Save(settings domain.Settings) error {
	if err := validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}
	if settings.RepeatThreshold > domain.MaxRepeatThreshold {
		return fmt.Errorf("%w: repeat threshold %d above %d",
			domain.ErrInvalidSettings, settings.RepeatThreshold, domain.MaxRepeatThreshold)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}

// Reset restores the defaults
func (s *SettingsService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = domain.DefaultSettings()
}
