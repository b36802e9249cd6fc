package service

import (
	"wordfight/internal/domain"

	"go.uber.org/zap"
)

// StatsService summarizes learning progress
type StatsService struct {
	store    *WordStore
	settings *SettingsService
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(store *WordStore, settings *SettingsService, logger *zap.Logger) *StatsService {
	return &StatsService{
		store:    store,
		settings: settings,
		logger:   logger,
	}
}

// Summary counts learning and mastered words under the current threshold
func (s *StatsService) Summary() domain.Progress {
	threshold := s.settings.Get().RepeatThreshold

	var p domain.Progress
	for _, w := range s.store.Words() {
		p.Total++
		if w.IsMastered(threshold) {
			p.Mastered++
		} else {
			p.Learning++
		}
	}

	s.logger.Debug("Progress computed",
		zap.Int("total", p.Total),
		zap.Int("mastered", p.Mastered),
		zap.Int("threshold", threshold),
	)
	return p
}
