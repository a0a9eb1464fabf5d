package service

import (
	"fmt"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/repository"

	"go.uber.org/zap"
)

// DifficultWordsLimit is the number of entries shown as most difficult
const DifficultWordsLimit = 5

// Report bundles the statistics shown to the user
type Report struct {
	Statistics    domain.Statistics
	MostDifficult []domain.Entry
	Reading       domain.ReadingStats
	RecentQuizzes []domain.QuizSummary
}

// StatsService handles statistics and cleanup
type StatsService struct {
	wordRepo      repository.WordRepository
	quizRepo      repository.QuizRepository
	reading       *ReadingService
	retentionDays int
	logger        *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	wordRepo repository.WordRepository,
	quizRepo repository.QuizRepository,
	reading *ReadingService,
	retentionDays int,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		wordRepo:      wordRepo,
		quizRepo:      quizRepo,
		reading:       reading,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Report collects vocabulary, reading and quiz statistics of the user
func (s *StatsService) Report(userID int64, recentQuizzes int) (Report, error) {
	entries, err := s.wordRepo.ListWords(userID)
	if err != nil {
		return Report{}, fmt.Errorf("list words: %w", err)
	}

	report := Report{
		Statistics:    domain.ComputeStatistics(entries),
		MostDifficult: domain.MostDifficult(entries, DifficultWordsLimit),
	}

	if s.reading != nil {
		if report.Reading, err = s.reading.Stats(userID); err != nil {
			return Report{}, fmt.Errorf("reading stats: %w", err)
		}
	}

	if recentQuizzes > 0 {
		if report.RecentQuizzes, err = s.quizRepo.ListSummaries(userID, recentQuizzes); err != nil {
			return Report{}, fmt.Errorf("quiz history: %w", err)
		}
	}
	return report, nil
}

// CleanupOldData removes quiz summaries older than the retention period
func (s *StatsService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old quiz summaries", zap.Int("retention_days", s.retentionDays))

	removed, err := s.quizRepo.CleanOldSummaries(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old quiz summaries", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("removed", removed))
	return nil
}
