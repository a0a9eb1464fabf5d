package service

import (
	"fmt"
	"strings"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/reading"
	"vocabtrainer/internal/repository"

	"go.uber.org/zap"
)

// ReadingService manages reading texts and their vocabulary analysis
type ReadingService struct {
	readingRepo repository.ReadingRepository
	wordRepo    repository.WordRepository
	logger      *zap.Logger
}

// NewReadingService creates a new reading service
func NewReadingService(readingRepo repository.ReadingRepository, wordRepo repository.WordRepository, logger *zap.Logger) *ReadingService {
	return &ReadingService{
		readingRepo: readingRepo,
		wordRepo:    wordRepo,
		logger:      logger,
	}
}

// AddText analyses content against the user's vocabulary and stores it
func (s *ReadingService) AddText(userID int64, title, content string) (*domain.ReadingText, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyText
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled"
	}

	entries, err := s.wordRepo.ListWords(userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	text := reading.Analyze(title, content, entries)
	text.UserID = userID
	if err := s.readingRepo.SaveText(&text); err != nil {
		return nil, fmt.Errorf("save reading text: %w", err)
	}

	s.logger.Info("Reading text saved",
		zap.Int64("user_id", userID),
		zap.Int("text_id", text.ID),
		zap.Int("words", text.WordCount),
		zap.Int("vocabulary_matches", text.VocabularyMatches),
	)
	return &text, nil
}

// ListTexts returns the user's reading texts without content
func (s *ReadingService) ListTexts(userID int64) ([]domain.ReadingText, error) {
	return s.readingRepo.ListTexts(userID)
}

// Open returns a text together with the vocabulary currently found in it
func (s *ReadingService) Open(userID int64, id int) (*domain.ReadingText, []domain.VocabMatch, error) {
	text, err := s.readingRepo.GetText(userID, id)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.wordRepo.ListWords(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list words: %w", err)
	}
	return text, reading.FindVocabulary(text.Content, entries), nil
}

// DeleteText removes a reading text
func (s *ReadingService) DeleteText(userID int64, id int) error {
	return s.readingRepo.DeleteText(userID, id)
}

// Stats aggregates the user's reading texts
func (s *ReadingService) Stats(userID int64) (domain.ReadingStats, error) {
	texts, err := s.readingRepo.ListTexts(userID)
	if err != nil {
		return domain.ReadingStats{}, err
	}
	return reading.Summarize(texts), nil
}
