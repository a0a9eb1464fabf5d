package repository

import (
	"time"

	"vocabtrainer/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// WordRepository defines vocabulary entry operations
type WordRepository interface {
	SaveWord(userID int64, term, translation string) error
	SaveWords(userID int64, pairs []domain.Pair) (int, error)
	UpdateWord(userID int64, id int, term, translation string) error
	DeleteWord(userID int64, id int) error
	DeleteWords(userID int64, ids []int) (int64, error)
	ListWords(userID int64) ([]domain.Entry, error)
	GetRandomWord(userID int64) (*domain.Entry, error)
	GetDaysWithWords(userID int64, limit, offset int) ([]domain.Day, error)
	GetTotalDaysCount(userID int64) (int, error)
	GetWordsByDate(userID int64, date time.Time) ([]domain.Entry, error)
	RecordResult(id int, correct bool, at time.Time) error
}

// ReadingRepository defines reading text operations
type ReadingRepository interface {
	SaveText(text *domain.ReadingText) error
	ListTexts(userID int64) ([]domain.ReadingText, error)
	GetText(userID int64, id int) (*domain.ReadingText, error)
	DeleteText(userID int64, id int) error
}

// QuizRepository defines quiz history operations
type QuizRepository interface {
	SaveSummary(summary domain.QuizSummary) error
	ListSummaries(userID int64, limit int) ([]domain.QuizSummary, error)
	CleanOldSummaries(days int) (int64, error)
}
