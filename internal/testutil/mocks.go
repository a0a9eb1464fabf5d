package testutil

import (
	"time"

	"vocabtrainer/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) SaveWord(userID int64, term, translation string) error {
	args := m.Called(userID, term, translation)
	return args.Error(0)
}

func (m *MockWordRepository) SaveWords(userID int64, pairs []domain.Pair) (int, error) {
	args := m.Called(userID, pairs)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) UpdateWord(userID int64, id int, term, translation string) error {
	args := m.Called(userID, id, term, translation)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteWord(userID int64, id int) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteWords(userID int64, ids []int) (int64, error) {
	args := m.Called(userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) ListWords(userID int64) ([]domain.Entry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockWordRepository) GetRandomWord(userID int64) (*domain.Entry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockWordRepository) GetDaysWithWords(userID int64, limit, offset int) ([]domain.Day, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Day), args.Error(1)
}

func (m *MockWordRepository) GetTotalDaysCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) GetWordsByDate(userID int64, date time.Time) ([]domain.Entry, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockWordRepository) RecordResult(id int, correct bool, at time.Time) error {
	args := m.Called(id, correct, at)
	return args.Error(0)
}

// MockReadingRepository is a mock for ReadingRepository
type MockReadingRepository struct {
	mock.Mock
}

func (m *MockReadingRepository) SaveText(text *domain.ReadingText) error {
	args := m.Called(text)
	return args.Error(0)
}

func (m *MockReadingRepository) ListTexts(userID int64) ([]domain.ReadingText, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReadingText), args.Error(1)
}

func (m *MockReadingRepository) GetText(userID int64, id int) (*domain.ReadingText, error) {
	args := m.Called(userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReadingText), args.Error(1)
}

func (m *MockReadingRepository) DeleteText(userID int64, id int) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

// MockQuizRepository is a mock for QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) SaveSummary(summary domain.QuizSummary) error {
	args := m.Called(summary)
	return args.Error(0)
}

func (m *MockQuizRepository) ListSummaries(userID int64, limit int) ([]domain.QuizSummary, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizSummary), args.Error(1)
}

func (m *MockQuizRepository) CleanOldSummaries(days int) (int64, error) {
	args := m.Called(days)
	return args.Get(0).(int64), args.Error(1)
}
