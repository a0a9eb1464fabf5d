package service

import (
	"fmt"
	"testing"
	"time"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_CleanupOldData(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{name: "successful cleanup"},
		{name: "database error", mockError: fmt.Errorf("db error"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quizRepo := new(testutil.MockQuizRepository)
			quizRepo.On("CleanOldSummaries", 180).Return(int64(4), tt.mockError)

			service := NewStatsService(nil, quizRepo, nil, 180, testutil.NewTestLogger())

			err := service.CleanupOldData()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			quizRepo.AssertExpectations(t)
		})
	}
}

func TestStatsService_Report(t *testing.T) {
	asked := time.Now()
	no := false
	entries := []domain.Entry{
		{ID: 1, Term: "Hund", CorrectCount: 3, WrongCount: 1, LastQueried: &asked},
		{ID: 2, Term: "Katze", CorrectCount: 0, WrongCount: 2, LastQueried: &asked, LastResult: &no},
		{ID: 3, Term: "Maus"},
	}

	wordRepo := new(testutil.MockWordRepository)
	quizRepo := new(testutil.MockQuizRepository)
	readingRepo := new(testutil.MockReadingRepository)
	wordRepo.On("ListWords", int64(123)).Return(entries, nil)
	quizRepo.On("ListSummaries", int64(123), 3).Return([]domain.QuizSummary{{Asked: 10, Correct: 8}}, nil)
	readingRepo.On("ListTexts", int64(123)).Return([]domain.ReadingText{{WordCount: 10}}, nil)

	reading := NewReadingService(readingRepo, wordRepo, testutil.NewTestLogger())
	service := NewStatsService(wordRepo, quizRepo, reading, 180, testutil.NewTestLogger())

	report, err := service.Report(123, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Statistics.TotalEntries)
	assert.Equal(t, 1, report.Statistics.NeverQueried)
	assert.Equal(t, 1, report.Statistics.LastWrong)
	assert.InDelta(t, 50.0, report.Statistics.SuccessRate, 0.001)
	require.Len(t, report.MostDifficult, 2)
	assert.Equal(t, "Katze", report.MostDifficult[0].Term)
	assert.Equal(t, 1, report.Reading.TotalTexts)
	assert.Len(t, report.RecentQuizzes, 1)
}

func TestStatsService_ReportError(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	wordRepo.On("ListWords", int64(123)).Return(nil, fmt.Errorf("db error"))

	_, err := NewStatsService(wordRepo, nil, nil, 180, testutil.NewTestLogger()).Report(123, 0)

	assert.Error(t, err)
}
