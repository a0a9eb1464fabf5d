package service

import (
	"fmt"
	"testing"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReadingService_AddText(t *testing.T) {
	readingRepo := new(testutil.MockReadingRepository)
	wordRepo := new(testutil.MockWordRepository)
	wordRepo.On("ListWords", int64(123)).Return(testutil.NewTestEntries(123, "hello", "hallo"), nil)
	readingRepo.On("SaveText", mock.MatchedBy(func(text *domain.ReadingText) bool {
		return text.UserID == 123 && text.Title == "Test Title" && text.WordCount == 11 && text.VocabularyMatches == 1
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.ReadingText).ID = 9
	}).Return(nil)

	service := NewReadingService(readingRepo, wordRepo, testutil.NewTestLogger())

	text, err := service.AddText(123, " Test Title ", "Hello world! This is a test text with hello in it.")

	require.NoError(t, err)
	assert.Equal(t, 9, text.ID)
	readingRepo.AssertExpectations(t)
}

func TestReadingService_AddTextValidation(t *testing.T) {
	readingRepo := new(testutil.MockReadingRepository)
	wordRepo := new(testutil.MockWordRepository)
	service := NewReadingService(readingRepo, wordRepo, testutil.NewTestLogger())

	_, err := service.AddText(123, "Empty", " \n ")
	assert.ErrorIs(t, err, domain.ErrEmptyText)

	wordRepo.On("ListWords", int64(123)).Return([]domain.Entry{}, nil)
	readingRepo.On("SaveText", mock.MatchedBy(func(text *domain.ReadingText) bool {
		return text.Title == "Untitled"
	})).Return(fmt.Errorf("db error"))

	_, err = service.AddText(123, "", "Some content")
	assert.Error(t, err)
}

func TestReadingService_Open(t *testing.T) {
	readingRepo := new(testutil.MockReadingRepository)
	wordRepo := new(testutil.MockWordRepository)
	readingRepo.On("GetText", int64(123), 1).Return(&domain.ReadingText{ID: 1, Content: "Der Hund und der hund."}, nil)
	readingRepo.On("GetText", int64(123), 2).Return(nil, fmt.Errorf("reading text 2: %w", domain.ErrNotFound))
	wordRepo.On("ListWords", int64(123)).Return(testutil.NewTestEntries(123, "Hund", "dog", "Katze", "cat"), nil)

	service := NewReadingService(readingRepo, wordRepo, testutil.NewTestLogger())

	text, matches, err := service.Open(123, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, text.ID)
	require.Len(t, matches, 1)
	assert.Len(t, matches[0].Positions, 2)

	_, _, err = service.Open(123, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReadingService_Stats(t *testing.T) {
	readingRepo := new(testutil.MockReadingRepository)
	readingRepo.On("ListTexts", int64(123)).Return([]domain.ReadingText{
		{WordCount: 100, VocabularyMatches: 3},
		{WordCount: 50, VocabularyMatches: 1},
	}, nil)

	stats, err := NewReadingService(readingRepo, nil, testutil.NewTestLogger()).Stats(123)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalTexts)
	assert.Equal(t, 75.0, stats.AverageWords)
	assert.Equal(t, 2.0, stats.AverageVocabMatches)
}
