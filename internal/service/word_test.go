package service

import (
	"fmt"
	"testing"
	"time"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWordService_SaveWordPair(t *testing.T) {
	tests := []struct {
		name          string
		term          string
		translation   string
		savedTerm     string
		savedTrans    string
		mockError     error
		expectedError error
	}{
		{name: "valid pair", term: "Hund", translation: "dog", savedTerm: "Hund", savedTrans: "dog"},
		{name: "trims input", term: "  Hund ", translation: " dog\n", savedTerm: "Hund", savedTrans: "dog"},
		{name: "empty translation allowed", term: "Haus", translation: "", savedTerm: "Haus", savedTrans: ""},
		{name: "empty term", term: " ", translation: "dog", expectedError: domain.ErrEmptyTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			if tt.expectedError == nil {
				mockRepo.On("SaveWord", int64(123), tt.savedTerm, tt.savedTrans).Return(tt.mockError)
			}

			service := NewWordService(mockRepo, time.UTC)

			err := service.SaveWordPair(123, tt.term, tt.translation)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "SaveWord", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_DeleteAt(t *testing.T) {
	entries := testutil.NewTestEntries(123, "Hund", "dog", "Katze", "cat", "Maus", "mouse")

	t.Run("deletes by position", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("ListWords", int64(123)).Return(entries, nil)
		mockRepo.On("DeleteWord", int64(123), entries[1].ID).Return(nil)

		removed, err := NewWordService(mockRepo, nil).DeleteAt(123, 1)

		require.NoError(t, err)
		assert.Equal(t, "Katze", removed.Term)
		mockRepo.AssertExpectations(t)
	})

	t.Run("index out of range", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("ListWords", int64(123)).Return(entries, nil)

		_, err := NewWordService(mockRepo, nil).DeleteAt(123, 3)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockRepo.AssertNotCalled(t, "DeleteWord", mock.Anything, mock.Anything)
	})

	t.Run("list error", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("ListWords", int64(123)).Return(nil, fmt.Errorf("db error"))

		_, err := NewWordService(mockRepo, nil).DeleteAt(123, 0)

		assert.Error(t, err)
	})
}

func TestWordService_EditAt(t *testing.T) {
	entries := testutil.NewTestEntries(123, "Hund", "dgo")

	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("ListWords", int64(123)).Return(entries, nil)
	mockRepo.On("UpdateWord", int64(123), entries[0].ID, "Hund", "dog").Return(nil)

	service := NewWordService(mockRepo, nil)

	edited, err := service.EditAt(123, 0, " Hund ", " dog ")
	require.NoError(t, err)
	assert.Equal(t, "dog", edited.Translation)

	_, err = service.EditAt(123, 5, "Hund", "dog")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.EditAt(123, 0, "", "dog")
	assert.ErrorIs(t, err, domain.ErrEmptyTerm)

	mockRepo.AssertExpectations(t)
}

func TestWordService_Search(t *testing.T) {
	entries := testutil.NewTestEntries(123, "Hund", "dog", "Katze", "cat", "Hundehütte", "kennel")

	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("ListWords", int64(123)).Return(entries, nil)

	found, err := NewWordService(mockRepo, nil).Search(123, "hund")

	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, 0, found[0].Index)
	assert.Equal(t, 2, found[1].Index)
	assert.Equal(t, "Hundehütte", found[1].Entry.Term)
}

func TestWordService_Duplicates(t *testing.T) {
	entries := testutil.NewTestEntries(123, "Bank", "bench", "Hund", "dog", "bank", "bank (money)", "BANK", "shore")

	t.Run("groups", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("ListWords", int64(123)).Return(entries, nil)

		groups, err := NewWordService(mockRepo, nil).Duplicates(123)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Len(t, groups[0], 3)
		assert.Equal(t, []int{0, 2, 3}, []int{groups[0][0].Index, groups[0][1].Index, groups[0][2].Index})
	})

	t.Run("remove keeps the first", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("ListWords", int64(123)).Return(entries, nil)
		mockRepo.On("DeleteWords", int64(123), []int{entries[2].ID, entries[3].ID}).Return(int64(2), nil)

		n, err := NewWordService(mockRepo, nil).RemoveDuplicates(123)

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nothing to remove", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("ListWords", int64(123)).Return(entries[:2], nil)

		n, err := NewWordService(mockRepo, nil).RemoveDuplicates(123)

		require.NoError(t, err)
		assert.Zero(t, n)
		mockRepo.AssertNotCalled(t, "DeleteWords", mock.Anything, mock.Anything)
	})
}

func TestWordService_GetRandomPair(t *testing.T) {
	entry := testutil.NewTestEntry(1, 123, "Hund", "dog")

	tests := []struct {
		name          string
		userID        int64
		mockReturn    *domain.Entry
		mockError     error
		expectedError bool
	}{
		{name: "word found", userID: 123, mockReturn: &entry},
		{name: "no words", userID: 456},
		{name: "database error", userID: 789, mockError: fmt.Errorf("db error"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			if tt.mockReturn == nil {
				mockRepo.On("GetRandomWord", tt.userID).Return(nil, tt.mockError)
			} else {
				mockRepo.On("GetRandomWord", tt.userID).Return(tt.mockReturn, tt.mockError)
			}

			got, err := NewWordService(mockRepo, nil).GetRandomPair(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockReturn, got)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_GetDaysList(t *testing.T) {
	tests := []struct {
		name               string
		page               int
		mockDays           []domain.Day
		mockTotalDays      int
		mockError          error
		mockTotalDaysError error
		expectedPages      int
		expectedDaysCount  int
		expectedError      bool
	}{
		{
			name:              "first page",
			page:              1,
			mockDays:          []domain.Day{testutil.NewTestDay(time.Now(), 5), testutil.NewTestDay(time.Now().AddDate(0, 0, -1), 3)},
			mockTotalDays:     14,
			expectedPages:     2,
			expectedDaysCount: 2,
		},
		{
			name:          "negative page defaults to 1",
			page:          -1,
			mockDays:      []domain.Day{},
			mockTotalDays: 7,
			expectedPages: 1,
		},
		{
			name:          "zero total days gives one page",
			page:          1,
			mockDays:      []domain.Day{},
			expectedPages: 1,
		},
		{
			name:          "database error on days",
			page:          1,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:               "database error on total count",
			page:               2,
			mockDays:           []domain.Day{testutil.NewTestDay(time.Now(), 5)},
			mockTotalDaysError: fmt.Errorf("db error"),
			expectedError:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)

			page := tt.page
			if page < 1 {
				page = 1
			}
			offset := (page - 1) * DaysPageSize

			mockRepo.On("GetDaysWithWords", int64(123), DaysPageSize, offset).Return(tt.mockDays, tt.mockError)
			if tt.mockError == nil {
				mockRepo.On("GetTotalDaysCount", int64(123)).Return(tt.mockTotalDays, tt.mockTotalDaysError)
			}

			days, totalPages, err := NewWordService(mockRepo, nil).GetDaysList(123, tt.page)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPages, totalPages)
				assert.Len(t, days, tt.expectedDaysCount)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_GetWordsByDate(t *testing.T) {
	loc := time.FixedZone("Europe/Berlin", 2*60*60)

	t.Run("parses in the configured location", func(t *testing.T) {
		entries := testutil.NewTestEntries(123, "Hund", "dog")
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("GetWordsByDate", int64(123), mock.MatchedBy(func(d time.Time) bool {
			return d.Equal(time.Date(2024, 12, 12, 0, 0, 0, 0, loc))
		})).Return(entries, nil)

		got, err := NewWordService(mockRepo, loc).GetWordsByDate(123, "20241212")

		require.NoError(t, err)
		assert.Equal(t, entries, got)
		mockRepo.AssertExpectations(t)
	})

	for _, bad := range []string{"2024-12-12", ""} {
		t.Run("invalid "+bad, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)

			_, err := NewWordService(mockRepo, loc).GetWordsByDate(123, bad)

			assert.Error(t, err)
			mockRepo.AssertNotCalled(t, "GetWordsByDate", mock.Anything, mock.Anything)
		})
	}
}
