package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/testutil"
	"vocabtrainer/internal/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransferService_Import(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		format        vocab.Format
		expectedPairs []domain.Pair
		saveError     error
		expectedLine  int
		expectedError bool
	}{
		{
			name:          "tsv",
			input:         "Hund\tdog\nKatze\tcat\n",
			format:        vocab.FormatTSV,
			expectedPairs: []domain.Pair{{Term: "Hund", Translation: "dog"}, {Term: "Katze", Translation: "cat"}},
		},
		{
			name:          "json",
			input:         `[{"term":"Haus","translation":"house"}]`,
			format:        vocab.FormatJSON,
			expectedPairs: []domain.Pair{{Term: "Haus", Translation: "house"}},
		},
		{
			name:         "malformed line aborts",
			input:        "Hund\tdog\nKatze cat\n",
			format:       vocab.FormatTSV,
			expectedLine: 2,
		},
		{
			name:          "empty file",
			input:         "\n\n",
			format:        vocab.FormatTSV,
			expectedPairs: nil,
		},
		{
			name:          "database error",
			input:         "Hund\tdog\n",
			format:        vocab.FormatTSV,
			expectedPairs: []domain.Pair{{Term: "Hund", Translation: "dog"}},
			saveError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			if len(tt.expectedPairs) > 0 {
				mockRepo.On("SaveWords", int64(123), tt.expectedPairs).Return(len(tt.expectedPairs), tt.saveError)
			}

			service := NewTransferService(mockRepo, testutil.NewTestLogger())

			n, err := service.Import(123, strings.NewReader(tt.input), tt.format)

			switch {
			case tt.expectedLine > 0:
				var importErr *domain.ImportError
				require.True(t, errors.As(err, &importErr))
				assert.Equal(t, tt.expectedLine, importErr.Line)
				mockRepo.AssertNotCalled(t, "SaveWords", mock.Anything, mock.Anything)
			case tt.expectedError:
				assert.Error(t, err)
				assert.Zero(t, n)
			default:
				assert.NoError(t, err)
				assert.Equal(t, len(tt.expectedPairs), n)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTransferService_Export(t *testing.T) {
	entries := testutil.NewTestEntries(123, "Hund", "dog", "Katze", "cat")

	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("ListWords", int64(123)).Return(entries, nil)

	var buf bytes.Buffer
	n, err := NewTransferService(mockRepo, testutil.NewTestLogger()).Export(123, &buf, vocab.FormatTSV)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Hund\tdog\nKatze\tcat\n", buf.String())
}

func TestTransferService_ExportError(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("ListWords", int64(123)).Return(nil, fmt.Errorf("db error"))

	_, err := NewTransferService(mockRepo, testutil.NewTestLogger()).Export(123, &bytes.Buffer{}, vocab.FormatCSV)

	assert.Error(t, err)
}
