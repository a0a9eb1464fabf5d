package postgres

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"vocabtrainer/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingRepo_SaveText(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReadingRepo(db)
	uploaded := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	text := &domain.ReadingText{UserID: 123, Title: "Test Title", Content: "Hello world", WordCount: 2, VocabularyMatches: 1}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reading_texts")).
		WithArgs(int64(123), "Test Title", "Hello world", 2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uploaded_at"}).AddRow(5, uploaded))

	err = repo.SaveText(text)

	require.NoError(t, err)
	assert.Equal(t, 5, text.ID)
	assert.Equal(t, uploaded, text.UploadedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadingRepo_ListTexts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReadingRepo(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "uploaded_at", "word_count", "vocabulary_matches"}).
		AddRow(1, 123, "First", now, 100, 4).
		AddRow(2, 123, "Second", now, 50, 0)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reading_texts WHERE user_id = $1 ORDER BY uploaded_at, id")).
		WithArgs(int64(123)).
		WillReturnRows(rows)

	texts, err := repo.ListTexts(123)

	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Equal(t, "First", texts[0].Title)
	assert.Equal(t, 100, texts[0].WordCount)
	assert.Empty(t, texts[0].Content)
	assert.Equal(t, 0, texts[1].VocabularyMatches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadingRepo_GetText(t *testing.T) {
	tests := []struct {
		name        string
		rows        *sqlmock.Rows
		mockError   error
		expectedErr error
	}{
		{
			name: "found",
			rows: sqlmock.NewRows([]string{"id", "user_id", "title", "content", "uploaded_at", "word_count", "vocabulary_matches"}).
				AddRow(1, 123, "First", "Hello world", time.Now(), 2, 1),
		},
		{
			name:        "missing",
			mockError:   sql.ErrNoRows,
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewReadingRepo(db)
			q := mock.ExpectQuery(regexp.QuoteMeta("FROM reading_texts WHERE user_id = $1 AND id = $2")).
				WithArgs(int64(123), 1)
			if tt.mockError != nil {
				q.WillReturnError(tt.mockError)
			} else {
				q.WillReturnRows(tt.rows)
			}

			text, err := repo.GetText(123, 1)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, text)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Hello world", text.Content)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReadingRepo_DeleteText(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReadingRepo(db)
	query := regexp.QuoteMeta("DELETE FROM reading_texts WHERE user_id = $1 AND id = $2")

	mock.ExpectExec(query).WithArgs(int64(123), 1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs(int64(123), 2).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteText(123, 1))
	assert.ErrorIs(t, repo.DeleteText(123, 2), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
