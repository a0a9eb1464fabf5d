package postgres

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"vocabtrainer/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizRepo_SaveSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQuizRepo(db)
	started := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	summary := domain.QuizSummary{
		ID:         uuid.New(),
		UserID:     123,
		Mode:       domain.ModeIncorrect,
		Asked:      10,
		Correct:    7,
		StartedAt:  started,
		FinishedAt: started.Add(5 * time.Minute),
	}

	mock.ExpectExec("INSERT INTO quiz_summaries").
		WithArgs(summary.ID, int64(123), "incorrect", 10, 7, summary.StartedAt, summary.FinishedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SaveSummary(summary))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepo_ListSummaries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQuizRepo(db)
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "mode", "asked", "correct", "started_at", "finished_at"}).
		AddRow(id.String(), 123, "random", 30, 21, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY finished_at DESC LIMIT $2")).
		WithArgs(int64(123), 5).
		WillReturnRows(rows)

	summaries, err := repo.ListSummaries(123, 5)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, id, summaries[0].ID)
	assert.Equal(t, domain.ModeRandom, summaries[0].Mode)
	assert.Equal(t, domain.Score{Correct: 21, Asked: 30}, summaries[0].Score())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepo_CleanOldSummaries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQuizRepo(db)

	mock.ExpectExec("DELETE FROM quiz_summaries WHERE finished_at").
		WithArgs(180).
		WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectExec("DELETE FROM quiz_summaries").
		WithArgs(30).
		WillReturnError(fmt.Errorf("exec error"))

	n, err := repo.CleanOldSummaries(180)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), n)

	_, err = repo.CleanOldSummaries(30)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
