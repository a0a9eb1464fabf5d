package postgres

import (
	"database/sql"

	"vocabtrainer/internal/domain"
)

// QuizRepo implements repository.QuizRepository
type QuizRepo struct {
	db *sql.DB
}

// NewQuizRepo creates a new quiz history repository
func NewQuizRepo(db *sql.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// SaveSummary stores a finished quiz
func (r *QuizRepo) SaveSummary(s domain.QuizSummary) error {
	query := `
		INSERT INTO quiz_summaries (id, user_id, mode, asked, correct, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query, s.ID, s.UserID, string(s.Mode), s.Asked, s.Correct, s.StartedAt, s.FinishedAt)
	return err
}

// ListSummaries returns the latest quizzes of the user, newest first
func (r *QuizRepo) ListSummaries(userID int64, limit int) ([]domain.QuizSummary, error) {
	query := `
		SELECT id, user_id, mode, asked, correct, started_at, finished_at
		FROM quiz_summaries
		WHERE user_id = $1
		ORDER BY finished_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.QuizSummary
	for rows.Next() {
		var (
			s    domain.QuizSummary
			mode string
		)
		if err := rows.Scan(&s.ID, &s.UserID, &mode, &s.Asked, &s.Correct, &s.StartedAt, &s.FinishedAt); err != nil {
			return nil, err
		}
		s.Mode = domain.QuizMode(mode)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// CleanOldSummaries deletes quizzes finished more than days ago
func (r *QuizRepo) CleanOldSummaries(days int) (int64, error) {
	query := `
		DELETE FROM quiz_summaries
		WHERE finished_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.Exec(query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
