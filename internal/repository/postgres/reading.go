package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"vocabtrainer/internal/domain"
)

// ReadingRepo implements repository.ReadingRepository
type ReadingRepo struct {
	db *sql.DB
}

// NewReadingRepo creates a new reading text repository
func NewReadingRepo(db *sql.DB) *ReadingRepo {
	return &ReadingRepo{db: db}
}

// SaveText inserts a reading text and fills in its ID and upload time
func (r *ReadingRepo) SaveText(text *domain.ReadingText) error {
	query := `
		INSERT INTO reading_texts (user_id, title, content, word_count, vocabulary_matches)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, uploaded_at
	`
	return r.db.QueryRow(query, text.UserID, text.Title, text.Content, text.WordCount, text.VocabularyMatches).
		Scan(&text.ID, &text.UploadedAt)
}

// ListTexts returns the user's texts without content, oldest first
func (r *ReadingRepo) ListTexts(userID int64) ([]domain.ReadingText, error) {
	query := `
		SELECT id, user_id, title, uploaded_at, word_count, vocabulary_matches
		FROM reading_texts
		WHERE user_id = $1
		ORDER BY uploaded_at, id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var texts []domain.ReadingText
	for rows.Next() {
		var t domain.ReadingText
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.UploadedAt, &t.WordCount, &t.VocabularyMatches); err != nil {
			return nil, err
		}
		texts = append(texts, t)
	}
	return texts, rows.Err()
}

// GetText returns a single text with its content
func (r *ReadingRepo) GetText(userID int64, id int) (*domain.ReadingText, error) {
	query := `
		SELECT id, user_id, title, content, uploaded_at, word_count, vocabulary_matches
		FROM reading_texts
		WHERE user_id = $1 AND id = $2
	`
	var t domain.ReadingText
	err := r.db.QueryRow(query, userID, id).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Content, &t.UploadedAt, &t.WordCount, &t.VocabularyMatches)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reading text %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteText removes a reading text
func (r *ReadingRepo) DeleteText(userID int64, id int) error {
	res, err := r.db.Exec(`DELETE FROM reading_texts WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	return expectAffected(res, "reading text", id)
}
