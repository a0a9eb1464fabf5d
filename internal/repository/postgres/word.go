package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vocabtrainer/internal/domain"

	"github.com/lib/pq"
)

const entryColumns = `id, user_id, term, translation, created_at, last_queried, last_result, correct_count, wrong_count`

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db  *sql.DB
	loc *time.Location
}

// NewWordRepo creates a new word repository. Days are computed in loc.
func NewWordRepo(db *sql.DB, loc *time.Location) *WordRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &WordRepo{db: db, loc: loc}
}

// SaveWord saves a term-translation pair
func (r *WordRepo) SaveWord(userID int64, term, translation string) error {
	query := `
		INSERT INTO words (user_id, term, translation)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, userID, term, translation)
	return err
}

// SaveWords saves pairs in one transaction, keeping their order
func (r *WordRepo) SaveWords(userID int64, pairs []domain.Pair) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.Prepare(`INSERT INTO words (user_id, term, translation) VALUES ($1, $2, $3)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, p := range pairs {
		if _, err := stmt.Exec(userID, p.Term, p.Translation); err != nil {
			return 0, fmt.Errorf("insert pair %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(pairs), nil
}

// UpdateWord changes the term and translation of an entry
func (r *WordRepo) UpdateWord(userID int64, id int, term, translation string) error {
	query := `
		UPDATE words
		SET term = $3, translation = $4
		WHERE user_id = $1 AND id = $2
	`
	res, err := r.db.Exec(query, userID, id, term, translation)
	if err != nil {
		return err
	}
	return expectAffected(res, "word", id)
}

// DeleteWord removes an entry
func (r *WordRepo) DeleteWord(userID int64, id int) error {
	res, err := r.db.Exec(`DELETE FROM words WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	return expectAffected(res, "word", id)
}

// DeleteWords removes several entries at once
func (r *WordRepo) DeleteWords(userID int64, ids []int) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM words WHERE user_id = $1 AND id = ANY($2)`, userID, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListWords returns all entries of the user in insertion order
func (r *WordRepo) ListWords(userID int64) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM words
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetRandomWord returns a random entry of the user, nil when there is none
func (r *WordRepo) GetRandomWord(userID int64) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM words
		WHERE user_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`
	e, err := scanEntry(r.db.QueryRow(query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetDaysWithWords returns days that have entries with counts, newest first
func (r *WordRepo) GetDaysWithWords(userID int64, limit, offset int) ([]domain.Day, error) {
	query := `
		SELECT DATE(created_at AT TIME ZONE $2) AS day, COUNT(*) AS count
		FROM words
		WHERE user_id = $1
		GROUP BY day
		ORDER BY day DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(query, userID, r.loc.String(), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.Date, &d.WordCount); err != nil {
			return nil, err
		}
		d.Date = time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, r.loc)
		days = append(days, d)
	}

	return days, rows.Err()
}

// GetTotalDaysCount returns the number of days with entries
func (r *WordRepo) GetTotalDaysCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(created_at AT TIME ZONE $2))
		FROM words
		WHERE user_id = $1
	`

	var count int
	err := r.db.QueryRow(query, userID, r.loc.String()).Scan(&count)
	return count, err
}

// GetWordsByDate returns the entries added on the given calendar day
func (r *WordRepo) GetWordsByDate(userID int64, date time.Time) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM words
		WHERE user_id = $1
			AND DATE(created_at AT TIME ZONE $2) = $3::date
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query, userID, r.loc.String(), date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// RecordResult stores the outcome of a quiz answer
func (r *WordRepo) RecordResult(id int, correct bool, at time.Time) error {
	query := `
		UPDATE words
		SET last_queried = $2,
			last_result = $3,
			correct_count = correct_count + CASE WHEN $3::boolean THEN 1 ELSE 0 END,
			wrong_count = wrong_count + CASE WHEN $3::boolean THEN 0 ELSE 1 END
		WHERE id = $1
	`
	res, err := r.db.Exec(query, id, at, correct)
	if err != nil {
		return err
	}
	return expectAffected(res, "word", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (domain.Entry, error) {
	var (
		e           domain.Entry
		lastQueried sql.NullTime
		lastResult  sql.NullBool
	)
	err := row.Scan(&e.ID, &e.UserID, &e.Term, &e.Translation, &e.CreatedAt,
		&lastQueried, &lastResult, &e.CorrectCount, &e.WrongCount)
	if err != nil {
		return domain.Entry{}, err
	}
	if lastQueried.Valid {
		e.LastQueried = &lastQueried.Time
	}
	if lastResult.Valid {
		e.LastResult = &lastResult.Bool
	}
	return e, nil
}

func scanEntries(rows *sql.Rows) ([]domain.Entry, error) {
	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func expectAffected(res sql.Result, what string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
	}
	return nil
}
