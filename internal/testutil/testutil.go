package testutil

import (
	"time"

	"vocabtrainer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestEntry creates a persisted entry that was never quizzed
func NewTestEntry(id int, userID int64, term, translation string) domain.Entry {
	return domain.Entry{
		ID:          id,
		UserID:      userID,
		Term:        term,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}

// NewTestEntries creates persisted entries from alternating term and translation values
func NewTestEntries(userID int64, termsAndTranslations ...string) []domain.Entry {
	entries := make([]domain.Entry, 0, len(termsAndTranslations)/2)
	for i := 0; i+1 < len(termsAndTranslations); i += 2 {
		entries = append(entries, NewTestEntry(i/2+1, userID, termsAndTranslations[i], termsAndTranslations[i+1]))
	}
	return entries
}

// NewTestDay creates a test day
func NewTestDay(date time.Time, wordCount int) domain.Day {
	return domain.Day{
		Date:      date,
		WordCount: wordCount,
	}
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
