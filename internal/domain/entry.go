package domain

import (
	"strings"
	"time"
)

// MasteryThreshold is the number of correct answers after which an entry
// is no longer offered by the random quiz mode
const MasteryThreshold = 5

// Entry represents a term-translation pair with its quiz history
type Entry struct {
	ID           int
	UserID       int64
	Term         string
	Translation  string
	CreatedAt    time.Time
	LastQueried  *time.Time
	LastResult   *bool
	CorrectCount int
	WrongCount   int
}

// Pair is the bare term-translation value used for import and export
type Pair struct {
	Term        string `json:"term"`
	Translation string `json:"translation"`
}

// NewEntry creates an entry from a term and translation
func NewEntry(term, translation string) Entry {
	return Entry{Term: term, Translation: translation}
}

// Pair returns the term-translation pair of the entry
func (e Entry) Pair() Pair {
	return Pair{Term: e.Term, Translation: e.Translation}
}

// Attempts returns how many times the entry was asked in a quiz
func (e Entry) Attempts() int {
	return e.CorrectCount + e.WrongCount
}

// ErrorRate returns the share of wrong answers, 0 when never asked
func (e Entry) ErrorRate() float64 {
	if e.Attempts() == 0 {
		return 0
	}
	return float64(e.WrongCount) / float64(e.Attempts())
}

// Mastered reports whether the entry reached the mastery threshold
func (e Entry) Mastered() bool {
	return e.CorrectCount >= MasteryThreshold
}

// AnsweredWrong reports whether the last quiz answer was wrong
func (e Entry) AnsweredWrong() bool {
	return e.LastResult != nil && !*e.LastResult
}

// NeverQueried reports whether the entry has never been asked
func (e Entry) NeverQueried() bool {
	return e.LastQueried == nil
}

// SameTerm reports whether two entries share a term, ignoring case and surrounding space
func (e Entry) SameTerm(other Entry) bool {
	return NormalizeTerm(e.Term) == NormalizeTerm(other.Term)
}

// NormalizeTerm returns the key used for duplicate detection
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
