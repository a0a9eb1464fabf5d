package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuizMode selects which entries a quiz draws from
type QuizMode string

const (
	ModeRecent10    QuizMode = "recent10"
	ModeRecent30    QuizMode = "recent30"
	ModeRandom      QuizMode = "random"
	ModeIncorrect   QuizMode = "incorrect"
	ModeToday       QuizMode = "today"
	ModeNeverTested QuizMode = "never"
	ModeAll         QuizMode = "all"
)

// QuizModes lists the modes in menu order
var QuizModes = []QuizMode{
	ModeRecent10, ModeRecent30, ModeRandom, ModeIncorrect, ModeToday, ModeNeverTested, ModeAll,
}

// ParseQuizMode resolves a mode name, defaulting to random for an empty string
func ParseQuizMode(s string) (QuizMode, error) {
	if s == "" {
		return ModeRandom, nil
	}
	for _, m := range QuizModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown quiz mode %q", s)
}

// Label returns a human readable mode name
func (m QuizMode) Label() string {
	switch m {
	case ModeRecent10:
		return "Last 10"
	case ModeRecent30:
		return "Last 30"
	case ModeRandom:
		return "Random 30"
	case ModeIncorrect:
		return "Incorrect"
	case ModeToday:
		return "Today"
	case ModeNeverTested:
		return "Never tested"
	case ModeAll:
		return "All"
	default:
		return string(m)
	}
}

// Direction tells which side of an entry is shown as the prompt
type Direction int

const (
	// TermToTranslation shows the term and expects the translation
	TermToTranslation Direction = iota
	// TranslationToTerm shows the translation and expects the term
	TranslationToTerm
)

// Prompt returns the side of the entry shown to the user
func (d Direction) Prompt(e Entry) string {
	if d == TranslationToTerm {
		return e.Translation
	}
	return e.Term
}

// Expected returns the side of the entry the user has to type
func (d Direction) Expected(e Entry) string {
	if d == TranslationToTerm {
		return e.Term
	}
	return e.Translation
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == TranslationToTerm {
		return TermToTranslation
	}
	return TranslationToTerm
}

// QuizResult is the outcome of one answered question
type QuizResult struct {
	Entry   Entry
	Answer  string
	Correct bool
}

// Score is the final tally of a quiz session
type Score struct {
	Correct int
	Asked   int
}

// Wrong returns the number of wrong answers
func (s Score) Wrong() int {
	return s.Asked - s.Correct
}

// Ratio returns correct/asked, 0 for an empty session
func (s Score) Ratio() float64 {
	if s.Asked == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Asked)
}

// Percent returns the success rate in percent
func (s Score) Percent() float64 {
	return s.Ratio() * 100
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Asked)
}

// QuizSummary is the persisted record of a finished quiz
type QuizSummary struct {
	ID         uuid.UUID
	UserID     int64
	Mode       QuizMode
	Asked      int
	Correct    int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Score returns the summary tally
func (q QuizSummary) Score() Score {
	return Score{Correct: q.Correct, Asked: q.Asked}
}
