package quiz

import (
	"time"

	"vocabtrainer/internal/domain"
)

// RandomModeLimit caps the number of questions in the random mode
const RandomModeLimit = 30

// Candidates returns the entries a mode draws from, given entries in the
// order they were added. now decides which entries count as today.
func Candidates(mode domain.QuizMode, entries []domain.Entry, now time.Time) []domain.Entry {
	switch mode {
	case domain.ModeRecent10:
		return lastN(entries, 10)
	case domain.ModeRecent30:
		return lastN(entries, 30)
	case domain.ModeRandom:
		return filter(entries, func(e domain.Entry) bool { return !e.Mastered() })
	case domain.ModeIncorrect:
		return filter(entries, domain.Entry.AnsweredWrong)
	case domain.ModeToday:
		return filter(entries, func(e domain.Entry) bool { return domain.SameDay(e.CreatedAt, now) })
	case domain.ModeNeverTested:
		return filter(entries, domain.Entry.NeverQueried)
	default:
		return append([]domain.Entry(nil), entries...)
	}
}

// SizeFor returns how many questions a mode asks from its candidates
func SizeFor(mode domain.QuizMode, candidates int) int {
	if mode == domain.ModeRandom && candidates > RandomModeLimit {
		return RandomModeLimit
	}
	return candidates
}

func lastN(entries []domain.Entry, n int) []domain.Entry {
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return append([]domain.Entry(nil), entries...)
}

func filter(entries []domain.Entry, keep func(domain.Entry) bool) []domain.Entry {
	var out []domain.Entry
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
