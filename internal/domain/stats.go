package domain

import "sort"

// Statistics summarises a user's vocabulary and quiz performance
type Statistics struct {
	TotalEntries   int
	QueriedEntries int
	NeverQueried   int
	TotalCorrect   int
	TotalWrong     int
	SuccessRate    float64
	LastWrong      int
}

// ComputeStatistics builds statistics from the entries
func ComputeStatistics(entries []Entry) Statistics {
	var s Statistics
	s.TotalEntries = len(entries)
	for _, e := range entries {
		if !e.NeverQueried() {
			s.QueriedEntries++
		}
		if e.AnsweredWrong() {
			s.LastWrong++
		}
		s.TotalCorrect += e.CorrectCount
		s.TotalWrong += e.WrongCount
	}
	s.NeverQueried = s.TotalEntries - s.QueriedEntries
	if answered := s.TotalCorrect + s.TotalWrong; answered > 0 {
		s.SuccessRate = float64(s.TotalCorrect) / float64(answered) * 100
	}
	return s
}

// MostDifficult returns up to n asked entries ordered by error rate
func MostDifficult(entries []Entry, n int) []Entry {
	var asked []Entry
	for _, e := range entries {
		if e.Attempts() > 0 {
			asked = append(asked, e)
		}
	}
	sort.SliceStable(asked, func(i, j int) bool {
		return asked[i].ErrorRate() > asked[j].ErrorRate()
	})
	if len(asked) > n {
		asked = asked[:n]
	}
	return asked
}
