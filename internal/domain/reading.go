package domain

import "time"

// ReadingText is an uploaded text the user reads against their vocabulary
type ReadingText struct {
	ID                int
	UserID            int64
	Title             string
	Content           string
	UploadedAt        time.Time
	WordCount         int
	VocabularyMatches int
}

// Span is a byte range [Start, End) inside a text
type Span struct {
	Start int
	End   int
}

// VocabMatch lists where an entry's term occurs in a text
type VocabMatch struct {
	Entry     Entry
	Positions []Span
}

// ReadingStats aggregates all reading texts of a user
type ReadingStats struct {
	TotalTexts          int
	TotalWords          int
	AverageWords        float64
	TotalVocabMatches   int
	AverageVocabMatches float64
}
