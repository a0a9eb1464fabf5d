package reading

import (
	"testing"

	"vocabtrainer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("  \n\t "))
	assert.Equal(t, 11, WordCount("Hello world! This is a test text with hello in it."))
	assert.Equal(t, 3, WordCount("eins\nzwei\t drei"))
}

func TestFindVocabulary(t *testing.T) {
	content := "Hello world! This is a test text with hello in it."
	entries := []domain.Entry{
		domain.NewEntry("hello", "hallo"),
		domain.NewEntry("missing", "fehlt"),
	}

	matches := FindVocabulary(content, entries)

	require.Len(t, matches, 1)
	assert.Equal(t, "hello", matches[0].Entry.Term)
	assert.Equal(t, []domain.Span{{Start: 0, End: 5}, {Start: 38, End: 43}}, matches[0].Positions)
	assert.Equal(t, "Hello", content[0:5])
}

func TestFindVocabulary_WholeWordsOnly(t *testing.T) {
	tests := []struct {
		name    string
		content string
		term    string
		count   int
	}{
		{name: "inside word", content: "Hundehütte", term: "Hund", count: 0},
		{name: "umlaut neighbour", content: "Hundä Hund", term: "Hund", count: 1},
		{name: "punctuation", content: "(Hund), Hund.", term: "hund", count: 2},
		{name: "umlaut term", content: "Über alles, über", term: "über", count: 2},
		{name: "digits attach", content: "cat9 cat", term: "cat", count: 1},
		{name: "phrase", content: "Guten Morgen! guten  morgen", term: "guten morgen", count: 1},
		{name: "regexp metacharacters", content: "a.b and a+b", term: "a+b", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := FindVocabulary(tt.content, []domain.Entry{domain.NewEntry(tt.term, "x")})
			got := 0
			for _, m := range matches {
				got += len(m.Positions)
			}
			assert.Equal(t, tt.count, got)
		})
	}
}

func TestAnalyze(t *testing.T) {
	text := Analyze("Test Title", "Hello world! This is a test text with hello in it.",
		[]domain.Entry{domain.NewEntry("hello", "hallo"), domain.NewEntry("world", "Welt")})

	assert.Equal(t, "Test Title", text.Title)
	assert.Equal(t, 11, text.WordCount)
	assert.Equal(t, 2, text.VocabularyMatches)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, domain.ReadingStats{}, Summarize(nil))

	stats := Summarize([]domain.ReadingText{
		{WordCount: 10, VocabularyMatches: 1},
		{WordCount: 30, VocabularyMatches: 4},
	})

	assert.Equal(t, domain.ReadingStats{
		TotalTexts:          2,
		TotalWords:          40,
		AverageWords:        20,
		TotalVocabMatches:   5,
		AverageVocabMatches: 2.5,
	}, stats)
}

func TestHighlight(t *testing.T) {
	content := "Der Hund sieht die Katze."
	matches := FindVocabulary(content, []domain.Entry{
		domain.NewEntry("katze", "cat"),
		domain.NewEntry("hund", "dog"),
	})

	assert.Equal(t, "Der *Hund* sieht die *Katze*.", Highlight(content, matches, "*", "*"))
	assert.Equal(t, content, Highlight(content, nil, "*", "*"))
}
