// Package reading analyses uploaded texts against a user's vocabulary.
package reading

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"vocabtrainer/internal/domain"
)

// WordCount returns the number of whitespace-separated tokens
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// FindVocabulary returns, per entry, every case-insensitive whole-word
// occurrence of its term in content. Entries that do not occur are omitted.
func FindVocabulary(content string, entries []domain.Entry) []domain.VocabMatch {
	var matches []domain.VocabMatch
	for _, e := range entries {
		term := strings.TrimSpace(e.Term)
		if term == "" {
			continue
		}

		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
		var positions []domain.Span
		for _, loc := range re.FindAllStringIndex(content, -1) {
			if wordBoundary(content, loc[0], loc[1]) {
				positions = append(positions, domain.Span{Start: loc[0], End: loc[1]})
			}
		}
		if len(positions) > 0 {
			matches = append(matches, domain.VocabMatch{Entry: e, Positions: positions})
		}
	}
	return matches
}

// Analyze builds a reading text with its word and vocabulary counts
func Analyze(title, content string, entries []domain.Entry) domain.ReadingText {
	return domain.ReadingText{
		Title:             title,
		Content:           content,
		WordCount:         WordCount(content),
		VocabularyMatches: len(FindVocabulary(content, entries)),
	}
}

// Summarize aggregates word and match counts over texts
func Summarize(texts []domain.ReadingText) domain.ReadingStats {
	var stats domain.ReadingStats
	if len(texts) == 0 {
		return stats
	}

	stats.TotalTexts = len(texts)
	for _, t := range texts {
		stats.TotalWords += t.WordCount
		stats.TotalVocabMatches += t.VocabularyMatches
	}
	stats.AverageWords = float64(stats.TotalWords) / float64(stats.TotalTexts)
	stats.AverageVocabMatches = float64(stats.TotalVocabMatches) / float64(stats.TotalTexts)
	return stats
}

// Highlight wraps every matched span in the before and after markers
func Highlight(content string, matches []domain.VocabMatch, before, after string) string {
	marked := make([]bool, len(content)+1)
	var spans []domain.Span
	for _, m := range matches {
		for _, p := range m.Positions {
			if marked[p.Start] {
				continue
			}
			marked[p.Start] = true
			spans = append(spans, p)
		}
	}
	if len(spans) == 0 {
		return content
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	var b strings.Builder
	last := 0
	for _, s := range spans {
		if s.Start < last {
			continue
		}
		b.WriteString(content[last:s.Start])
		b.WriteString(before)
		b.WriteString(content[s.Start:s.End])
		b.WriteString(after)
		last = s.End
	}
	b.WriteString(content[last:])
	return b.String()
}

func wordBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
