package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/service"
)

// maxMessageLength is Telegram's limit for a text message
const maxMessageLength = 4096

// parsePosition converts a 1-based position typed by the user into a list index
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q is not a valid number", s)
	}
	return n - 1, nil
}

// parseEdit splits "<n> <term> = <translation>"
func parseEdit(payload string) (index int, term, translation string, err error) {
	payload = strings.TrimSpace(payload)
	pos, rest, ok := strings.Cut(payload, " ")
	if !ok {
		return 0, "", "", fmt.Errorf("usage: /edit <n> <term> = <translation>")
	}
	index, err = parsePosition(pos)
	if err != nil {
		return 0, "", "", err
	}
	term, translation, ok = strings.Cut(rest, "=")
	if !ok || strings.TrimSpace(term) == "" {
		return 0, "", "", fmt.Errorf("usage: /edit <n> <term> = <translation>")
	}
	return index, strings.TrimSpace(term), strings.TrimSpace(translation), nil
}

func formatEntry(e domain.Entry) string {
	if e.Translation == "" {
		return e.Term
	}
	return e.Term + " — " + e.Translation
}

func formatNumbered(entries []service.NumberedEntry) string {
	var b strings.Builder
	for _, n := range entries {
		fmt.Fprintf(&b, "%d. %s\n", n.Index+1, formatEntry(n.Entry))
	}
	return b.String()
}

func formatQuestion(q service.Question) string {
	return fmt.Sprintf("❓ %d/%d\n\n%s", q.Number, q.Total, q.Prompt)
}

func formatOutcome(o service.Outcome) string {
	var b strings.Builder
	if o.Result.Correct {
		b.WriteString("✅ Correct!")
	} else {
		fmt.Fprintf(&b, "❌ Wrong. Correct answer: %s", o.Expected)
	}
	if o.Finished {
		b.WriteString("\n\n")
		b.WriteString(formatScore(o.Score))
	} else if o.Next != nil {
		b.WriteString("\n\n")
		b.WriteString(formatQuestion(*o.Next))
	}
	return b.String()
}

func formatScore(s domain.Score) string {
	if s.Asked == 0 {
		return "🏁 Quiz finished. No questions answered."
	}
	return fmt.Sprintf("🏁 Quiz finished: %s correct (%.0f%%)", s, s.Percent())
}

func formatReport(r service.Report, loc *time.Location) string {
	var b strings.Builder
	st := r.Statistics
	fmt.Fprintf(&b, "📊 Statistics\n\nEntries: %d\nTested: %d\nNever tested: %d\nCorrect answers: %d\nWrong answers: %d\nSuccess rate: %.1f%%\nLast answer wrong: %d\n",
		st.TotalEntries, st.QueriedEntries, st.NeverQueried, st.TotalCorrect, st.TotalWrong, st.SuccessRate, st.LastWrong)

	if len(r.MostDifficult) > 0 {
		b.WriteString("\n🔥 Most difficult words\n")
		for i, e := range r.MostDifficult {
			fmt.Fprintf(&b, "%d. %s (%.0f%% wrong, %d attempts)\n", i+1, formatEntry(e), e.ErrorRate()*100, e.Attempts())
		}
	}

	if r.Reading.TotalTexts > 0 {
		fmt.Fprintf(&b, "\n📚 Reading\nTexts: %d\nWords: %d (avg %.0f)\nVocabulary matches: %d (avg %.1f)\n",
			r.Reading.TotalTexts, r.Reading.TotalWords, r.Reading.AverageWords,
			r.Reading.TotalVocabMatches, r.Reading.AverageVocabMatches)
	}

	if len(r.RecentQuizzes) > 0 {
		b.WriteString("\n🧠 Recent quizzes\n")
		for _, q := range r.RecentQuizzes {
			fmt.Fprintf(&b, "%s  %s  %s\n", q.FinishedAt.In(loc).Format("02 Jan 15:04"), q.Mode.Label(), q.Score())
		}
	}
	return b.String()
}

func formatTexts(texts []domain.ReadingText) string {
	var b strings.Builder
	b.WriteString("📚 Your reading texts\n\n")
	for _, t := range texts {
		fmt.Fprintf(&b, "%d: %s (%d words, %d vocab)\n", t.ID, t.Title, t.WordCount, t.VocabularyMatches)
	}
	b.WriteString("\nOpen one with /text <id>")
	return b.String()
}

// splitMessage cuts text into chunks Telegram accepts, preferring line breaks
func splitMessage(text string, limit int) []string {
	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndexByte(text[:limit], '\n')
		if cut <= 0 {
			cut = limit
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
