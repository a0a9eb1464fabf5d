// Package quiz runs scored question sessions over a snapshot of vocabulary entries.
package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"vocabtrainer/internal/domain"

	"github.com/google/uuid"
)

// Session is a single quiz over a fixed selection of entries. It is not safe
// for concurrent use.
type Session struct {
	id        uuid.UUID
	mode      domain.QuizMode
	direction domain.Direction
	questions []domain.Entry
	answered  []bool
	results   []domain.QuizResult
	cursor    int
	startedAt time.Time
	finished  bool
	now       func() time.Time
}

// Option configures a session
type Option func(*config)

type config struct {
	rng       *rand.Rand
	mode      domain.QuizMode
	direction domain.Direction
	now       func() time.Time
}

// WithRand sets the random source used for selection
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithMode labels the session with the mode its entries came from
func WithMode(mode domain.QuizMode) Option {
	return func(c *config) { c.mode = mode }
}

// WithDirection sets which side of an entry is asked
func WithDirection(d domain.Direction) Option {
	return func(c *config) { c.direction = d }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// Start selects size entries uniformly at random without replacement.
// The selection is copied, so later changes to entries do not affect the session.
func Start(entries []domain.Entry, size int, opts ...Option) (*Session, error) {
	if size < 1 || size > len(entries) {
		return nil, fmt.Errorf("%w: requested %d, available %d", domain.ErrInvalidSize, size, len(entries))
	}

	cfg := config{mode: domain.ModeAll, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	questions := make([]domain.Entry, size)
	for i, idx := range cfg.rng.Perm(len(entries))[:size] {
		questions[i] = entries[idx]
	}

	return &Session{
		id:        uuid.New(),
		mode:      cfg.mode,
		direction: cfg.direction,
		questions: questions,
		answered:  make([]bool, size),
		results:   make([]domain.QuizResult, 0, size),
		startedAt: cfg.now(),
		now:       cfg.now,
	}, nil
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID { return s.id }

// Mode returns the mode the session was started with
func (s *Session) Mode() domain.QuizMode { return s.mode }

// Direction returns which side of the entries is asked
func (s *Session) Direction() domain.Direction { return s.direction }

// StartedAt returns when the session began
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Size returns the number of questions
func (s *Session) Size() int { return len(s.questions) }

// Questions returns a copy of the selected entries in presentation order
func (s *Session) Questions() []domain.Entry {
	out := make([]domain.Entry, len(s.questions))
	copy(out, s.questions)
	return out
}

// Results returns a copy of the recorded results in answer order
func (s *Session) Results() []domain.QuizResult {
	out := make([]domain.QuizResult, len(s.results))
	copy(out, s.results)
	return out
}

// Progress returns how many questions are answered out of the total
func (s *Session) Progress() (answered, total int) {
	return len(s.results), len(s.questions)
}

// Done reports whether every question is answered or the session was finished
func (s *Session) Done() bool {
	return s.finished || len(s.results) == len(s.questions)
}

// Current returns the next unanswered question in presentation order
func (s *Session) Current() (domain.Entry, bool) {
	if s.finished {
		return domain.Entry{}, false
	}
	for s.cursor < len(s.questions) && s.answered[s.cursor] {
		s.cursor++
	}
	if s.cursor >= len(s.questions) {
		return domain.Entry{}, false
	}
	return s.questions[s.cursor], true
}

// Prompt returns the text shown for an entry
func (s *Session) Prompt(e domain.Entry) string {
	return s.direction.Prompt(e)
}

// Expected returns the answer expected for an entry
func (s *Session) Expected(e domain.Entry) string {
	return s.direction.Expected(e)
}

// Answer records the user's input for a selected, unanswered entry
func (s *Session) Answer(entry domain.Entry, input string) (domain.QuizResult, error) {
	if s.finished {
		return domain.QuizResult{}, domain.ErrQuizFinished
	}
	for i, q := range s.questions {
		if s.answered[i] || !sameQuestion(q, entry) {
			continue
		}
		return s.record(i, input), nil
	}
	return domain.QuizResult{}, fmt.Errorf("question %q: %w", entry.Term, domain.ErrNotFound)
}

// AnswerCurrent records the user's input for the current question
func (s *Session) AnswerCurrent(input string) (domain.QuizResult, error) {
	if s.finished {
		return domain.QuizResult{}, domain.ErrQuizFinished
	}
	if _, ok := s.Current(); !ok {
		return domain.QuizResult{}, fmt.Errorf("no unanswered question: %w", domain.ErrNotFound)
	}
	return s.record(s.cursor, input), nil
}

// Finish ends the session and returns the score. Calling it again returns
// the same score.
func (s *Session) Finish() domain.Score {
	s.finished = true
	return s.Score()
}

// Score returns the running tally
func (s *Session) Score() domain.Score {
	score := domain.Score{Asked: len(s.results)}
	for _, r := range s.results {
		if r.Correct {
			score.Correct++
		}
	}
	return score
}

// Summary returns the persistable record of the session
func (s *Session) Summary(userID int64) domain.QuizSummary {
	score := s.Score()
	return domain.QuizSummary{
		ID:         s.id,
		UserID:     userID,
		Mode:       s.mode,
		Asked:      score.Asked,
		Correct:    score.Correct,
		StartedAt:  s.startedAt,
		FinishedAt: s.now(),
	}
}

func (s *Session) record(i int, input string) domain.QuizResult {
	q := s.questions[i]
	result := domain.QuizResult{
		Entry:   q,
		Answer:  input,
		Correct: Match(input, s.direction.Expected(q)),
	}
	s.answered[i] = true
	s.results = append(s.results, result)
	return result
}

func sameQuestion(q, e domain.Entry) bool {
	if q.ID != 0 || e.ID != 0 {
		return q.ID == e.ID
	}
	return q.Term == e.Term && q.Translation == e.Translation
}
