package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/quiz"
	"vocabtrainer/internal/repository"

	"go.uber.org/zap"
)

// Question is what the user is asked next
type Question struct {
	Prompt string
	Number int
	Total  int
}

// Outcome describes the result of one answer
type Outcome struct {
	Result   domain.QuizResult
	Expected string
	Next     *Question
	Finished bool
	Score    domain.Score
}

// QuizService runs one quiz session per user
type QuizService struct {
	wordRepo repository.WordRepository
	quizRepo repository.QuizRepository
	logger   *zap.Logger
	loc      *time.Location
	now      func() time.Time
	rng      *rand.Rand

	mu       sync.Mutex
	sessions map[int64]*quiz.Session
}

// NewQuizService creates a new quiz service
func NewQuizService(
	wordRepo repository.WordRepository,
	quizRepo repository.QuizRepository,
	loc *time.Location,
	logger *zap.Logger,
) *QuizService {
	if loc == nil {
		loc = time.UTC
	}
	return &QuizService{
		wordRepo: wordRepo,
		quizRepo: quizRepo,
		logger:   logger,
		loc:      loc,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[int64]*quiz.Session),
	}
}

// Start begins a quiz over the entries selected by mode, replacing any
// running quiz of the user
func (s *QuizService) Start(userID int64, mode domain.QuizMode, direction domain.Direction) (Question, error) {
	entries, err := s.wordRepo.ListWords(userID)
	if err != nil {
		return Question{}, fmt.Errorf("list words: %w", err)
	}

	candidates := quiz.Candidates(mode, entries, s.now().In(s.loc))
	if len(candidates) == 0 {
		return Question{}, fmt.Errorf("%s: %w", mode.Label(), domain.ErrNoEntries)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := quiz.Start(candidates, quiz.SizeFor(mode, len(candidates)),
		quiz.WithRand(s.rng),
		quiz.WithMode(mode),
		quiz.WithDirection(direction),
		quiz.WithClock(s.now),
	)
	if err != nil {
		return Question{}, err
	}
	s.sessions[userID] = session

	s.logger.Info("Quiz started",
		zap.Int64("user_id", userID),
		zap.String("quiz_id", session.ID().String()),
		zap.String("mode", string(mode)),
		zap.Int("size", session.Size()),
	)

	q, _ := nextQuestion(session)
	return q, nil
}

// Active reports whether the user has a running quiz
func (s *QuizService) Active(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[userID]
	return ok
}

// Current returns the question the user has to answer
func (s *QuizService) Current(userID int64) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return Question{}, domain.ErrNoActiveQuiz
	}
	q, ok := nextQuestion(session)
	if !ok {
		return Question{}, domain.ErrQuizFinished
	}
	return q, nil
}

// Answer checks the input against the current question and records the result
func (s *QuizService) Answer(userID int64, input string) (Outcome, error) {
	outcome, summary, err := s.answer(userID, input)
	if err != nil {
		return Outcome{}, err
	}

	// Persistence runs outside s.mu so one slow write does not block other users
	if id := outcome.Result.Entry.ID; id != 0 {
		if err := s.wordRepo.RecordResult(id, outcome.Result.Correct, s.now()); err != nil {
			s.logger.Warn("Failed to record quiz result",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Int("word_id", id),
			)
		}
	}
	if summary != nil {
		s.saveSummary(*summary)
	}
	return outcome, nil
}

func (s *QuizService) answer(userID int64, input string) (Outcome, *domain.QuizSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return Outcome{}, nil, domain.ErrNoActiveQuiz
	}

	result, err := session.AnswerCurrent(input)
	if err != nil {
		return Outcome{}, nil, err
	}

	outcome := Outcome{Result: result, Expected: session.Expected(result.Entry)}
	if next, ok := nextQuestion(session); ok {
		outcome.Next = &next
		outcome.Score = session.Score()
		return outcome, nil, nil
	}

	summary := s.finish(userID, session)
	outcome.Finished = true
	outcome.Score = summary.Score()
	return outcome, &summary, nil
}

// Stop ends the user's quiz early and returns the score so far
func (s *QuizService) Stop(userID int64) (domain.Score, error) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return domain.Score{}, domain.ErrNoActiveQuiz
	}
	summary := s.finish(userID, session)
	s.mu.Unlock()

	s.saveSummary(summary)
	return summary.Score(), nil
}

// History returns the user's latest quiz summaries
func (s *QuizService) History(userID int64, limit int) ([]domain.QuizSummary, error) {
	return s.quizRepo.ListSummaries(userID, limit)
}

// finish removes the session and returns its summary. Callers hold s.mu.
func (s *QuizService) finish(userID int64, session *quiz.Session) domain.QuizSummary {
	delete(s.sessions, userID)
	session.Finish()
	summary := session.Summary(userID)

	s.logger.Info("Quiz finished",
		zap.Int64("user_id", userID),
		zap.String("quiz_id", session.ID().String()),
		zap.String("score", summary.Score().String()),
	)
	return summary
}

func (s *QuizService) saveSummary(summary domain.QuizSummary) {
	if summary.Asked == 0 {
		return
	}
	if err := s.quizRepo.SaveSummary(summary); err != nil {
		s.logger.Error("Failed to save quiz summary", zap.Error(err), zap.Int64("user_id", summary.UserID))
	}
}

func nextQuestion(session *quiz.Session) (Question, bool) {
	current, ok := session.Current()
	if !ok {
		return Question{}, false
	}
	answered, total := session.Progress()
	return Question{
		Prompt: session.Prompt(current),
		Number: answered + 1,
		Total:  total,
	}, true
}
