package handler

import (
	"errors"
	"fmt"
	"strings"

	"vocabtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleQuiz handles /quiz [mode] command
func (h *Handler) handleQuiz(c tele.Context) error {
	mode, err := domain.ParseQuizMode(strings.ToLower(strings.TrimSpace(c.Message().Payload)))
	if err != nil {
		return c.Send(err.Error() + "\n\nAvailable modes: recent10, recent30, random, incorrect, today, never, all")
	}
	return h.startQuiz(c, mode)
}

func (h *Handler) startQuiz(c tele.Context, mode domain.QuizMode) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	q, err := h.svc.Quiz.Start(userID, mode, state.Direction)
	if errors.Is(err, domain.ErrNoEntries) {
		return c.Send(fmt.Sprintf("There are no words for the «%s» quiz", mode.Label()))
	}
	if err != nil {
		h.logger.Error("Failed to start quiz",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("mode", string(mode)),
		)
		return c.Send(msgError)
	}

	h.SetState(userID, &domain.StateData{State: domain.StateQuiz, Direction: state.Direction})
	return c.Send(fmt.Sprintf("🧠 %s quiz, %d questions. Type the answer, /stop to finish.\n\n%s",
		mode.Label(), q.Total, formatQuestion(q)))
}

// answerQuiz checks a text message against the running quiz
func (h *Handler) answerQuiz(c tele.Context, text string) error {
	userID := c.Sender().ID

	outcome, err := h.svc.Quiz.Answer(userID, text)
	if errors.Is(err, domain.ErrNoActiveQuiz) {
		h.ResetState(userID)
		return c.Send(msgMainMenu, mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to check answer", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}

	if outcome.Finished {
		h.ResetState(userID)
		return c.Send(formatOutcome(outcome), mainMenuMarkup())
	}
	return c.Send(formatOutcome(outcome))
}

// handleStop handles /stop command
func (h *Handler) handleStop(c tele.Context) error {
	userID := c.Sender().ID

	score, err := h.svc.Quiz.Stop(userID)
	if errors.Is(err, domain.ErrNoActiveQuiz) {
		return c.Send("No quiz is running")
	}
	if err != nil {
		h.logger.Error("Failed to stop quiz", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}

	h.ResetState(userID)
	return c.Send(formatScore(score), mainMenuMarkup())
}

// handleReverse handles /reverse command
func (h *Handler) handleReverse(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	next := *state
	next.Direction = state.Direction.Reverse()
	h.SetState(userID, &next)

	msg := "🔁 Quiz direction: " + directionLabel(next.Direction)
	if h.svc.Quiz.Active(userID) {
		msg += "\n\nThe running quiz keeps its direction. It applies from the next quiz."
	}
	return c.Send(msg)
}

// leaveQuiz ends the user's running quiz, if any, when they navigate away
func (h *Handler) leaveQuiz(userID int64) {
	score, err := h.svc.Quiz.Stop(userID)
	if errors.Is(err, domain.ErrNoActiveQuiz) {
		return
	}
	if err != nil {
		h.logger.Error("Failed to stop quiz", zap.Error(err), zap.Int64("user_id", userID))
		return
	}
	h.logger.Info("Quiz left from menu",
		zap.Int64("user_id", userID),
		zap.String("score", score.String()),
	)
}
