package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgError       = "Something went wrong. Please try again later."
	msgAskPassword = "Hi! This is a private vocabulary trainer. Please enter the password:"
	msgMainMenu    = "🏠 Main menu\n\nSend me a word to add it, or choose an action:"
	msgNoWords     = "You have no saved words yet"
)

const helpText = `📖 Vocabulary trainer

Send a word, then its translation, to add an entry.

/quiz [mode] - start a quiz (recent10, recent30, random, incorrect, today, never, all)
/reverse - toggle between term → translation and translation → term
/stop - finish the running quiz
/list - show all entries
/search <text> - find entries
/edit <n> <term> = <translation> - change entry n
/delete <n> - delete entry n
/duplicates - show entries with the same term
/export [tsv|csv|json] - download your vocabulary
/stats - statistics and most difficult words
/texts, /text <n>, /deltext <n> - reading texts

Upload a .tsv, .csv or .json file to import words, or a .txt file to add a reading text.`

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.svc.Auth.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgError)
	}

	authorized, err := h.svc.Auth.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}

	if !authorized {
		h.ResetState(userID)
		return c.Send(msgAskPassword)
	}

	h.leaveQuiz(userID)
	h.ResetState(userID)

	return h.show(c, msgMainMenu, mainMenuMarkup())
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(helpText)
}

// show edits the message when called from a callback and sends a new one otherwise
func (h *Handler) show(c tele.Context, text string, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}
	if err := c.Edit(text, opts...); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, opts...)
	}
	return c.Respond()
}

// notify answers a callback with a toast, or sends a message for commands
func notify(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
