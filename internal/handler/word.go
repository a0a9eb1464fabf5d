package handler

import (
	"errors"
	"fmt"
	"strings"

	"vocabtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore unknown commands
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.svc.Auth.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.svc.Auth.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}

	if !authorized {
		ok, err := h.svc.Auth.Login(userID, text)
		if err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send(msgError)
		}
		if !ok {
			h.logger.Info("Wrong password", zap.Int64("user_id", userID))
			return c.Send("Wrong password")
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send("✅ Access granted!\n\n"+msgMainMenu, mainMenuMarkup())
	}

	state := h.GetState(userID)
	if state.State == domain.StateQuiz {
		return h.answerQuiz(c, text)
	}

	switch state.State {
	case domain.StateWaitingTranslation:
		term := state.CurrentWord

		if err := h.svc.Words.SaveWordPair(userID, term, text); err != nil {
			h.logger.Error("Failed to save word pair",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			return c.Send("Could not save the word. Please try again.")
		}

		h.logger.Info("Word pair saved",
			zap.Int64("user_id", userID),
			zap.String("term", term),
		)

		h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord, Direction: state.Direction})
		return c.Send(fmt.Sprintf("✅ Saved: %s — %s\n\nSend the next word or go back with /start", term, text))

	default:
		// Idle or waiting for a word: the text is a new term
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
			Direction:   state.Direction,
		})
		return c.Send(fmt.Sprintf("Now send the translation of «%s»", text), cancelMarkup())
	}
}

// handleList handles /list command
func (h *Handler) handleList(c tele.Context) error {
	userID := c.Sender().ID

	entries, err := h.svc.Words.Entries(userID)
	if err != nil {
		h.logger.Error("Failed to list words", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}
	if len(entries) == 0 {
		return c.Send(msgNoWords)
	}

	return h.sendLong(c, fmt.Sprintf("📝 Your vocabulary (%d):\n\n%s", len(entries), formatNumbered(entries)))
}

// handleSearch handles /search command
func (h *Handler) handleSearch(c tele.Context) error {
	userID := c.Sender().ID
	query := strings.TrimSpace(c.Message().Payload)
	if query == "" {
		return c.Send("Usage: /search <text>")
	}

	found, err := h.svc.Words.Search(userID, query)
	if err != nil {
		h.logger.Error("Failed to search words", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}
	if len(found) == 0 {
		return c.Send(fmt.Sprintf("Nothing found for «%s»", query))
	}

	return h.sendLong(c, fmt.Sprintf("🔎 Found %d:\n\n%s", len(found), formatNumbered(found)))
}

// handleDelete handles /delete command
func (h *Handler) handleDelete(c tele.Context) error {
	userID := c.Sender().ID

	index, err := parsePosition(c.Message().Payload)
	if err != nil {
		return c.Send("Usage: /delete <n>, where n is the number shown by /list")
	}

	removed, err := h.svc.Words.DeleteAt(userID, index)
	if errors.Is(err, domain.ErrNotFound) {
		return c.Send(fmt.Sprintf("There is no entry number %d", index+1))
	}
	if err != nil {
		h.logger.Error("Failed to delete word", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}

	h.logger.Info("Word deleted", zap.Int64("user_id", userID), zap.Int("word_id", removed.ID))
	return c.Send("🗑 Deleted: " + formatEntry(removed))
}

// handleEdit handles /edit command
func (h *Handler) handleEdit(c tele.Context) error {
	userID := c.Sender().ID

	index, term, translation, err := parseEdit(c.Message().Payload)
	if err != nil {
		return c.Send(err.Error())
	}

	edited, err := h.svc.Words.EditAt(userID, index, term, translation)
	if errors.Is(err, domain.ErrNotFound) {
		return c.Send(fmt.Sprintf("There is no entry number %d", index+1))
	}
	if err != nil {
		h.logger.Error("Failed to edit word", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}

	return c.Send("✏️ Updated: " + formatEntry(edited))
}

// handleDuplicates handles /duplicates command
func (h *Handler) handleDuplicates(c tele.Context) error {
	userID := c.Sender().ID

	groups, err := h.svc.Words.Duplicates(userID)
	if err != nil {
		h.logger.Error("Failed to find duplicates", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}
	if len(groups) == 0 {
		return c.Send("No duplicates found 👍")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👯 %d terms appear more than once:\n\n", len(groups))
	for _, group := range groups {
		b.WriteString(formatNumbered(group))
		b.WriteString("\n")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("🧹 Keep first, remove the rest", "dedupe")))
	return c.Send(b.String(), markup)
}

// handleDedupe removes duplicate entries after confirmation
func (h *Handler) handleDedupe(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	removed, err := h.svc.Words.RemoveDuplicates(userID)
	if err != nil {
		h.logger.Error("Failed to remove duplicates", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Could not remove duplicates"})
	}

	h.logger.Info("Duplicates removed", zap.Int64("user_id", userID), zap.Int64("removed", removed))
	return h.show(c, fmt.Sprintf("🧹 Removed %d duplicate entries", removed))
}

func (h *Handler) sendLong(c tele.Context, text string, opts ...interface{}) error {
	chunks := splitMessage(text, maxMessageLength)
	for i, chunk := range chunks {
		var err error
		if i == len(chunks)-1 {
			err = c.Send(chunk, opts...)
		} else {
			err = c.Send(chunk)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
