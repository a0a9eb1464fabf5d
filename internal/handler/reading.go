package handler

import (
	"errors"
	"fmt"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/reading"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleTexts handles /texts command
func (h *Handler) handleTexts(c tele.Context) error {
	userID := c.Sender().ID

	texts, err := h.svc.Reading.ListTexts(userID)
	if err != nil {
		h.logger.Error("Failed to list texts", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}
	if len(texts) == 0 {
		return c.Send("You have no reading texts yet. Upload a .txt file to add one.")
	}
	return h.sendLong(c, formatTexts(texts))
}

// handleOpenText handles /text <id> command
func (h *Handler) handleOpenText(c tele.Context) error {
	userID := c.Sender().ID

	id, ok := parseID(c.Message().Payload)
	if !ok {
		return c.Send("Usage: /text <id>")
	}

	text, matches, err := h.svc.Reading.Open(userID, id)
	if errors.Is(err, domain.ErrNotFound) {
		return c.Send(fmt.Sprintf("There is no text %d", id))
	}
	if err != nil {
		h.logger.Error("Failed to open text", zap.Error(err), zap.Int64("user_id", userID), zap.Int("text_id", id))
		return c.Send(msgError)
	}

	header := fmt.Sprintf("📖 %s\n%d words, %d from your vocabulary\n\n", text.Title, text.WordCount, len(matches))
	return h.sendLong(c, header+reading.Highlight(text.Content, matches, "[", "]"))
}

// handleDeleteText handles /deltext <id> command
func (h *Handler) handleDeleteText(c tele.Context) error {
	userID := c.Sender().ID

	id, ok := parseID(c.Message().Payload)
	if !ok {
		return c.Send("Usage: /deltext <id>")
	}

	err := h.svc.Reading.DeleteText(userID, id)
	if errors.Is(err, domain.ErrNotFound) {
		return c.Send(fmt.Sprintf("There is no text %d", id))
	}
	if err != nil {
		h.logger.Error("Failed to delete text", zap.Error(err), zap.Int64("user_id", userID), zap.Int("text_id", id))
		return c.Send(msgError)
	}
	return c.Send("🗑 Text deleted")
}

func parseID(s string) (int, bool) {
	index, err := parsePosition(s)
	if err != nil {
		return 0, false
	}
	return index + 1, true
}
