package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"vocabtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Message was already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique did not come through
	switch data {
	case "view_days", "back_to_days":
		return h.handleViewDays(c)
	case "random_pair", "more":
		return h.handleRandomPair(c)
	case "quiz_menu":
		return h.handleQuizMenu(c)
	case "stats":
		return h.handleStats(c)
	case "cancel":
		return h.handleCancel(c)
	case "back", "main_menu":
		return h.handleStart(c)
	case "dedupe":
		return h.handleDedupe(c)
	}

	// Dynamic buttons
	switch {
	case strings.HasPrefix(data, "page_"):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, "day_"):
		return h.handleDaySelection(c, data)
	case strings.HasPrefix(data, "quiz_"):
		return h.handleQuizMode(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleViewDays shows list of days with words
func (h *Handler) handleViewDays(c tele.Context) error {
	return h.showDays(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, "page_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showDays(c, page)
}

func (h *Handler) showDays(c tele.Context, page int) error {
	userID := c.Sender().ID

	days, totalPages, err := h.svc.Words.GetDaysList(userID, page)
	if err != nil {
		h.logger.Error("Failed to get days list", zap.Error(err), zap.Int64("user_id", userID))
		return notify(c, msgError)
	}
	if len(days) == 0 {
		return notify(c, msgNoWords)
	}

	now := time.Now().In(h.loc)
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(days)+2)
	for _, day := range days {
		label := fmt.Sprintf("%s (%d)", day.Label(now), day.WordCount)
		rows = append(rows, markup.Row(markup.Data(label, "day_"+day.DateString())))
	}

	if totalPages > 1 {
		nav := tele.Row{}
		if page > 1 {
			nav = append(nav, markup.Data("⬅️", fmt.Sprintf("page_%d", page-1)))
		}
		if page < totalPages {
			nav = append(nav, markup.Data("➡️", fmt.Sprintf("page_%d", page+1)))
		}
		if len(nav) > 0 {
			rows = append(rows, nav)
		}
	}
	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)

	return h.show(c, "📅 Your days:", markup)
}

// handleDaySelection shows words for selected day
func (h *Handler) handleDaySelection(c tele.Context, data string) error {
	userID := c.Sender().ID
	dateStr := strings.TrimPrefix(data, "day_")

	entries, err := h.svc.Words.GetWordsByDate(userID, dateStr)
	if err != nil {
		h.logger.Error("Failed to get words by date",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("date", dateStr),
		)
		return notify(c, msgError)
	}
	if len(entries) == 0 {
		return notify(c, "No words on this day")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📝 Words of the day (%d):\n\n", len(entries))
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, formatEntry(e))
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBackToDays, btnMainMenu))

	chunks := splitMessage(b.String(), maxMessageLength)
	if len(chunks) == 1 {
		return h.show(c, chunks[0], markup)
	}
	if err := h.show(c, chunks[0]); err != nil {
		return err
	}
	return h.sendLong(c, strings.Join(chunks[1:], "\n"), markup)
}

// handleRandomPair shows a random term-translation pair
func (h *Handler) handleRandomPair(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	entry, err := h.svc.Words.GetRandomPair(userID)
	if err != nil {
		h.logger.Error("Failed to get random word", zap.Error(err), zap.Int64("user_id", userID))
		return notify(c, msgError)
	}
	if entry == nil {
		return notify(c, msgNoWords)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnMore),
		markup.Row(btnBack),
	)
	return h.show(c, fmt.Sprintf("🎲 Random pair:\n\n📝 %s\n🔄 %s", entry.Term, entry.Translation), markup)
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	h.leaveQuiz(userID)
	h.ResetState(userID)
	return h.show(c, msgMainMenu, mainMenuMarkup())
}

// handleQuizMenu lists the quiz modes
func (h *Handler) handleQuizMenu(c tele.Context) error {
	direction := h.GetState(c.Sender().ID).Direction
	return h.show(c, fmt.Sprintf("🧠 Choose a quiz mode\n\nDirection: %s (change with /reverse)", directionLabel(direction)), quizMenuMarkup())
}

// handleQuizMode starts the quiz chosen in the quiz menu
func (h *Handler) handleQuizMode(c tele.Context, data string) error {
	mode, err := domain.ParseQuizMode(strings.TrimPrefix(data, "quiz_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown quiz mode"})
	}
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.startQuiz(c, mode)
}

func directionLabel(d domain.Direction) string {
	if d == domain.TranslationToTerm {
		return "translation → term"
	}
	return "term → translation"
}
