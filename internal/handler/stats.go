package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// recentQuizzes is how many finished quizzes the statistics show
const recentQuizzes = 5

// handleStats handles /stats command and the statistics button
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	report, err := h.svc.Stats.Report(userID, recentQuizzes)
	if err != nil {
		h.logger.Error("Failed to build statistics", zap.Error(err), zap.Int64("user_id", userID))
		return notify(c, msgError)
	}
	if report.Statistics.TotalEntries == 0 && report.Reading.TotalTexts == 0 {
		return notify(c, msgNoWords)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return h.show(c, formatReport(report, h.loc), markup)
}
