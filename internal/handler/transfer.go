package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/vocab"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// maxUploadSize limits uploaded files
const maxUploadSize = 5 << 20

// handleExport handles /export [format] command
func (h *Handler) handleExport(c tele.Context) error {
	userID := c.Sender().ID

	format, err := vocab.ParseFormat(c.Message().Payload)
	if err != nil {
		return c.Send("Usage: /export [tsv|csv|json]")
	}

	var buf bytes.Buffer
	n, err := h.svc.Transfer.Export(userID, &buf, format)
	if err != nil {
		h.logger.Error("Failed to export vocabulary", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}
	if n == 0 {
		return c.Send(msgNoWords)
	}

	h.logger.Info("Vocabulary exported",
		zap.Int64("user_id", userID),
		zap.String("format", string(format)),
		zap.Int("count", n),
	)

	doc := &tele.Document{
		File:     tele.FromReader(&buf),
		FileName: "vocabulary." + string(format),
		Caption:  fmt.Sprintf("📦 %d entries", n),
	}
	return c.Send(doc)
}

// handleDocument imports word lists and stores .txt uploads as reading texts
func (h *Handler) handleDocument(c tele.Context) error {
	userID := c.Sender().ID
	doc := c.Message().Document
	if doc == nil {
		return nil
	}
	if doc.FileSize > maxUploadSize {
		return c.Send("The file is too large")
	}

	isText := strings.EqualFold(filepath.Ext(doc.FileName), ".txt")
	format, err := vocab.FormatFromFilename(doc.FileName)
	if err != nil && !isText {
		return c.Send("Send a .tsv, .csv or .json file to import words, or a .txt file to add a reading text")
	}

	rc, err := c.Bot().File(&doc.File)
	if err != nil {
		h.logger.Error("Failed to download file", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}
	defer rc.Close()

	if isText {
		return h.addReadingText(c, rc, doc)
	}

	n, err := h.svc.Transfer.Import(userID, rc, format)
	var importErr *domain.ImportError
	switch {
	case errors.As(err, &importErr):
		return c.Send(fmt.Sprintf("❌ Nothing imported. Line %d: %s", importErr.Line, importErr.Reason))
	case errors.Is(err, domain.ErrImport):
		return c.Send("❌ Nothing imported: the file could not be read")
	case err != nil:
		h.logger.Error("Failed to import vocabulary", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}

	return c.Send(fmt.Sprintf("✅ Imported %d entries", n))
}

func (h *Handler) addReadingText(c tele.Context, r io.Reader, doc *tele.Document) error {
	userID := c.Sender().ID

	content, err := io.ReadAll(io.LimitReader(r, maxUploadSize))
	if err != nil {
		h.logger.Error("Failed to read text file", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}

	title := strings.TrimSpace(c.Message().Caption)
	if title == "" {
		title = strings.TrimSuffix(doc.FileName, filepath.Ext(doc.FileName))
	}

	text, err := h.svc.Reading.AddText(userID, title, string(content))
	if errors.Is(err, domain.ErrEmptyText) {
		return c.Send("The text is empty")
	}
	if err != nil {
		h.logger.Error("Failed to add reading text", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}

	return c.Send(fmt.Sprintf("📚 Saved «%s»: %d words, %d from your vocabulary. Open it with /text %d",
		text.Title, text.WordCount, text.VocabularyMatches, text.ID))
}
