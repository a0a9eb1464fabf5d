package service

import (
	"fmt"
	"io"

	"vocabtrainer/internal/repository"
	"vocabtrainer/internal/vocab"

	"go.uber.org/zap"
)

// TransferService imports and exports vocabulary lists
type TransferService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewTransferService creates a new transfer service
func NewTransferService(wordRepo repository.WordRepository, logger *zap.Logger) *TransferService {
	return &TransferService{wordRepo: wordRepo, logger: logger}
}

// Import reads a list in the given format and appends it to the user's
// vocabulary. A malformed source aborts the import and nothing is saved.
func (s *TransferService) Import(userID int64, r io.Reader, format vocab.Format) (int, error) {
	incoming := vocab.NewList(nil)
	if _, err := incoming.Import(r, format); err != nil {
		return 0, err
	}
	if incoming.Len() == 0 {
		return 0, nil
	}

	pairs := incoming.Pairs()
	n, err := s.wordRepo.SaveWords(userID, pairs)
	if err != nil {
		return 0, fmt.Errorf("save imported words: %w", err)
	}

	s.logger.Info("Vocabulary imported",
		zap.Int64("user_id", userID),
		zap.String("format", string(format)),
		zap.Int("count", n),
	)
	return n, nil
}

// Export writes the user's vocabulary to w and returns the number of entries
func (s *TransferService) Export(userID int64, w io.Writer, format vocab.Format) (int, error) {
	entries, err := s.wordRepo.ListWords(userID)
	if err != nil {
		return 0, fmt.Errorf("list words: %w", err)
	}

	list := vocab.NewList(entries)
	if err := list.Export(w, format); err != nil {
		return 0, err
	}
	return list.Len(), nil
}
