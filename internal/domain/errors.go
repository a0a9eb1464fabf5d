package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entry, text or question does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidSize is returned when a quiz asks for more entries than available
	ErrInvalidSize = errors.New("invalid quiz size")

	// ErrImport is returned when an import source is malformed
	ErrImport = errors.New("import failed")

	// ErrEmptyTerm is returned when an entry has no term
	ErrEmptyTerm = errors.New("term cannot be empty")

	// ErrNoEntries is returned when a quiz mode has nothing to ask
	ErrNoEntries = errors.New("no entries available")

	// ErrNoActiveQuiz is returned when the user has no running quiz
	ErrNoActiveQuiz = errors.New("no active quiz")

	// ErrQuizFinished is returned when answering a finished quiz
	ErrQuizFinished = errors.New("quiz already finished")

	// ErrUnsupportedFormat is returned for unknown interchange formats
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrEmptyText is returned when a reading text has no content
	ErrEmptyText = errors.New("text is empty")
)

// ImportError describes the first malformed line of an import source
type ImportError struct {
	Line   int
	Reason string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Unwrap lets errors.Is match ErrImport
func (e *ImportError) Unwrap() error {
	return ErrImport
}
