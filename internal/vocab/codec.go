package vocab

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"vocabtrainer/internal/domain"
)

// Format is an interchange format for vocabulary lists
type Format string

const (
	// FormatTSV is one "term<TAB>translation" line per entry
	FormatTSV Format = "tsv"
	// FormatCSV is two-column RFC 4180 CSV without a header
	FormatCSV Format = "csv"
	// FormatJSON is an array of {"term","translation"} objects
	FormatJSON Format = "json"
)

// MaxLineLength bounds a single TSV line
const MaxLineLength = 64 * 1024

const bom = "\uFEFF"

// ParseFormat resolves a format name, defaulting to TSV for an empty string
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "tsv", "tab":
		return FormatTSV, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, name)
	}
}

// FormatFromFilename picks the format from a file extension
func FormatFromFilename(filename string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", domain.ErrUnsupportedFormat, filename)
	}
	return ParseFormat(ext)
}

// Extension returns the file extension for the format, without the dot
func (f Format) Extension() string {
	return string(f)
}

// Decode parses pairs from r. It stops at the first malformed line or record
// and returns an *domain.ImportError.
func Decode(r io.Reader, f Format) ([]domain.Pair, error) {
	switch f {
	case FormatTSV:
		return decodeTSV(r)
	case FormatCSV:
		return decodeCSV(r)
	case FormatJSON:
		return decodeJSON(r)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, f)
	}
}

// Encode writes pairs to w
func Encode(w io.Writer, f Format, pairs []domain.Pair) error {
	switch f {
	case FormatTSV:
		return encodeTSV(w, pairs)
	case FormatCSV:
		return encodeCSV(w, pairs)
	case FormatJSON:
		return encodeJSON(w, pairs)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, f)
	}
}

func newPair(line int, term, translation string) (domain.Pair, error) {
	p := domain.Pair{
		Term:        strings.TrimSpace(term),
		Translation: strings.TrimSpace(translation),
	}
	if p.Term == "" {
		return domain.Pair{}, &domain.ImportError{Line: line, Reason: "empty term"}
	}
	return p, nil
}

func decodeTSV(r io.Reader) ([]domain.Pair, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)

	var pairs []domain.Pair
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if line == 1 {
			text = strings.TrimPrefix(text, bom)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		switch {
		case len(fields) < 2:
			return nil, &domain.ImportError{Line: line, Reason: "missing tab delimiter"}
		case len(fields) > 2:
			return nil, &domain.ImportError{Line: line, Reason: "more than one tab delimiter"}
		}

		p, err := newPair(line, fields[0], fields[1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &domain.ImportError{Line: line + 1, Reason: "line too long"}
		}
		return nil, fmt.Errorf("failed to read import: %w", err)
	}
	return pairs, nil
}

var tsvReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

func encodeTSV(w io.Writer, pairs []domain.Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", tsvReplacer.Replace(p.Term), tsvReplacer.Replace(p.Translation)); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
	}
	return bw.Flush()
}

func decodeCSV(r io.Reader) ([]domain.Pair, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && string(head) == bom {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	var pairs []domain.Pair
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &domain.ImportError{Line: parseErr.StartLine, Reason: parseErr.Err.Error()}
			}
			return nil, fmt.Errorf("failed to read import: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(record) != 2 {
			return nil, &domain.ImportError{Line: line, Reason: fmt.Sprintf("expected 2 fields, got %d", len(record))}
		}

		p, err := newPair(line, record[0], record[1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func encodeCSV(w io.Writer, pairs []domain.Pair) error {
	cw := csv.NewWriter(w)
	for _, p := range pairs {
		if err := cw.Write([]string{p.Term, p.Translation}); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func decodeJSON(r io.Reader) ([]domain.Pair, error) {
	var raw []domain.Pair
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &domain.ImportError{Line: 1, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &domain.ImportError{Line: len(raw) + 1, Reason: "trailing data after JSON array"}
	}

	pairs := make([]domain.Pair, 0, len(raw))
	for i, item := range raw {
		p, err := newPair(i+1, item.Term, item.Translation)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func encodeJSON(w io.Writer, pairs []domain.Pair) error {
	if pairs == nil {
		pairs = []domain.Pair{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pairs); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
