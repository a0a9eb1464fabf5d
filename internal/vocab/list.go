// Package vocab holds the in-memory vocabulary list and its interchange formats.
package vocab

import (
	"fmt"
	"io"
	"strings"

	"vocabtrainer/internal/domain"
)

// List is an ordered vocabulary list. It is not safe for concurrent use.
type List struct {
	entries []domain.Entry
}

// NewList creates a list holding a copy of entries
func NewList(entries []domain.Entry) *List {
	l := &List{entries: make([]domain.Entry, len(entries))}
	copy(l.entries, entries)
	return l
}

// Len returns the number of entries
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a snapshot of the list
func (l *List) Entries() []domain.Entry {
	out := make([]domain.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// At returns the entry at a zero-based index
func (l *List) At(index int) (domain.Entry, error) {
	if index < 0 || index >= len(l.entries) {
		return domain.Entry{}, fmt.Errorf("entry %d: %w", index, domain.ErrNotFound)
	}
	return l.entries[index], nil
}

// Add appends an entry
func (l *List) Add(e domain.Entry) error {
	if strings.TrimSpace(e.Term) == "" {
		return domain.ErrEmptyTerm
	}
	l.entries = append(l.entries, e)
	return nil
}

// Remove deletes and returns the entry at a zero-based index
func (l *List) Remove(index int) (domain.Entry, error) {
	e, err := l.At(index)
	if err != nil {
		return domain.Entry{}, err
	}
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
	return e, nil
}

// Import parses r and appends the entries. A malformed source leaves the
// list unchanged.
func (l *List) Import(r io.Reader, f Format) (int, error) {
	pairs, err := Decode(r, f)
	if err != nil {
		return 0, err
	}
	for _, p := range pairs {
		l.entries = append(l.entries, domain.NewEntry(p.Term, p.Translation))
	}
	return len(pairs), nil
}

// Pairs returns the term-translation pairs in list order
func (l *List) Pairs() []domain.Pair {
	pairs := make([]domain.Pair, len(l.entries))
	for i, e := range l.entries {
		pairs[i] = e.Pair()
	}
	return pairs
}

// Export writes the list to w in the given format
func (l *List) Export(w io.Writer, f Format) error {
	return Encode(w, f, l.Pairs())
}

// Duplicates returns groups of indices whose terms match ignoring case and
// surrounding space, in order of first occurrence
func (l *List) Duplicates() [][]int {
	groups := make(map[string][]int)
	var order []string
	for i, e := range l.entries {
		key := domain.NormalizeTerm(e.Term)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var out [][]int
	for _, key := range order {
		if len(groups[key]) > 1 {
			out = append(out, groups[key])
		}
	}
	return out
}

// Search returns indices of entries whose term or translation contains query,
// case-insensitively
func (l *List) Search(query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []int
	for i, e := range l.entries {
		if strings.Contains(strings.ToLower(e.Term), q) || strings.Contains(strings.ToLower(e.Translation), q) {
			out = append(out, i)
		}
	}
	return out
}
