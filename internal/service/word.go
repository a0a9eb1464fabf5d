package service

import (
	"fmt"
	"strings"
	"time"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/repository"
	"vocabtrainer/internal/vocab"
)

// DaysPageSize is the number of days shown per page
const DaysPageSize = 7

// NumberedEntry is an entry with its 0-based position in the user's list
type NumberedEntry struct {
	Index int
	Entry domain.Entry
}

// WordService handles vocabulary entry logic
type WordService struct {
	wordRepo repository.WordRepository
	loc      *time.Location
}

// NewWordService creates a new word service. Dates are parsed in loc.
func NewWordService(wordRepo repository.WordRepository, loc *time.Location) *WordService {
	if loc == nil {
		loc = time.UTC
	}
	return &WordService{wordRepo: wordRepo, loc: loc}
}

// SaveWordPair saves a term-translation pair
func (s *WordService) SaveWordPair(userID int64, term, translation string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return domain.ErrEmptyTerm
	}
	return s.wordRepo.SaveWord(userID, term, strings.TrimSpace(translation))
}

// List returns the user's vocabulary in insertion order
func (s *WordService) List(userID int64) (*vocab.List, error) {
	entries, err := s.wordRepo.ListWords(userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return vocab.NewList(entries), nil
}

// Entries returns the user's entries with their positions
func (s *WordService) Entries(userID int64) ([]NumberedEntry, error) {
	list, err := s.List(userID)
	if err != nil {
		return nil, err
	}
	return numbered(list, allIndexes(list.Len()))
}

// DeleteAt removes the entry at the 0-based index of the user's list
func (s *WordService) DeleteAt(userID int64, index int) (domain.Entry, error) {
	list, err := s.List(userID)
	if err != nil {
		return domain.Entry{}, err
	}

	removed, err := list.Remove(index)
	if err != nil {
		return domain.Entry{}, err
	}
	if err := s.wordRepo.DeleteWord(userID, removed.ID); err != nil {
		return domain.Entry{}, fmt.Errorf("delete word: %w", err)
	}
	return removed, nil
}

// EditAt replaces term and translation of the entry at index
func (s *WordService) EditAt(userID int64, index int, term, translation string) (domain.Entry, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return domain.Entry{}, domain.ErrEmptyTerm
	}

	list, err := s.List(userID)
	if err != nil {
		return domain.Entry{}, err
	}
	e, err := list.At(index)
	if err != nil {
		return domain.Entry{}, err
	}

	e.Term = term
	e.Translation = strings.TrimSpace(translation)
	if err := s.wordRepo.UpdateWord(userID, e.ID, e.Term, e.Translation); err != nil {
		return domain.Entry{}, fmt.Errorf("update word: %w", err)
	}
	return e, nil
}

// Search returns entries whose term or translation contains query
func (s *WordService) Search(userID int64, query string) ([]NumberedEntry, error) {
	list, err := s.List(userID)
	if err != nil {
		return nil, err
	}
	return numbered(list, list.Search(query))
}

// Duplicates returns groups of entries sharing a term
func (s *WordService) Duplicates(userID int64) ([][]NumberedEntry, error) {
	list, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	var groups [][]NumberedEntry
	for _, idx := range list.Duplicates() {
		group, err := numbered(list, idx)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// RemoveDuplicates deletes every duplicate but the first entry of each group
func (s *WordService) RemoveDuplicates(userID int64) (int64, error) {
	groups, err := s.Duplicates(userID)
	if err != nil {
		return 0, err
	}

	var ids []int
	for _, group := range groups {
		for _, n := range group[1:] {
			ids = append(ids, n.Entry.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return s.wordRepo.DeleteWords(userID, ids)
}

// GetRandomPair returns a random term-translation pair
func (s *WordService) GetRandomPair(userID int64) (*domain.Entry, error) {
	return s.wordRepo.GetRandomWord(userID)
}

// GetDaysList returns paginated list of days with entry counts
func (s *WordService) GetDaysList(userID int64, page int) ([]domain.Day, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * DaysPageSize
	days, err := s.wordRepo.GetDaysWithWords(userID, DaysPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	totalDays, err := s.wordRepo.GetTotalDaysCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (totalDays + DaysPageSize - 1) / DaysPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return days, totalPages, nil
}

// GetWordsByDate returns the entries added on a day given as YYYYMMDD
func (s *WordService) GetWordsByDate(userID int64, dateStr string) ([]domain.Entry, error) {
	date, err := time.ParseInLocation(domain.DayLayout, dateStr, s.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return s.wordRepo.GetWordsByDate(userID, date)
}

func allIndexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func numbered(list *vocab.List, indexes []int) ([]NumberedEntry, error) {
	out := make([]NumberedEntry, 0, len(indexes))
	for _, i := range indexes {
		e, err := list.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, NumberedEntry{Index: i, Entry: e})
	}
	return out, nil
}
