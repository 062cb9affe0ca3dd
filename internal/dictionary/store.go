package dictionary

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// builtinEntries keeps the API partially functional when the dictionary
// source is unreadable or malformed.
var builtinEntries = []Entry{
	{Word: "bil", Article: ArticleEn, Translation: "car"},
	{Word: "hus", Article: ArticleEtt, Translation: "house"},
	{Word: "bok", Article: ArticleEn, Translation: "book"},
	{Word: "barn", Article: ArticleEtt, Translation: "child"},
}

// Store loads the full dictionary once and serves the free prefix slice and
// the full superset for exact-match probes.
type Store struct {
	path      string
	freeLimit int

	once    sync.Once
	full    []Entry
	free    []Entry
	byWord  map[string]Entry
	freeSet map[string]struct{}
}

func NewStore(path string, freeLimit int) *Store {
	return &Store{
		path:      path,
		freeLimit: freeLimit,
	}
}

func (s *Store) load() {
	s.once.Do(func() {
		s.full = readEntries(s.path)

		limit := s.freeLimit
		if limit > len(s.full) {
			limit = len(s.full)
		}
		s.free = s.full[:limit]

		s.byWord = make(map[string]Entry, len(s.full))
		for _, e := range s.full {
			s.byWord[e.Word] = e
		}
		s.freeSet = make(map[string]struct{}, len(s.free))
		for _, e := range s.free {
			s.freeSet[e.Word] = struct{}{}
		}
	})
}

// readEntries deserializes the YAML word list. Any failure falls back to the
// built-in entries so the service keeps answering.
func readEntries(path string) []Entry {
	contents, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read dictionary source, using built-in entries",
			"path", path, "error", err)
		return builtinEntries
	}

	var entries []Entry
	if err := yaml.Unmarshal(contents, &entries); err != nil {
		slog.Warn("failed to parse dictionary source, using built-in entries",
			"path", path, "error", err)
		return builtinEntries
	}
	if len(entries) == 0 {
		slog.Warn("dictionary source is empty, using built-in entries", "path", path)
		return builtinEntries
	}

	normalized := make([]Entry, 0, len(entries))
	for _, e := range entries {
		e.Word = strings.ToLower(strings.TrimSpace(e.Word))
		if e.Word == "" || (e.Article != ArticleEn && e.Article != ArticleEtt) {
			continue
		}
		normalized = append(normalized, e)
	}
	slog.Info("loaded dictionary", "path", path, "entries", len(normalized))
	return normalized
}

// Full returns all entries, loading them on first use.
func (s *Store) Full() []Entry {
	s.load()
	return s.full
}

// Free returns the free-tier prefix slice of the full dictionary.
func (s *Store) Free() []Entry {
	s.load()
	return s.free
}

// FindFree returns the entry for word if it is inside the free tier.
func (s *Store) FindFree(word string) (Entry, bool) {
	s.load()
	if _, ok := s.freeSet[word]; !ok {
		return Entry{}, false
	}
	return s.byWord[word], true
}

// FindFull returns the entry for word from the full dictionary, any tier.
func (s *Store) FindFull(word string) (Entry, bool) {
	s.load()
	e, ok := s.byWord[word]
	return e, ok
}
