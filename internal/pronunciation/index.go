// Package pronunciation serves IPA transcriptions from a flat lexicon file.
package pronunciation

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
)

// Index maps lowercased words to IPA transcriptions. It is loaded once and
// never mutated afterwards, so lookups need no locking.
type Index struct {
	entries map[string]string
}

// Load reads a word<TAB>ipa lexicon into memory. Lines starting with '#' and
// lines without both fields are skipped. A missing or unreadable file
// degrades to an empty index.
func Load(path string) *Index {
	index := &Index{entries: make(map[string]string)}

	file, err := os.Open(path)
	if err != nil {
		slog.Warn("failed to open pronunciation lexicon", "path", path, "error", err)
		return index
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	// NST lexicon lines can be long
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, ipa, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		word = strings.ToLower(strings.TrimSpace(word))
		ipa = strings.TrimSpace(ipa)
		if word == "" || ipa == "" {
			continue
		}
		index.entries[word] = ipa
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("failed while reading pronunciation lexicon", "path", path, "error", err)
	}

	slog.Info("loaded pronunciation lexicon", "path", path, "entries", len(index.entries))
	return index
}

// Lookup returns the IPA transcription for word, if known.
func (i *Index) Lookup(word string) (string, bool) {
	ipa, ok := i.entries[strings.ToLower(strings.TrimSpace(word))]
	return ipa, ok
}

// Size returns the number of loaded transcriptions.
func (i *Index) Size() int {
	return len(i.entries)
}
