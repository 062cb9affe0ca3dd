package lookup

import (
	"fmt"
	"strings"

	"github.com/enorett/enorett/internal/dictionary"
)

// Swedish derivational suffixes that strongly predict the article. Heuristic
// only: exceptions exist for nearly every suffix, which is why a guess is
// capped at medium confidence and flagged as such.
var (
	enSuffixes  = []string{"are", "ing", "het", "else", "tion", "dom", "skap", "nad", "or", "ik", "ur"}
	ettSuffixes = []string{"ium", "ande", "ende", "eri", "ment", "em", "tek", "um", "iv", "o"}
)

// Guess is a suffix-based article prediction for use when the resolver's
// backing services are unreachable, such as the offline CLI path.
type Guess struct {
	Word        string
	Article     dictionary.Article
	Suffix      string
	Confidence  Confidence
	Explanation string
}

// GuessArticle predicts the article from the word's ending. Returns nil when
// no known suffix matches. Never part of the main cascade.
func GuessArticle(rawWord string) *Guess {
	word := strings.ToLower(strings.TrimSpace(rawWord))
	if word == "" {
		return nil
	}
	if suffix, ok := matchSuffix(word, enSuffixes); ok {
		return newGuess(word, dictionary.ArticleEn, suffix)
	}
	if suffix, ok := matchSuffix(word, ettSuffixes); ok {
		return newGuess(word, dictionary.ArticleEtt, suffix)
	}
	return nil
}

func matchSuffix(word string, suffixes []string) (string, bool) {
	for _, suffix := range suffixes {
		// The suffix must be a proper ending, not the whole word.
		if len(word) > len(suffix) && strings.HasSuffix(word, suffix) {
			return suffix, true
		}
	}
	return "", false
}

func newGuess(word string, article dictionary.Article, suffix string) *Guess {
	return &Guess{
		Word:       word,
		Article:    article,
		Suffix:     suffix,
		Confidence: ConfidenceMedium,
		Explanation: fmt.Sprintf(
			"Baserat på ändelsen %q (vanligtvis %s-ord)", "-"+suffix, article),
	}
}
