// Package lookup resolves a Swedish noun's indefinite article by cascading
// over the tiered dictionary, the morphology service, the example corpus and
// the pronunciation lexicon.
package lookup

import (
	"github.com/enorett/enorett/internal/dictionary"
	"github.com/enorett/enorett/internal/morphology"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// ErrorCode identifies a failed lookup outcome. Callers translate codes into
// user-facing messages, so the code itself carries no prose.
type ErrorCode string

const (
	ErrorNone            ErrorCode = ""
	ErrorWordRequired    ErrorCode = "word_required"
	ErrorWordNotFound    ErrorCode = "word_not_found"
	ErrorRequiresPremium ErrorCode = "requires_premium"
)

// Sources records which backing sources contributed non-empty data.
type Sources struct {
	Dictionary bool
	Morphology bool
	Lexicon    bool
	Corpus     bool
}

// Result is the outcome of one lookup. It is always a value, never an error:
// failed lookups carry an ErrorCode and Confidence none.
type Result struct {
	Word            string
	Article         dictionary.Article
	Genus           morphology.Genus
	IPA             string
	Translation     string
	Examples        []string
	Sources         Sources
	Confidence      Confidence
	IsPremiumData   bool
	RequiresPremium bool
	ErrorCode       ErrorCode
}

// Found reports whether the lookup produced any usable data.
func (r Result) Found() bool {
	return r.ErrorCode == ErrorNone && r.Confidence != ConfidenceNone
}
