package server

import (
	"github.com/enorett/enorett/internal/i18n"
	"github.com/enorett/enorett/internal/lookup"
)

type sourceFlags struct {
	Dictionary bool `json:"dictionary"`
	Morphology bool `json:"morphology"`
	Lexicon    bool `json:"lexicon"`
	Corpus     bool `json:"corpus"`
}

// lookupResponse is the wire format the extension consumes. Absent linguistic
// values are explicit nulls, and failures carry the error in both languages.
type lookupResponse struct {
	Success         bool        `json:"success"`
	Word            string      `json:"word,omitempty"`
	Article         *string     `json:"article"`
	Genus           *string     `json:"genus"`
	Translation     *string     `json:"translation"`
	IPA             *string     `json:"ipa"`
	Examples        []string    `json:"examples"`
	Source          sourceFlags `json:"source"`
	Confidence      string      `json:"confidence"`
	IsPremiumData   bool        `json:"isPremiumData"`
	RequiresPremium bool        `json:"requiresPremium,omitempty"`
	Error           string      `json:"error,omitempty"`
	ErrorSv         string      `json:"errorSv,omitempty"`
}

func newLookupResponse(result lookup.Result, catalog *i18n.Catalog) lookupResponse {
	examples := result.Examples
	if examples == nil {
		examples = []string{}
	}
	response := lookupResponse{
		Success:     result.Found(),
		Word:        result.Word,
		Article:     nullable(string(result.Article)),
		Genus:       nullable(string(result.Genus)),
		Translation: nullable(result.Translation),
		IPA:         nullable(result.IPA),
		Examples:    examples,
		Source: sourceFlags{
			Dictionary: result.Sources.Dictionary,
			Morphology: result.Sources.Morphology,
			Lexicon:    result.Sources.Lexicon,
			Corpus:     result.Sources.Corpus,
		},
		Confidence:      string(result.Confidence),
		IsPremiumData:   result.IsPremiumData,
		RequiresPremium: result.RequiresPremium,
	}
	if result.ErrorCode != lookup.ErrorNone {
		response.Error, response.ErrorSv = catalog.Pair(i18n.KeyForError(result.ErrorCode))
	}
	return response
}

func errorResponse(english, swedish string) map[string]any {
	return map[string]any{
		"success": false,
		"error":   english,
		"errorSv": swedish,
	}
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
