// Package i18n holds the localized user-facing messages for lookup outcomes.
// API responses carry both an English and a Swedish message, so the catalog
// registers every key in both locales.
package i18n

import (
	"fmt"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/sv"
	ut "github.com/go-playground/universal-translator"

	"github.com/enorett/enorett/internal/lookup"
)

const (
	LocaleEnglish = "en"
	LocaleSwedish = "sv"
)

const (
	KeyWordRequired    = "word_required"
	KeyWordNotFound    = "word_not_found"
	KeyRequiresPremium = "requires_premium"
	KeyRateLimited     = "rate_limited"
	KeyInternalError   = "internal_error"
)

var messages = map[string]map[string]string{
	LocaleEnglish: {
		KeyWordRequired:    "Please enter a word",
		KeyWordNotFound:    "Word not found",
		KeyRequiresPremium: "Premium subscription required",
		KeyRateLimited:     "Too many requests, please try again later.",
		KeyInternalError:   "Internal server error",
	},
	LocaleSwedish: {
		KeyWordRequired:    "Vänligen ange ett ord",
		KeyWordNotFound:    "Ordet hittades inte",
		KeyRequiresPremium: "Premium-prenumeration krävs",
		KeyRateLimited:     "För många förfrågningar, försök igen senare.",
		KeyInternalError:   "Internt serverfel",
	},
}

type Catalog struct {
	uni *ut.UniversalTranslator
}

func NewCatalog() (*Catalog, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, sv.New())

	for locale, texts := range messages {
		trans, found := uni.GetTranslator(locale)
		if !found {
			return nil, fmt.Errorf("translator for locale %q not registered", locale)
		}
		for key, text := range texts {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("failed to add message %q for locale %q > %w", key, locale, err)
			}
		}
	}

	return &Catalog{uni: uni}, nil
}

// Message returns the text for the key in the given locale, falling back to
// English for unknown locales and to the key itself for unknown keys.
func (c *Catalog) Message(locale, key string) string {
	trans, found := c.uni.GetTranslator(locale)
	if !found {
		trans = c.uni.GetFallback()
	}
	text, err := trans.T(key)
	if err != nil {
		return key
	}
	return text
}

// Pair returns the English and Swedish messages for the key, matching the
// error/errorSv field pair of the lookup API response.
func (c *Catalog) Pair(key string) (english, swedish string) {
	return c.Message(LocaleEnglish, key), c.Message(LocaleSwedish, key)
}

// KeyForError maps a lookup error code onto its message key. Unknown codes
// map to the internal error message.
func KeyForError(code lookup.ErrorCode) string {
	switch code {
	case lookup.ErrorWordRequired:
		return KeyWordRequired
	case lookup.ErrorWordNotFound:
		return KeyWordNotFound
	case lookup.ErrorRequiresPremium:
		return KeyRequiresPremium
	default:
		return KeyInternalError
	}
}
