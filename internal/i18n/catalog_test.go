package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enorett/enorett/internal/lookup"
)

func TestCatalog_Message(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{name: "english word not found", locale: LocaleEnglish, key: KeyWordNotFound, want: "Word not found"},
		{name: "swedish word not found", locale: LocaleSwedish, key: KeyWordNotFound, want: "Ordet hittades inte"},
		{name: "swedish premium", locale: LocaleSwedish, key: KeyRequiresPremium, want: "Premium-prenumeration krävs"},
		{name: "unknown locale falls back to english", locale: "de", key: KeyWordRequired, want: "Please enter a word"},
		{name: "unknown key falls back to the key", locale: LocaleEnglish, key: "no_such_key", want: "no_such_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Message(tt.locale, tt.key))
		})
	}
}

func TestCatalog_Pair(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	english, swedish := catalog.Pair(KeyWordNotFound)
	assert.Equal(t, "Word not found", english)
	assert.Equal(t, "Ordet hittades inte", swedish)
}

func TestKeyForError(t *testing.T) {
	tests := []struct {
		name string
		code lookup.ErrorCode
		want string
	}{
		{name: "word required", code: lookup.ErrorWordRequired, want: KeyWordRequired},
		{name: "word not found", code: lookup.ErrorWordNotFound, want: KeyWordNotFound},
		{name: "requires premium", code: lookup.ErrorRequiresPremium, want: KeyRequiresPremium},
		{name: "unknown code", code: lookup.ErrorCode("bogus"), want: KeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyForError(tt.code))
		})
	}
}
