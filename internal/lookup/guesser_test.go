package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enorett/enorett/internal/dictionary"
)

func TestGuessArticle(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		wantArticle dictionary.Article
		wantSuffix  string
	}{
		{name: "are suffix", word: "lärare", wantArticle: dictionary.ArticleEn, wantSuffix: "are"},
		{name: "tion suffix", word: "station", wantArticle: dictionary.ArticleEn, wantSuffix: "tion"},
		{name: "het suffix", word: "möjlighet", wantArticle: dictionary.ArticleEn, wantSuffix: "het"},
		{name: "ing suffix", word: "tidning", wantArticle: dictionary.ArticleEn, wantSuffix: "ing"},
		{name: "ium suffix", word: "akvarium", wantArticle: dictionary.ArticleEtt, wantSuffix: "ium"},
		{name: "eri suffix", word: "bageri", wantArticle: dictionary.ArticleEtt, wantSuffix: "eri"},
		{name: "em suffix", word: "system", wantArticle: dictionary.ArticleEtt, wantSuffix: "em"},
		{name: "tek suffix", word: "bibliotek", wantArticle: dictionary.ArticleEtt, wantSuffix: "tek"},
		{name: "input is normalized", word: "  Bageri ", wantArticle: dictionary.ArticleEtt, wantSuffix: "eri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GuessArticle(tt.word)

			require.NotNil(t, got)
			assert.Equal(t, tt.wantArticle, got.Article)
			assert.Equal(t, tt.wantSuffix, got.Suffix)
			assert.Equal(t, ConfidenceMedium, got.Confidence, "a guess never exceeds medium confidence")
			assert.Contains(t, got.Explanation, "-"+tt.wantSuffix)
		})
	}
}

func TestGuessArticle_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		word string
	}{
		{name: "no known suffix", word: "katt"},
		{name: "empty", word: ""},
		{name: "whitespace", word: "   "},
		{name: "suffix equals whole word", word: "tion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, GuessArticle(tt.word))
		})
	}
}
