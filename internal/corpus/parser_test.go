package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExamples(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		limit   int
		want    []string
	}{
		{
			name: "korp v8 tokens shape",
			payload: `{"kwic": [
				{"tokens": [{"word": "Jag"}, {"word": "har"}, {"word": "en"}, {"word": "bil"}, {"word": "."}]},
				{"tokens": [{"word": "Bilen"}, {"word": "är"}, {"word": "röd"}, {"word": "."}]}
			]}`,
			limit: 5,
			want: []string{
				"Jag har en bil .",
				"Bilen är röd .",
			},
		},
		{
			name: "legacy left kwic right shape",
			payload: `{"results": {"kwic": [
				{"left": [{"w": "Han"}, {"w": "köpte"}], "kwic": {"w": "bil"}, "right": [{"w": "igår"}]}
			]}}`,
			limit: 5,
			want:  []string{"Han köpte bil igår"},
		},
		{
			name: "hits hits shape with alternate token fields",
			payload: `{"hits": {"hits": [
				{"tokens": [{"lex": "En"}, {"baseform": "bil"}, {"token": "rullar"}]}
			]}}`,
			limit: 5,
			want:  []string{"En bil rullar"},
		},
		{
			name: "duplicates removed preserving first-seen order",
			payload: `{"kwic": [
				{"tokens": [{"word": "En"}, {"word": "bil"}]},
				{"tokens": [{"word": "Ett"}, {"word": "hus"}]},
				{"tokens": [{"word": "En"}, {"word": "bil"}]}
			]}`,
			limit: 5,
			want:  []string{"En bil", "Ett hus"},
		},
		{
			name: "limit truncates",
			payload: `{"kwic": [
				{"tokens": [{"word": "ett"}]},
				{"tokens": [{"word": "två"}]},
				{"tokens": [{"word": "tre"}]}
			]}`,
			limit: 2,
			want:  []string{"ett", "två"},
		},
		{
			name: "tokens without usable text are skipped",
			payload: `{"kwic": [
				{"tokens": [{"pos": "NN"}, {"word": ""}]},
				{"tokens": [{"word": "kvar"}]}
			]}`,
			limit: 5,
			want:  []string{"kvar"},
		},
		{
			name:    "api level error",
			payload: `{"ERROR": {"type": "unknown corpus", "value": "ROM99"}}`,
			limit:   5,
			want:    nil,
		},
		{
			name:    "not json",
			payload: `<html>gateway timeout</html>`,
			limit:   5,
			want:    nil,
		},
		{
			name:    "empty object",
			payload: `{}`,
			limit:   5,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseExamples([]byte(tt.payload), tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}
