package corpus

import (
	"encoding/json"
	"strings"
)

// tokenTextKeys are the field names Korp has used for the surface form of a
// token, in preference order. The upstream schema is not stable.
var tokenTextKeys = []string{"word", "w", "lex", "lem", "baseform", "token"}

// parseExamples turns a Korp query payload into deduplicated sentences,
// truncated to limit. It tolerates the known payload shape variants.
func parseExamples(payload []byte, limit int) []string {
	var document map[string]any
	if err := json.Unmarshal(payload, &document); err != nil {
		return nil
	}
	if _, found := document["ERROR"]; found {
		return nil
	}

	seen := make(map[string]struct{})
	var sentences []string
	for _, match := range kwicMatches(document) {
		sentence := joinTokens(matchTokens(match))
		if sentence == "" {
			continue
		}
		if _, dup := seen[sentence]; dup {
			continue
		}
		seen[sentence] = struct{}{}
		sentences = append(sentences, sentence)
		if len(sentences) >= limit {
			break
		}
	}
	return sentences
}

// kwicMatches locates the match array: "kwic" in v8, older responses nest it
// under "hits.hits" or "results.kwic".
func kwicMatches(document map[string]any) []any {
	if matches, ok := document["kwic"].([]any); ok {
		return matches
	}
	if hits, ok := document["hits"].(map[string]any); ok {
		if matches, ok := hits["hits"].([]any); ok {
			return matches
		}
	}
	if results, ok := document["results"].(map[string]any); ok {
		if matches, ok := results["kwic"].([]any); ok {
			return matches
		}
	}
	return nil
}

// matchTokens collects the token objects of one match: either a flat
// "tokens" array or the left/kwic/right split of older responses.
func matchTokens(match any) []any {
	m, ok := match.(map[string]any)
	if !ok {
		return nil
	}
	if tokens, ok := m["tokens"].([]any); ok {
		return tokens
	}

	left, leftOK := m["left"].([]any)
	right, rightOK := m["right"].([]any)
	if !leftOK || !rightOK {
		return nil
	}
	tokens := make([]any, 0, len(left)+len(right)+1)
	tokens = append(tokens, left...)
	if kwic, ok := m["kwic"]; ok {
		tokens = append(tokens, kwic)
	}
	tokens = append(tokens, right...)
	return tokens
}

func joinTokens(tokens []any) string {
	var words []string
	for _, token := range tokens {
		if text := tokenText(token); text != "" {
			words = append(words, text)
		}
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

func tokenText(token any) string {
	t, ok := token.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range tokenTextKeys {
		if value, ok := t[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
