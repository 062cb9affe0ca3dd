package morphology

import (
	"encoding/xml"
	"strings"
)

type annotatedWord struct {
	text  string
	lemma string
	msd   string
}

// parseResponse extracts the best genus annotation for word from a Sparv XML
// payload. The exact element nesting varies between Sparv versions, so the
// parser scans for <w> elements anywhere in the document and reads their
// msd/lemma attributes.
func parseResponse(payload []byte, word string) *Result {
	best, ok := pickCandidate(scanWords(payload), word)
	if !ok {
		return nil
	}

	genus := deriveGenus(best.msd)
	article, _ := ArticleFor(genus)

	lemma := best.lemma
	if lemma == "" {
		lemma = best.text
	}
	return &Result{
		Word:         lemma,
		Article:      article,
		Genus:        genus,
		MSD:          best.msd,
		PartOfSpeech: partOfSpeech(best.msd),
	}
}

func scanWords(payload []byte) []annotatedWord {
	decoder := xml.NewDecoder(strings.NewReader(string(payload)))
	decoder.Strict = false

	var words []annotatedWord
	var current *annotatedWord
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != "w" {
				continue
			}
			current = &annotatedWord{}
			for _, attr := range t.Attr {
				switch attr.Name.Local {
				case "msd":
					current.msd = attr.Value
				case "lemma":
					// Sparv wraps lemmas in pipe delimiters
					current.lemma = strings.ToLower(strings.ReplaceAll(attr.Value, "|", ""))
				}
			}
		case xml.CharData:
			if current != nil {
				current.text += string(t)
			}
		case xml.EndElement:
			if t.Name.Local == "w" && current != nil {
				current.text = strings.ToLower(strings.TrimSpace(current.text))
				words = append(words, *current)
				current = nil
			}
		}
	}
	return words
}

// pickCandidate selects among annotations matching the queried word: common
// nouns first, then anything with a resolvable genus, else the first match.
func pickCandidate(words []annotatedWord, word string) (annotatedWord, bool) {
	var matches []annotatedWord
	for _, w := range words {
		if w.msd == "" {
			continue
		}
		if w.text == word || w.lemma == word {
			matches = append(matches, w)
		}
	}
	if len(matches) == 0 {
		return annotatedWord{}, false
	}

	for _, m := range matches {
		if strings.Contains(m.msd, "NN") && deriveGenus(m.msd) != "" {
			return m, true
		}
	}
	for _, m := range matches {
		if deriveGenus(m.msd) != "" {
			return m, true
		}
	}
	return matches[0], true
}

// deriveGenus reads the genus code out of an MSD string such as
// "NN.UTR.SIN.IND.NOM". Empty when the MSD carries no genus.
func deriveGenus(msd string) Genus {
	switch {
	case strings.Contains(msd, string(GenusUtrum)):
		return GenusUtrum
	case strings.Contains(msd, string(GenusNeuter)):
		return GenusNeuter
	}
	return ""
}

// partOfSpeech returns the leading tag of an MSD string, e.g. "NN".
func partOfSpeech(msd string) string {
	if tag, _, found := strings.Cut(msd, "."); found {
		return tag
	}
	return msd
}
