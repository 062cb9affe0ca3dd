// Package morphology resolves grammatical gender for Swedish words through
// the Sparv annotation service.
package morphology

import "github.com/enorett/enorett/internal/dictionary"

// Genus is the grammatical gender code used in Sparv MSD strings.
type Genus string

const (
	GenusUtrum  Genus = "UTR"
	GenusNeuter Genus = "NEU"
)

// ArticleFor maps a genus to the indefinite article it implies.
func ArticleFor(genus Genus) (dictionary.Article, bool) {
	switch genus {
	case GenusUtrum:
		return dictionary.ArticleEn, true
	case GenusNeuter:
		return dictionary.ArticleEtt, true
	}
	return "", false
}

// GenusFor maps an article back to its genus.
func GenusFor(article dictionary.Article) (Genus, bool) {
	switch article {
	case dictionary.ArticleEn:
		return GenusUtrum, true
	case dictionary.ArticleEtt:
		return GenusNeuter, true
	}
	return "", false
}

// Result is the outcome of a morphology lookup. Article is only ever set
// together with a consistent Genus.
type Result struct {
	Word            string
	Article         dictionary.Article
	Genus           Genus
	MSD             string
	PartOfSpeech    string
	ServedFromCache bool
}

// HasArticle reports whether the lookup resolved an article.
func (r Result) HasArticle() bool {
	return r.Article != ""
}
