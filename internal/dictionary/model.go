// Package dictionary holds the curated en/ett word list and its tiered views.
package dictionary

// Article is the Swedish indefinite article of a noun.
type Article string

const (
	ArticleEn  Article = "en"
	ArticleEtt Article = "ett"
)

// Entry is one curated dictionary row. Entries are immutable once loaded.
type Entry struct {
	Word        string  `yaml:"word"`
	Article     Article `yaml:"article"`
	Translation string  `yaml:"translation,omitempty"`
}
