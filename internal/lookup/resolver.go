package lookup

import (
	"context"
	"strings"
	"sync"

	"github.com/enorett/enorett/internal/corpus"
	"github.com/enorett/enorett/internal/dictionary"
	"github.com/enorett/enorett/internal/morphology"
)

// GenusFetcher yields grammatical gender for a word, or nil when the
// morphology service has nothing usable.
type GenusFetcher interface {
	FetchGenus(ctx context.Context, word string) *morphology.Result
}

// ExampleFetcher yields attested example sentences, or nil when the corpus
// has nothing usable.
type ExampleFetcher interface {
	FetchExamples(ctx context.Context, word string, limit int) *corpus.Result
}

// PronunciationIndex answers synchronous word to IPA lookups.
type PronunciationIndex interface {
	Lookup(word string) (string, bool)
}

// Dictionary exposes the free and full tiers of the curated word list.
type Dictionary interface {
	FindFree(word string) (dictionary.Entry, bool)
	FindFull(word string) (dictionary.Entry, bool)
}

type Resolver struct {
	dictionary     Dictionary
	pronunciations PronunciationIndex
	morphology     GenusFetcher
	corpus         ExampleFetcher
	exampleLimit   int
}

// NewResolver wires the resolution cascade. The morphology and corpus
// fetchers may be nil, in which case the remote tier degrades to the
// pronunciation lexicon alone.
func NewResolver(
	dict Dictionary,
	pronunciations PronunciationIndex,
	genusFetcher GenusFetcher,
	exampleFetcher ExampleFetcher,
	exampleLimit int,
) *Resolver {
	if exampleLimit <= 0 {
		exampleLimit = corpus.DefaultLimit
	}
	return &Resolver{
		dictionary:     dict,
		pronunciations: pronunciations,
		morphology:     genusFetcher,
		corpus:         exampleFetcher,
		exampleLimit:   exampleLimit,
	}
}

// Resolve runs the priority cascade for one word: free dictionary tier, full
// dictionary tier, then the remote morphology/corpus/lexicon fallback.
// Curated dictionary data always wins over remote data. The entitlement flag
// only gates the full dictionary tier; resolving it from a user identifier is
// the caller's job.
func (r *Resolver) Resolve(ctx context.Context, rawWord string, isEntitled bool) Result {
	word := strings.ToLower(strings.TrimSpace(rawWord))
	if word == "" {
		return Result{
			Confidence: ConfidenceNone,
			ErrorCode:  ErrorWordRequired,
		}
	}

	ipa, hasIPA := r.lookupIPA(word)

	if entry, ok := r.dictionary.FindFree(word); ok {
		return r.dictionaryResult(entry, ipa, hasIPA, false)
	}

	if entry, ok := r.dictionary.FindFull(word); ok {
		if !isEntitled {
			// The premium tier must not leak anything beyond the word itself.
			return Result{
				Word:            word,
				Confidence:      ConfidenceNone,
				RequiresPremium: true,
				ErrorCode:       ErrorRequiresPremium,
			}
		}
		return r.dictionaryResult(entry, ipa, hasIPA, true)
	}

	return r.resolveRemote(ctx, word, ipa, hasIPA)
}

func (r *Resolver) dictionaryResult(entry dictionary.Entry, ipa string, hasIPA, premium bool) Result {
	genus, _ := morphology.GenusFor(entry.Article)
	return Result{
		Word:          entry.Word,
		Article:       entry.Article,
		Genus:         genus,
		IPA:           ipa,
		Translation:   entry.Translation,
		Examples:      []string{},
		Sources:       Sources{Dictionary: true, Lexicon: hasIPA},
		Confidence:    ConfidenceHigh,
		IsPremiumData: premium,
	}
}

// resolveRemote fans out the morphology and corpus requests concurrently and
// waits for both before composing a result.
func (r *Resolver) resolveRemote(ctx context.Context, word, ipa string, hasIPA bool) Result {
	var (
		wg              sync.WaitGroup
		morphologyFound *morphology.Result
		corpusFound     *corpus.Result
	)
	if r.morphology != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			morphologyFound = r.morphology.FetchGenus(ctx, word)
		}()
	}
	if r.corpus != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			corpusFound = r.corpus.FetchExamples(ctx, word, r.exampleLimit)
		}()
	}
	wg.Wait()

	var (
		article dictionary.Article
		genus   morphology.Genus
	)
	if morphologyFound != nil {
		article = morphologyFound.Article
		genus = morphologyFound.Genus
	}
	if article != "" && genus == "" {
		genus, _ = morphology.GenusFor(article)
	}

	examples := []string{}
	if corpusFound != nil {
		examples = corpusFound.Examples
	}

	hasArticle := article != ""
	hasExamples := len(examples) > 0
	if !hasArticle && !hasIPA && !hasExamples {
		return Result{
			Word:       word,
			Examples:   []string{},
			Confidence: ConfidenceNone,
			ErrorCode:  ErrorWordNotFound,
		}
	}

	confidence := ConfidenceLow
	if hasArticle {
		confidence = ConfidenceMedium
	}

	return Result{
		Word:     word,
		Article:  article,
		Genus:    genus,
		IPA:      ipa,
		Examples: examples,
		Sources: Sources{
			Morphology: morphologyFound != nil,
			Lexicon:    hasIPA,
			Corpus:     hasExamples,
		},
		Confidence: confidence,
	}
}

func (r *Resolver) lookupIPA(word string) (string, bool) {
	if r.pronunciations == nil {
		return "", false
	}
	return r.pronunciations.Lookup(word)
}
