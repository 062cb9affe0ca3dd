package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/enorett/enorett/internal/corpus"
	"github.com/enorett/enorett/internal/dictionary"
	"github.com/enorett/enorett/internal/lookup"
	"github.com/enorett/enorett/internal/morphology"
	"github.com/enorett/enorett/internal/pronunciation"
)

type OutputFormat string

// Set implements pflag.Value.
func (f *OutputFormat) Set(v string) error {
	switch v {
	case string(OutputText):
		*f = OutputText
	case string(OutputJSON):
		*f = OutputJSON
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, OutputText, OutputJSON)
	}
	return nil
}

// String implements pflag.Value.
func (f OutputFormat) String() string {
	return string(f)
}

// Type implements pflag.Value.
func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

var _ pflag.Value = (*OutputFormat)(nil)

func newLookupCommand() *cobra.Command {
	var offline bool
	format := OutputText

	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Resolve the article for a Swedish noun",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := dictionary.NewStore(cfg.Dictionary.Path, cfg.Dictionary.FreeLimit)
			pronunciations := pronunciation.Load(cfg.Pronunciation.LexiconPath)

			var (
				genusFetcher   lookup.GenusFetcher
				exampleFetcher lookup.ExampleFetcher
			)
			if !offline {
				morphologyClient := morphology.NewClient(morphology.Config{
					Endpoint: cfg.Morphology.Endpoint,
					Timeout:  cfg.Morphology.Timeout(),
					CacheTTL: cfg.Morphology.CacheTTL(),
				})
				defer func() {
					_ = morphologyClient.Close()
				}()
				corpusClient := corpus.NewClient(corpus.Config{
					Endpoint: cfg.Corpus.Endpoint,
					Corpora:  cfg.Corpus.Corpora,
					Timeout:  cfg.Corpus.Timeout(),
					CacheTTL: cfg.Corpus.CacheTTL(),
				})
				defer func() {
					_ = corpusClient.Close()
				}()
				genusFetcher = morphologyClient
				exampleFetcher = corpusClient
			}

			// The CLI runs against local resources, so the full dictionary
			// is not gated here.
			resolver := lookup.NewResolver(store, pronunciations, genusFetcher, exampleFetcher, cfg.Corpus.MaxExamples)
			result := resolver.Resolve(cmd.Context(), word, true)

			if !result.Found() && offline {
				if guess := lookup.GuessArticle(word); guess != nil {
					return showGuess(guess, format)
				}
			}
			return showResult(result, format)
		},
	}
	flags := command.Flags()
	flags.BoolVar(&offline, "offline", false, "Skip remote services and fall back to suffix guessing")
	flags.Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", []OutputFormat{OutputText, OutputJSON}))
	return command
}

func showResult(result lookup.Result, format OutputFormat) error {
	if format == OutputJSON {
		return printJSON(result)
	}

	if !result.Found() {
		color.Red("No article found for %q", result.Word)
		return nil
	}

	if result.Article != "" {
		color.Green("%s %s", result.Article, result.Word)
	} else {
		color.Yellow("%s (article unknown)", result.Word)
	}
	if result.Translation != "" {
		fmt.Printf("  translation: %s\n", result.Translation)
	}
	if result.IPA != "" {
		fmt.Printf("  pronunciation: /%s/\n", result.IPA)
	}
	if result.Genus != "" {
		fmt.Printf("  genus: %s\n", result.Genus)
	}
	fmt.Printf("  confidence: %s\n", result.Confidence)
	for _, example := range result.Examples {
		fmt.Printf("  - %s\n", example)
	}
	return nil
}

func showGuess(guess *lookup.Guess, format OutputFormat) error {
	if format == OutputJSON {
		return printJSON(guess)
	}

	color.Yellow("%s %s (guessed)", guess.Article, guess.Word)
	fmt.Printf("  %s\n", guess.Explanation)
	fmt.Printf("  confidence: %s\n", guess.Confidence)
	return nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("json.Encode() > %w", err)
	}
	return nil
}
