package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordlens/internal/bootstrap"
	"github.com/at-ishikawa/wordlens/internal/config"
	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/at-ishikawa/wordlens/internal/examples"
	"github.com/at-ishikawa/wordlens/internal/lookup"
	"github.com/at-ishikawa/wordlens/internal/news"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatText, OutputFormatJSON}
)

// Set implements pflag.Value.
func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "format"
}

func newLookupCommand() *cobra.Command {
	format := OutputFormatText
	var noNews bool

	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word and show examples and related news",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, schema, err := bootstrap.OpenDictionary(ctx, cfg.Dictionary)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			provider := examples.NewProvider(cfg.Examples)
			searcher := dictionary.NewSearcher(dictionary.NewSQLSource(db), schema, provider,
				dictionary.WithWidthFolding(cfg.Dictionary.FoldWidth))
			var result lookup.EnrichedResult
			if noNews {
				matched, err := searcher.Search(ctx, args[0])
				if err != nil {
					return fmt.Errorf("searcher.Search > %w", err)
				}
				result = lookup.EnrichedResult{Result: matched}
			} else {
				newsSearcher, closeNews := news.NewSearcherFromConfig(cfg.News)
				defer func() {
					_ = closeNews()
				}()

				service := lookup.NewService(searcher, provider, newsSearcher, lookup.Options{
					ExamplesTimeout: cfg.Examples.Timeout,
					NewsTimeout:     cfg.News.Timeout,
				})
				result, err = service.HandleWordQuery(ctx, args[0])
				if err != nil {
					return fmt.Errorf("service.HandleWordQuery > %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if format == OutputFormatJSON {
				return writeJSON(out, result)
			}
			writeText(out, args[0], result)
			return nil
		},
	}

	flags := command.Flags()
	flags.Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", allOutputFormats))
	flags.BoolVar(&noNews, "no-news", false, "skip the news lookup")
	return command
}

func writeJSON(w io.Writer, result lookup.EnrichedResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	return nil
}

func writeText(w io.Writer, query string, result lookup.EnrichedResult) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	switch result.Kind {
	case dictionary.MatchNotFound:
		_, _ = fmt.Fprintf(w, "No match for %q\n", strings.TrimSpace(query))

	case dictionary.MatchSimilar:
		_, _ = bold.Fprintln(w, "Similar words:")
		for _, candidate := range result.Candidates {
			_, _ = fmt.Fprintf(w, "  %s  %s\n", candidate.Headword, faint.Sprint(firstLine(candidate.Translation)))
		}

	case dictionary.MatchExact:
		_, _ = bold.Fprintln(w, result.Entry.Headword)
		for _, line := range strings.Split(result.Entry.Translation, "\n") {
			_, _ = fmt.Fprintf(w, "  %s\n", line)
		}
		if len(result.Examples) > 0 {
			_, _ = bold.Fprintln(w, "Examples:")
			for _, example := range result.Examples {
				_, _ = fmt.Fprintf(w, "  - %s\n", example)
			}
		}
		writeNews(w, result.News)
	}
}

func writeNews(w io.Writer, outcome *news.Outcome) {
	if outcome == nil {
		return
	}
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(w, "News:")

	if outcome.Failure != nil {
		message := outcome.Failure.Message
		if outcome.Failure.Status != 0 {
			message = fmt.Sprintf("%s (status %d)", message, outcome.Failure.Status)
		}
		_, _ = color.New(color.FgRed).Fprintf(w, "  %s\n", message)
		return
	}
	if outcome.Page == nil || len(outcome.Page.Articles) == 0 {
		_, _ = fmt.Fprintln(w, "  no related news")
		return
	}
	for _, article := range outcome.Page.Articles {
		_, _ = fmt.Fprintf(w, "  - %s [%s]\n", article.Title, sentimentColor(article.Sentiment).Sprint(article.Sentiment))
	}
}

func sentimentColor(sentiment string) *color.Color {
	switch sentiment {
	case "positive":
		return color.New(color.FgGreen)
	case "negative":
		return color.New(color.FgRed)
	default:
		return color.New(color.Faint)
	}
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}
