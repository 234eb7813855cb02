// Package lookup composes a dictionary match with usage examples and related
// news.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/at-ishikawa/wordlens/internal/news"
)

//go:generate mockgen -source=service.go -destination=../mocks/lookup/mock_service.go -package=mock_lookup

type Ranker interface {
	Rank(ctx context.Context, raw string) (dictionary.Result, error)
}

type ExampleProvider interface {
	GetExamples(ctx context.Context, headword string) []string
}

type NewsSearcher interface {
	Search(ctx context.Context, query string) (news.Page, error)
}

// EnrichedResult is a dictionary result plus the news outcome of an exact match.
type EnrichedResult struct {
	dictionary.Result
	News *news.Outcome
}

func (r EnrichedResult) MarshalJSON() ([]byte, error) {
	return dictionary.EncodeJSON(struct {
		dictionary.ResultPayload
		News *news.Outcome `json:"news,omitempty"`
	}{
		ResultPayload: r.Payload(),
		News:          r.News,
	})
}

type Options struct {
	ExamplesTimeout time.Duration
	NewsTimeout     time.Duration
}

type Service struct {
	ranker   Ranker
	examples ExampleProvider
	news     NewsSearcher
	options  Options
}

// NewService creates a Service. newsSearcher may be nil, in which case exact
// matches carry no news.
func NewService(ranker Ranker, examples ExampleProvider, newsSearcher NewsSearcher, options Options) *Service {
	return &Service{
		ranker:   ranker,
		examples: examples,
		news:     newsSearcher,
		options:  options,
	}
}

// HandleWordQuery ranks word and, on an exact match, fetches examples for the
// headword and news for the trimmed query concurrently. Only storage faults
// are returned as errors.
func (s *Service) HandleWordQuery(ctx context.Context, word string) (EnrichedResult, error) {
	result, err := s.ranker.Rank(ctx, word)
	if err != nil {
		return EnrichedResult{}, fmt.Errorf("ranker.Rank > %w", err)
	}
	if result.Kind != dictionary.MatchExact {
		return EnrichedResult{Result: result}, nil
	}

	var (
		examples []string
		outcome  news.Outcome
		group    errgroup.Group
	)
	group.Go(func() error {
		examples = s.Examples(ctx, result.Entry.Headword)
		return nil
	})
	if s.news != nil {
		group.Go(func() error {
			outcome = s.News(ctx, strings.TrimSpace(word))
			return nil
		})
	}
	_ = group.Wait()

	enriched := EnrichedResult{Result: dictionary.ExactResult(result.Entry, examples)}
	if s.news != nil {
		enriched.News = &outcome
	}
	return enriched, nil
}

// Examples fetches examples under the examples timeout.
func (s *Service) Examples(ctx context.Context, headword string) []string {
	ctx, cancel := withTimeout(ctx, s.options.ExamplesTimeout)
	defer cancel()
	return s.examples.GetExamples(ctx, headword)
}

// News fetches news under the news timeout. Failures become an inline
// Failure outcome.
func (s *Service) News(ctx context.Context, query string) news.Outcome {
	if s.news == nil {
		return news.Failed(fmt.Errorf("news lookup is disabled"))
	}

	ctx, cancel := withTimeout(ctx, s.options.NewsTimeout)
	defer cancel()

	page, err := s.news.Search(ctx, query)
	if err != nil {
		slog.Default().WarnContext(ctx, "news lookup failed",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return news.Failed(err)
	}
	return news.Succeeded(page)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
