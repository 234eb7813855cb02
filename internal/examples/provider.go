// Package examples fetches usage sentences for English headwords from the
// FreeDictionary API.
package examples

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/wordlens/internal/config"
)

// MaxExamples is the most sentences returned for one headword.
const MaxExamples = 5

// ErrNoExamples is returned when the API knows the word but has no example sentence.
var ErrNoExamples = errors.New("no examples")

type Provider struct {
	client *resty.Client
}

func NewProvider(cfg config.ExamplesConfig) *Provider {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &Provider{client: client}
}

// FetchExamples calls the API and returns up to MaxExamples sentences.
func (p *Provider) FetchExamples(ctx context.Context, headword string) ([]string, error) {
	res, err := p.client.R().
		SetContext(ctx).
		SetPathParam("word", headword).
		Get("/{word}")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), res.String())
	}

	var entries []apiEntry
	if err := json.Unmarshal(res.Body(), &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	examples := collectExamples(entries, MaxExamples)
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}
	return examples, nil
}

// GetExamples never fails. Any error from FetchExamples falls back to
// DefaultExamples.
func (p *Provider) GetExamples(ctx context.Context, headword string) []string {
	examples, err := p.FetchExamples(ctx, headword)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, ErrNoExamples) {
			level = slog.LevelDebug
		}
		slog.Default().Log(ctx, level, "falling back to default examples",
			slog.String("headword", headword),
			slog.Any("error", err),
		)
		return DefaultExamples(headword)
	}
	return examples
}
