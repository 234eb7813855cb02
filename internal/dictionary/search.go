package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// MaxResults caps both the candidate list and the example list.
const MaxResults = 5

// MatchKind tags which variant of Result is populated.
type MatchKind string

const (
	MatchNotFound MatchKind = "not_found"
	MatchExact    MatchKind = "exact"
	MatchSimilar  MatchKind = "similar"
)

// Result is the outcome of a search. Build it with NotFoundResult,
// ExactResult or SimilarResult so that only the fields of Kind are set.
type Result struct {
	Kind       MatchKind
	Entry      Entry
	Examples   []string
	Candidates []Entry
}

func NotFoundResult() Result {
	return Result{Kind: MatchNotFound}
}

func ExactResult(entry Entry, examples []string) Result {
	if examples == nil {
		examples = []string{}
	}
	if len(examples) > MaxResults {
		examples = examples[:MaxResults]
	}
	return Result{Kind: MatchExact, Entry: entry, Examples: examples}
}

func SimilarResult(candidates []Entry) Result {
	if len(candidates) > MaxResults {
		candidates = candidates[:MaxResults]
	}
	return Result{Kind: MatchSimilar, Candidates: candidates}
}

// ResultPayload is the JSON shape of a Result.
type ResultPayload struct {
	Type         MatchKind `json:"type"`
	Word         *string   `json:"word,omitempty"`
	Translation  *string   `json:"translation,omitempty"`
	SimilarWords []Entry   `json:"similar_words,omitempty"`
	Examples     *[]string `json:"examples,omitempty"`
}

func (r Result) Payload() ResultPayload {
	payload := ResultPayload{Type: r.Kind}
	switch r.Kind {
	case MatchExact:
		word, translation, examples := r.Entry.Headword, r.Entry.Translation, r.Examples
		if examples == nil {
			examples = []string{}
		}
		payload.Word = &word
		payload.Translation = &translation
		payload.Examples = &examples
	case MatchSimilar:
		payload.SimilarWords = r.Candidates
	}
	return payload
}

// MarshalJSON leaves <, > and & unescaped so translations and examples print
// as stored.
func (r Result) MarshalJSON() ([]byte, error) {
	return EncodeJSON(r.Payload())
}

// EncodeJSON marshals v without HTML escaping.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// SearchError is a storage failure while searching. It is the only error
// Searcher returns.
type SearchError struct {
	Query string
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %q: %v", e.Query, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// ExampleProvider returns usage examples for a headword. It degrades
// internally and never fails.
type ExampleProvider interface {
	GetExamples(ctx context.Context, headword string) []string
}

// Searcher ranks dictionary entries against queries.
type Searcher struct {
	source    Source
	schema    Schema
	examples  ExampleProvider
	foldWidth bool
}

type SearcherOption func(*Searcher)

// WithWidthFolding makes the searcher apply FoldWidth to queries before
// normalizing them.
func WithWidthFolding(enabled bool) SearcherOption {
	return func(s *Searcher) {
		s.foldWidth = enabled
	}
}

// NewSearcher creates a Searcher. examples may be nil, in which case exact
// matches carry no examples.
func NewSearcher(source Source, schema Schema, examples ExampleProvider, options ...SearcherOption) *Searcher {
	searcher := &Searcher{
		source:   source,
		schema:   schema,
		examples: examples,
	}
	for _, option := range options {
		option(searcher)
	}
	return searcher
}

func (s *Searcher) Schema() Schema {
	return s.schema
}

// Rank classifies a query as not found, exact or similar without fetching
// examples.
func (s *Searcher) Rank(ctx context.Context, raw string) (Result, error) {
	if s.foldWidth {
		raw = FoldWidth(raw)
	}
	text := Normalize(raw)
	if text == "" {
		return NotFoundResult(), nil
	}

	field := FieldHeadword
	if IsChinese(text) {
		field = FieldTranslation
	}

	entries, err := s.source.Search(ctx, s.schema, field, text, MaxResults)
	if err != nil {
		return Result{}, &SearchError{Query: text, Err: err}
	}
	if len(entries) == 0 {
		return NotFoundResult(), nil
	}

	top := entries[0]
	value := top.Headword
	if field == FieldTranslation {
		value = top.Translation
	}
	value = strings.ToLower(value)
	if value == text || strings.HasPrefix(value, text) {
		return ExactResult(top, nil), nil
	}
	return SimilarResult(entries), nil
}

// Search ranks a query and attaches examples to an exact match.
func (s *Searcher) Search(ctx context.Context, raw string) (Result, error) {
	result, err := s.Rank(ctx, raw)
	if err != nil {
		return Result{}, err
	}
	if result.Kind != MatchExact || s.examples == nil {
		return result, nil
	}

	examples := s.examples.GetExamples(ctx, result.Entry.Headword)
	slog.Default().DebugContext(ctx, "examples attached",
		slog.String("headword", result.Entry.Headword),
		slog.Int("count", len(examples)),
	)
	return ExactResult(result.Entry, examples), nil
}
