package dictionary

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{Table: "stardict", HeadwordColumn: "word", TranslationColumn: "translation"}

func newTestMemorySource() *MemorySource {
	return NewMemorySource(MemoryTable{
		Name:    "stardict",
		Columns: []string{"id", "word", "translation"},
		Rows: [][]string{
			{"1", "book", "n. 书"},
			{"2", "booking", "n. 预订"},
			{"3", "bookcase", "n. 书架"},
			{"4", "notebook", "n. 笔记本"},
			{"5", "Hello", "int. 喂"},
			{"6", "textbook", "n. 教科书"},
			{"7", "ebook", "n. 电子书"},
			{"8", "handbook", "n. 手册"},
			{"9", "bookworm", "n. 书呆子"},
			{"10", "apple", "苹果"},
		},
	})
}

type fakeExamples struct {
	examples []string
	calls    []string
}

func (f *fakeExamples) GetExamples(_ context.Context, headword string) []string {
	f.calls = append(f.calls, headword)
	return f.examples
}

type recordingSource struct {
	Source
	fields []Field
	err    error
}

func (s *recordingSource) Search(ctx context.Context, schema Schema, field Field, text string, limit int) ([]Entry, error) {
	s.fields = append(s.fields, field)
	if s.err != nil {
		return nil, s.err
	}
	return s.Source.Search(ctx, schema, field, text, limit)
}

func TestSearcher_Search(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		options       []SearcherOption
		examples      []string
		want          Result
		wantExampleOf []string
	}{
		{
			name:  "empty query",
			query: "",
			want:  NotFoundResult(),
		},
		{
			name:  "whitespace only query",
			query: " \t\n　",
			want:  NotFoundResult(),
		},
		{
			name:          "exact headword match",
			query:         "book",
			examples:      []string{"I'm reading a good book right now."},
			want:          ExactResult(Entry{Headword: "book", Translation: "n. 书"}, []string{"I'm reading a good book right now."}),
			wantExampleOf: []string{"book"},
		},
		{
			name:          "case-insensitive match after trimming keeps stored casing",
			query:         "  HELLO ",
			examples:      []string{"Hello, how are you today?"},
			want:          ExactResult(Entry{Headword: "Hello", Translation: "int. 喂"}, []string{"Hello, how are you today?"}),
			wantExampleOf: []string{"Hello"},
		},
		{
			name:  "full-width query is not folded by default",
			query: "ＢＯＯＫ",
			want:  NotFoundResult(),
		},
		{
			name:          "full-width query is folded when enabled",
			query:         "ＢＯＯＫ",
			options:       []SearcherOption{WithWidthFolding(true)},
			want:          ExactResult(Entry{Headword: "book", Translation: "n. 书"}, nil),
			wantExampleOf: []string{"book"},
		},
		{
			name:          "prefix of the top row counts as exact",
			query:         "boo",
			want:          ExactResult(Entry{Headword: "book", Translation: "n. 书"}, nil),
			wantExampleOf: []string{"book"},
		},
		{
			name:  "substring only matches are similar and ranked by length",
			query: "ook",
			want: SimilarResult([]Entry{
				{Headword: "book", Translation: "n. 书"},
				{Headword: "ebook", Translation: "n. 电子书"},
				{Headword: "booking", Translation: "n. 预订"},
				{Headword: "bookcase", Translation: "n. 书架"},
				{Headword: "notebook", Translation: "n. 笔记本"},
			}),
		},
		{
			name:          "chinese query searches translations",
			query:         "苹果",
			want:          ExactResult(Entry{Headword: "apple", Translation: "苹果"}, nil),
			wantExampleOf: []string{"apple"},
		},
		{
			name:  "chinese substring is similar",
			query: "书",
			want: SimilarResult([]Entry{
				{Headword: "book", Translation: "n. 书"},
				{Headword: "bookcase", Translation: "n. 书架"},
				{Headword: "textbook", Translation: "n. 教科书"},
				{Headword: "ebook", Translation: "n. 电子书"},
				{Headword: "bookworm", Translation: "n. 书呆子"},
			}),
		},
		{
			name:  "no match",
			query: "zzznotaword",
			want:  NotFoundResult(),
		},
		{
			name:  "like wildcards match literally",
			query: "b%k",
			want:  NotFoundResult(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			examples := &fakeExamples{examples: tt.examples}
			searcher := NewSearcher(newTestMemorySource(), testSchema, examples, tt.options...)

			got, err := searcher.Search(context.Background(), tt.query)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
			assert.Equal(t, tt.wantExampleOf, examples.calls)
		})
	}
}

func TestSearcher_SearchField(t *testing.T) {
	tests := []struct {
		query string
		want  Field
	}{
		{query: "book", want: FieldHeadword},
		{query: "书", want: FieldTranslation},
		{query: "book 书", want: FieldTranslation},
		{query: "café", want: FieldHeadword},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			source := &recordingSource{Source: newTestMemorySource()}
			_, err := NewSearcher(source, testSchema, nil).Rank(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, []Field{tt.want}, source.fields)
		})
	}
}

func TestSearcher_Limits(t *testing.T) {
	rows := make([][]string, 0, 20)
	for i := 0; i < 20; i++ {
		rows = append(rows, []string{fmt.Sprintf("%02d-word", i), fmt.Sprintf("translation %d", i)})
	}
	source := NewMemorySource(MemoryTable{Name: "words", Columns: []string{"word", "trans"}, Rows: rows})
	schema := Schema{Table: "words", HeadwordColumn: "word", TranslationColumn: "trans"}

	t.Run("similar candidates are capped", func(t *testing.T) {
		got, err := NewSearcher(source, schema, nil).Search(context.Background(), "word")
		require.NoError(t, err)
		assert.Equal(t, MatchSimilar, got.Kind)
		assert.Len(t, got.Candidates, MaxResults)
	})

	t.Run("examples are capped", func(t *testing.T) {
		examples := &fakeExamples{examples: []string{"1", "2", "3", "4", "5", "6", "7"}}
		got, err := NewSearcher(source, schema, examples).Search(context.Background(), "00-word")
		require.NoError(t, err)
		assert.Equal(t, MatchExact, got.Kind)
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got.Examples)
	})
}

func TestSearcher_Rank(t *testing.T) {
	examples := &fakeExamples{examples: []string{"unused"}}
	searcher := NewSearcher(newTestMemorySource(), testSchema, examples)

	got, err := searcher.Rank(context.Background(), "book")
	require.NoError(t, err)
	assert.Equal(t, ExactResult(Entry{Headword: "book", Translation: "n. 书"}, nil), got)
	assert.Empty(t, examples.calls)
}

func TestSearcher_Idempotent(t *testing.T) {
	searcher := NewSearcher(newTestMemorySource(), testSchema, &fakeExamples{examples: []string{"a"}})
	for _, query := range []string{"book", "ook", "书", "missing"} {
		first, err := searcher.Search(context.Background(), query)
		require.NoError(t, err)
		second, err := searcher.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, first, second, query)
	}
}

func TestSearcher_StorageError(t *testing.T) {
	wantErr := errors.New("disk I/O error")
	source := &recordingSource{Source: newTestMemorySource(), err: wantErr}

	_, err := NewSearcher(source, testSchema, nil).Search(context.Background(), "book")
	require.Error(t, err)

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, "book", searchErr.Query)
	assert.ErrorIs(t, err, wantErr)
}

func TestResult_MarshalJSON_KeepsHTMLCharacters(t *testing.T) {
	got, err := ExactResult(Entry{Headword: "R&D", Translation: "n. <研发>"}, []string{"a <b>"}).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"type":"exact","word":"R&D","translation":"n. <研发>","examples":["a <b>"]}`, string(got))
}

func TestResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "not found",
			result: NotFoundResult(),
			want:   `{"type":"not_found"}`,
		},
		{
			name:   "exact without examples",
			result: ExactResult(Entry{Headword: "book", Translation: ""}, nil),
			want:   `{"type":"exact","word":"book","translation":"","examples":[]}`,
		},
		{
			name:   "exact with examples",
			result: ExactResult(Entry{Headword: "book", Translation: "n. 书"}, []string{"a book"}),
			want:   `{"type":"exact","word":"book","translation":"n. 书","examples":["a book"]}`,
		},
		{
			name:   "similar",
			result: SimilarResult([]Entry{{Headword: "ebook", Translation: "n. 电子书"}}),
			want:   `{"type":"similar","similar_words":[{"word":"ebook","translation":"n. 电子书"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.result.MarshalJSON()
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestMemorySource_SkipsShortRows(t *testing.T) {
	source := NewMemorySource(MemoryTable{
		Name:    "stardict",
		Columns: []string{"id", "word", "translation"},
		Rows: [][]string{
			{"1", "book"},
			{"2"},
			{},
			{"3", "booking", "n. 预订"},
		},
	})

	got, err := source.Search(context.Background(), testSchema, FieldHeadword, "book", MaxResults)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Headword: "booking", Translation: "n. 预订"}}, got)

	result, err := NewSearcher(source, testSchema, nil).Rank(context.Background(), "book")
	require.NoError(t, err)
	assert.Equal(t, ExactResult(Entry{Headword: "booking", Translation: "n. 预订"}, nil), result)
}
