package news

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{
			name: "articles",
			outcome: Succeeded(Page{Status: "ok", Articles: []Article{
				{ID: 1, Title: "t", Description: "d", Author: ptr("a"), Sentiment: "negative"},
			}}),
			want: `{"status":"ok","articles":[{"id":1,"title":"t","description":"d","published_at":null,"author":"a","image":null,"sentiment":"negative"}]}`,
		},
		{
			name:    "no articles",
			outcome: Succeeded(Page{Status: "ok"}),
			want:    `{"status":"ok","articles":[]}`,
		},
		{
			name:    "upstream status",
			outcome: Failed(fmt.Errorf("wrapped > %w", &StatusError{Code: 429, Body: "slow down"})),
			want:    `{"error":"failed to fetch news","status":429}`,
		},
		{
			name:    "transport error has no status",
			outcome: Failed(errors.New("connection refused")),
			want:    `{"error":"connection refused"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.outcome)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestOutcome_MarshalJSON_KeepsHTMLCharacters(t *testing.T) {
	outcome := Succeeded(Page{Status: "ok", Articles: []Article{{ID: "x", Title: "Q&A: <Books>"}}})

	got, err := outcome.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(got), `"title":"Q&A: <Books>"`)
	assert.NotContains(t, string(got), `\u0026`)
}

func TestCutTruncated(t *testing.T) {
	assert.Equal(t, "Headline", cutTruncated("Headline...[+120 chars]"))
	assert.Equal(t, "A...B", cutTruncated("A...B"))
	assert.Equal(t, "one", cutTruncated("one...[two...[three"))
	assert.Equal(t, "", cutTruncated(""))
}

func TestAPIResponse_ToPage(t *testing.T) {
	var response apiResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"status": "ok",
		"results": [
			{"id": 1, "title": "x", "author": {"name": null}, "sentiment": {"overall": {"polarity": ""}}}
		]
	}`), &response))

	page := response.toPage()
	require.Len(t, page.Articles, 1)
	assert.Nil(t, page.Articles[0].Author)
	assert.Equal(t, "neutral", page.Articles[0].Sentiment)
}
