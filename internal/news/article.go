package news

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// MaxArticles is the most articles kept from one upstream page.
const MaxArticles = 5

const (
	defaultSentiment = "neutral"
	truncationMarker = "...["
	fetchFailed      = "failed to fetch news"
)

// Article is a trimmed news article. Every field is best effort.
type Article struct {
	ID          any     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PublishedAt *string `json:"published_at"`
	Author      *string `json:"author"`
	Image       *string `json:"image"`
	Sentiment   string  `json:"sentiment"`
}

// Page is a successful news lookup.
type Page struct {
	Status   string    `json:"status"`
	Articles []Article `json:"articles"`
}

// Failure is an inline news error. Status is the upstream HTTP status when
// there was one.
type Failure struct {
	Message string `json:"error"`
	Status  int    `json:"status,omitempty"`
}

// Outcome is either a Page or a Failure.
type Outcome struct {
	Page    *Page
	Failure *Failure
}

func Succeeded(page Page) Outcome {
	if page.Articles == nil {
		page.Articles = []Article{}
	}
	return Outcome{Page: &page}
}

// Failed turns a lookup error into an Outcome. Upstream status errors keep
// their status code.
func Failed(err error) Outcome {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return Outcome{Failure: &Failure{Message: fetchFailed, Status: statusErr.Code}}
	}
	return Outcome{Failure: &Failure{Message: err.Error()}}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Failure != nil {
		return encodeJSON(o.Failure)
	}
	page := Page{Articles: []Article{}}
	if o.Page != nil {
		page = *o.Page
		if page.Articles == nil {
			page.Articles = []Article{}
		}
	}
	return encodeJSON(page)
}

// encodeJSON marshals v without HTML escaping so article text keeps its
// ampersands and angle brackets.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

type apiResponse struct {
	Status  string       `json:"status"`
	Results []apiArticle `json:"results"`
}

type apiArticle struct {
	ID          any           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	PublishedAt *string       `json:"published_at"`
	Author      *apiAuthor    `json:"author"`
	Image       *string       `json:"image"`
	Sentiment   *apiSentiment `json:"sentiment"`
}

type apiAuthor struct {
	Name *string `json:"name"`
}

type apiSentiment struct {
	Overall *struct {
		Polarity string `json:"polarity"`
	} `json:"overall"`
}

func (r apiResponse) toPage() Page {
	results := r.Results
	if len(results) > MaxArticles {
		results = results[:MaxArticles]
	}
	articles := make([]Article, 0, len(results))
	for _, result := range results {
		articles = append(articles, result.toArticle())
	}
	return Page{Status: r.Status, Articles: articles}
}

func (a apiArticle) toArticle() Article {
	article := Article{
		ID:          a.ID,
		Title:       cutTruncated(a.Title),
		Description: cutTruncated(a.Description),
		PublishedAt: a.PublishedAt,
		Image:       a.Image,
		Sentiment:   defaultSentiment,
	}
	if a.Author != nil {
		article.Author = a.Author.Name
	}
	if a.Sentiment != nil && a.Sentiment.Overall != nil && a.Sentiment.Overall.Polarity != "" {
		article.Sentiment = a.Sentiment.Overall.Polarity
	}
	return article
}

// cutTruncated drops the "...[+123 chars]" tail the upstream appends to
// shortened text.
func cutTruncated(text string) string {
	before, _, _ := strings.Cut(text, truncationMarker)
	return before
}
