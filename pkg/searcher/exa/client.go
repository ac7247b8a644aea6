package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/adrianliechti/smartsearch/pkg/searcher"
)

var _ searcher.Provider = &Client{}

// DefaultLimit caps the number of results requested per search.
const DefaultLimit = 5

type Client struct {
	url    string
	token  string
	client *http.Client

	limit int
}

// Error is returned when Exa answers with a non-success status.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Exa API Error (%d): %s", e.StatusCode, e.Body)
}

func New(token string, options ...Option) (*Client, error) {
	c := &Client{
		url:    "https://api.exa.ai",
		token:  token,
		client: http.DefaultClient,

		limit: DefaultLimit,
	}

	for _, option := range options {
		option(c)
	}

	if c.token == "" {
		return nil, errors.New("invalid token")
	}

	c.url = strings.TrimRight(c.url, "/")

	return c, nil
}

func (c *Client) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	if options == nil {
		options = new(searcher.SearchOptions)
	}

	limit := c.limit

	if options.Limit != nil {
		limit = *options.Limit
	}

	query, domains := options.Filter.Shape(query)

	request := &SearchRequest{
		Query: query,

		UseAutoprompt: true,
		NumResults:    limit,

		IncludeDomains: domains,

		Contents: SearchContents{
			Text: true,
		},
	}

	body, _ := json.Marshal(request)

	req, err := http.NewRequestWithContext(ctx, "POST", c.url+"/search", bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("x-api-key", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)

		return nil, &Error{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var data SearchResponse

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	results := make([]searcher.Result, 0, len(data.Results))

	for _, r := range data.Results {
		result := searcher.Result{
			ID: r.ID,

			URL:   r.URL,
			Title: r.Title,

			Text: r.Text,

			Author:        r.Author,
			PublishedDate: r.PublishedDate,

			Score: r.Score,
		}

		results = append(results, result)
	}

	return results, nil
}
