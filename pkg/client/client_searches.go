package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/adrianliechti/smartsearch/pkg/credential"
	"github.com/adrianliechti/smartsearch/server/api"
)

type SearchService struct {
	Options []RequestOption
}

func NewSearchService(opts ...RequestOption) SearchService {
	return SearchService{
		Options: opts,
	}
}

type APIKeys = credential.Keys

type SearchResult = api.SearchResult
type SearchResponse = api.SearchResponse

type SearchRequest struct {
	Query string

	Filter string
	Model  string

	APIKeys *APIKeys
}

func (r *SearchService) New(ctx context.Context, input SearchRequest, opts ...RequestOption) (*SearchResponse, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, _ := json.Marshal(api.SearchRequest{
		Query: input.Query,

		Filter: input.Filter,
		Model:  input.Model,

		APIKeys: input.APIKeys,
	})

	req, err := http.NewRequestWithContext(ctx, "POST", strings.TrimRight(c.URL, "/")+"/api/search", bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var result api.ErrorResponse

		if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && result.Error != "" {
			return nil, errors.New(result.Error)
		}

		return nil, errors.New(resp.Status)
	}

	var result SearchResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
