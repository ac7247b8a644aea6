package searcher

import (
	"context"
	"strings"
)

type Provider interface {
	Search(ctx context.Context, query string, options *SearchOptions) ([]Result, error)
}

type SearchOptions struct {
	Limit *int

	Filter Filter
}

// Result is a raw provider record. Optional fields stay nil when the
// provider omits them.
type Result struct {
	ID string

	URL   string
	Title string

	Text string

	Author        *string
	PublishedDate *string

	Score *float64
}

type Filter string

const (
	FilterAll    Filter = "all"
	FilterNews   Filter = "news"
	FilterBlogs  Filter = "blogs"
	FilterPDF    Filter = "pdf"
	FilterGitHub Filter = "github"
)

func Filters() []Filter {
	return []Filter{FilterAll, FilterNews, FilterBlogs, FilterPDF, FilterGitHub}
}

// ParseFilter maps a user supplied value onto the closed filter set.
// Unknown values degrade to FilterAll.
func ParseFilter(val string) Filter {
	switch f := Filter(strings.ToLower(strings.TrimSpace(val))); f {
	case FilterNews, FilterBlogs, FilterPDF, FilterGitHub:
		return f
	}

	return FilterAll
}

// Shape applies the query rewriting of a filter. News and blogs are accepted
// but not translated into provider constraints.
func (f Filter) Shape(query string) (string, []string) {
	switch f {
	case FilterPDF:
		return query + " filetype:pdf", nil

	case FilterGitHub:
		return query, []string{"github.com"}
	}

	return query, nil
}
