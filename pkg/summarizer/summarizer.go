package summarizer

import (
	"context"
	_ "embed"
	"strings"
	"text/template"
)

type Provider interface {
	Summarize(ctx context.Context, sources []string, options *SummarizeOptions) (*Summary, error)
}

type SummarizeOptions struct {
	Query string
}

type Summary struct {
	Text string
}

// NoSummary is used when a provider answers without any text.
const NoSummary = "No summary generated."

var (
	//go:embed prompt.md
	prompt string

	promptTemplate = template.Must(template.New("prompt").Parse(prompt))
)

// Instructions renders the system instruction for a query.
func Instructions(query string) (string, error) {
	var sb strings.Builder

	if err := promptTemplate.Execute(&sb, map[string]any{
		"Query": query,
	}); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Content joins the source texts into the user payload.
func Content(sources []string) string {
	return "Here are the search results content:\n\n" + strings.Join(sources, "\n---\n")
}
