package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/adrianliechti/smartsearch/pkg/pipeline"
	"github.com/adrianliechti/smartsearch/pkg/searcher"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const ToolName = "web_search"

// Searcher runs one search request end to end.
type Searcher interface {
	Search(ctx context.Context, req pipeline.Request) (*pipeline.Response, error)
}

// Server exposes the search pipeline as an MCP tool over streamable HTTP.
type Server struct {
	http.Handler

	server   *mcp.Server
	searcher Searcher
}

type SearchInput struct {
	Query string `json:"query" jsonschema:"natural language search query"`

	Filter string `json:"filter,omitempty" jsonschema:"content type filter"`
	Model  string `json:"model,omitempty" jsonschema:"model used for the summary"`
}

func New(name string, s Searcher) (*Server, error) {
	serverImpl := &mcp.Implementation{
		Name: name,
	}

	serverOpts := &mcp.ServerOptions{
		KeepAlive: time.Second * 30,
	}

	server := mcp.NewServer(serverImpl, serverOpts)

	schema, err := inputSchema()

	if err != nil {
		return nil, err
	}

	result := &Server{
		server:   server,
		searcher: s,
	}

	tool := &mcp.Tool{
		Name:        ToolName,
		Description: "Search the web and summarize the top results in Markdown.",

		InputSchema: schema,
	}

	mcp.AddTool(server, tool, result.handleSearch)

	result.Handler = mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})

	return result, nil
}

func inputSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[SearchInput](nil)

	if err != nil {
		return nil, err
	}

	if p, ok := schema.Properties["filter"]; ok {
		for _, f := range searcher.Filters() {
			p.Enum = append(p.Enum, string(f))
		}
	}

	if p, ok := schema.Properties["model"]; ok {
		for _, m := range pipeline.Models() {
			p.Enum = append(p.Enum, string(m))
		}
	}

	return schema, nil
}

func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, any, error) {
	model := pipeline.ModelGemini

	if input.Model != "" {
		model = pipeline.ParseModel(input.Model)
	}

	resp, err := s.searcher.Search(ctx, pipeline.Request{
		Query: input.Query,

		Filter: searcher.ParseFilter(input.Filter),
		Model:  model,
	})

	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,

			Content: []mcp.Content{
				&mcp.TextContent{
					Text: err.Error(),
				},
			},
		}, nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: renderResponse(resp),
			},
		},
	}, nil, nil
}

func renderResponse(resp *pipeline.Response) string {
	var sb strings.Builder

	sb.WriteString(resp.Summary.String())

	if len(resp.Results) == 0 {
		return sb.String()
	}

	sb.WriteString("\n\n## Sources\n\n")

	for i, r := range resp.Results {
		fmt.Fprintf(&sb, "%d. [%s](%s)\n", i+1, r.Title, r.URL)
	}

	return sb.String()
}
