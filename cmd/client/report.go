package main

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
	"time"

	"github.com/adrianliechti/smartsearch/pkg/client"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	//go:embed report.html
	reportHTML string

	reportTemplate = template.Must(template.New("report").Parse(reportHTML))
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// writeReport renders a search response as a standalone HTML page. The
// summary is Markdown and gets converted, everything else is escaped.
func writeReport(w io.Writer, result *client.SearchResponse) error {
	var summary bytes.Buffer

	if err := markdown.Convert([]byte(result.Summary), &summary); err != nil {
		return err
	}

	return reportTemplate.Execute(w, map[string]any{
		"Query":  result.Query,
		"Filter": result.Filter,
		"Model":  result.Model,

		"Date": time.Now().Format(time.RFC1123),

		"Summary": template.HTML(summary.String()),
		"Results": result.Results,
	})
}
