package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/adrianliechti/smartsearch/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")

	filterFlag := flag.String("filter", "all", "result filter (all, news, blogs, pdf, github)")
	modelFlag := flag.String("model", "gemini", "summary model (gemini, openai, grok)")

	exaFlag := flag.String("exa-key", os.Getenv("EXA_API_KEY"), "exa api key")
	geminiFlag := flag.String("gemini-key", os.Getenv("GEMINI_API_KEY"), "gemini api key")
	openaiFlag := flag.String("openai-key", os.Getenv("OPENAI_API_KEY"), "openai api key")
	grokFlag := flag.String("grok-key", os.Getenv("GROK_API_KEY"), "grok api key")

	storeFlag := flag.String("store", defaultStorePath(), "saved searches file")
	saveFlag := flag.Bool("save", false, "save the search")
	listFlag := flag.Bool("saved", false, "list saved searches")
	replayFlag := flag.String("replay", "", "run a saved search by id")
	deleteFlag := flag.String("delete", "", "delete a saved search by id")

	htmlFlag := flag.String("html", "", "write an html report to this file")

	flag.Parse()

	ctx := context.Background()
	store := NewStore(*storeFlag)

	if *listFlag {
		listSaved(store)
		return
	}

	if *deleteFlag != "" {
		if err := store.Delete(*deleteFlag); err != nil {
			fail(err)
		}

		return
	}

	query := strings.Join(flag.Args(), " ")

	filter := *filterFlag
	model := *modelFlag

	if *replayFlag != "" {
		saved, err := store.Get(*replayFlag)

		if err != nil {
			fail(err)
		}

		query = saved.Query

		filter = saved.Filter
		model = saved.Model
	}

	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(os.Stderr, "usage: client [flags] <query>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	req := client.SearchRequest{
		Query: query,

		Filter: filter,
		Model:  model,
	}

	keys := client.APIKeys{
		Exa:    *exaFlag,
		Gemini: *geminiFlag,
		OpenAI: *openaiFlag,
		Grok:   *grokFlag,
	}

	if keys != (client.APIKeys{}) {
		req.APIKeys = &keys
	}

	result, err := c.Searches.New(ctx, req)

	if err != nil {
		fail(err)
	}

	printResult(result)

	if *saveFlag {
		saved, err := store.Save(result.Query, result.Model, result.Filter)

		if err != nil {
			fail(err)
		}

		fmt.Println("saved as " + saved.ID)
	}

	if *htmlFlag != "" {
		f, err := os.Create(*htmlFlag)

		if err != nil {
			fail(err)
		}

		defer f.Close()

		if err := writeReport(f, result); err != nil {
			fail(err)
		}
	}
}

func printResult(result *client.SearchResponse) {
	output := os.Stdout

	for i, r := range result.Results {
		fmt.Fprintf(output, "%2d) %s\n", i+1, r.Title)
		fmt.Fprintf(output, "    %s\n", r.URL)
		fmt.Fprintf(output, "    %s\n\n", r.Snippet)
	}

	output.WriteString(result.Summary)
	output.WriteString("\n")
}

func listSaved(store *Store) {
	searches, err := store.List()

	if err != nil {
		fail(err)
	}

	for _, s := range searches {
		id := s.ID

		if len(id) > 8 {
			id = id[:8]
		}

		fmt.Printf("%-8s  %s  %-6s %-6s %s\n", id, s.Timestamp.Local().Format("2006-01-02 15:04"), s.Model, s.Filter, s.Query)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
