package exa

type SearchRequest struct {
	Query string `json:"query"`

	UseAutoprompt bool `json:"useAutoprompt"`
	NumResults    int  `json:"numResults"`

	IncludeDomains []string `json:"includeDomains,omitempty"`

	Contents SearchContents `json:"contents"`
}

type SearchContents struct {
	Text bool `json:"text,omitempty"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	ID string `json:"id"`

	URL   string `json:"url"`
	Title string `json:"title"`

	Text string `json:"text"`

	Author        *string `json:"author"`
	PublishedDate *string `json:"publishedDate"`

	Score *float64 `json:"score"`
}
