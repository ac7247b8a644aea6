package config

import (
	"errors"
	"net/http"

	"github.com/adrianliechti/smartsearch/pkg/otel"
	"github.com/adrianliechti/smartsearch/pkg/pipeline"
	"github.com/adrianliechti/smartsearch/pkg/provider"
	"github.com/adrianliechti/smartsearch/pkg/provider/google"
	"github.com/adrianliechti/smartsearch/pkg/provider/openai"
	"github.com/adrianliechti/smartsearch/pkg/provider/xai"
	"github.com/adrianliechti/smartsearch/pkg/summarizer"
	"github.com/adrianliechti/smartsearch/pkg/summarizer/adapter"
)

type summarizerFactory func(token string) (summarizer.Provider, error)

func (c *Config) RegisterSummarizer(model pipeline.Model, f summarizerFactory) {
	if c.summarizers == nil {
		c.summarizers = make(map[pipeline.Model]summarizerFactory)
	}

	c.summarizers[model] = f
}

// Summarizer returns the summarizer of a model bound to the given credential.
func (c *Config) Summarizer(model pipeline.Model, token string) (summarizer.Provider, error) {
	if c.summarizers != nil {
		if f, ok := c.summarizers[model]; ok {
			return f(token)
		}
	}

	return nil, errors.New("summarizer not found: " + string(model))
}

type summarizerConfig struct {
	URL   string `yaml:"url"`
	Model string `yaml:"model"`

	Proxy *proxyConfig `yaml:"proxy"`
}

func (c *Config) registerSummarizers(f *configFile) error {
	for id := range f.Summarizers {
		if _, ok := pipeline.Model(id).Name(); !ok {
			return errors.New("invalid summarizer: " + id)
		}
	}

	for _, model := range pipeline.Models() {
		cfg := f.Summarizers[string(model)]

		client, err := cfg.Proxy.proxyClient()

		if err != nil {
			return err
		}

		factory, err := createSummarizer(model, cfg, client)

		if err != nil {
			return err
		}

		c.RegisterSummarizer(model, factory)
	}

	return nil
}

func createSummarizer(model pipeline.Model, cfg summarizerConfig, client *http.Client) (summarizerFactory, error) {
	switch model {
	case pipeline.ModelGemini:
		return geminiSummarizer(cfg, client), nil

	case pipeline.ModelOpenAI:
		return openaiSummarizer(cfg, client), nil

	case pipeline.ModelGrok:
		return grokSummarizer(cfg, client), nil

	default:
		return nil, errors.New("invalid summarizer: " + string(model))
	}
}

func geminiSummarizer(cfg summarizerConfig, client *http.Client) summarizerFactory {
	model := cfg.Model

	if model == "" {
		model = "gemini-2.5-flash"
	}

	return func(token string) (summarizer.Provider, error) {
		options := []google.Option{
			google.WithToken(token),
		}

		if cfg.URL != "" {
			options = append(options, google.WithURL(cfg.URL))
		}

		if client != nil {
			options = append(options, google.WithClient(client))
		}

		completer, err := google.NewCompleter(model, options...)

		if err != nil {
			return nil, err
		}

		return fromCompleter("gcp.gemini", model, completer), nil
	}
}

func openaiSummarizer(cfg summarizerConfig, client *http.Client) summarizerFactory {
	model := cfg.Model

	if model == "" {
		model = "gpt-4o-mini"
	}

	return func(token string) (summarizer.Provider, error) {
		options := []openai.Option{
			openai.WithToken(token),
		}

		if client != nil {
			options = append(options, openai.WithClient(client))
		}

		completer, err := openai.NewCompleter(cfg.URL, model, options...)

		if err != nil {
			return nil, err
		}

		return fromCompleter("openai", model, completer), nil
	}
}

func grokSummarizer(cfg summarizerConfig, client *http.Client) summarizerFactory {
	model := cfg.Model

	if model == "" {
		model = "grok-beta"
	}

	return func(token string) (summarizer.Provider, error) {
		options := []openai.Option{
			openai.WithToken(token),
		}

		if client != nil {
			options = append(options, openai.WithClient(client))
		}

		completer, err := xai.NewCompleter(cfg.URL, model, options...)

		if err != nil {
			return nil, err
		}

		return fromCompleter("x_ai", model, completer), nil
	}
}

func fromCompleter(providerName, model string, completer provider.Completer) summarizer.Provider {
	if _, ok := completer.(otel.Completer); !ok {
		completer = otel.NewCompleter(providerName, model, completer)
	}

	return adapter.FromCompleter(completer)
}
