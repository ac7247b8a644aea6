package config

import (
	"net/http"

	"github.com/adrianliechti/smartsearch/pkg/otel"
	"github.com/adrianliechti/smartsearch/pkg/searcher"
	"github.com/adrianliechti/smartsearch/pkg/searcher/exa"
)

type searcherFactory func(token string) (searcher.Provider, error)

// Searcher returns a search client bound to the given credential.
func (c *Config) Searcher(token string) (searcher.Provider, error) {
	return c.searcher(token)
}

type searcherConfig struct {
	URL string `yaml:"url"`

	Proxy *proxyConfig `yaml:"proxy"`
}

func (c *Config) registerSearcher(f *configFile) error {
	client, err := f.Search.Proxy.proxyClient()

	if err != nil {
		return err
	}

	c.searcher = exaSearcher(f.Search, client)

	return nil
}

func exaSearcher(cfg searcherConfig, client *http.Client) searcherFactory {
	return func(token string) (searcher.Provider, error) {
		var options []exa.Option

		if cfg.URL != "" {
			options = append(options, exa.WithURL(cfg.URL))
		}

		if client != nil {
			options = append(options, exa.WithClient(client))
		}

		s, err := exa.New(token, options...)

		if err != nil {
			return nil, err
		}

		return otel.NewSearcher("exa", s), nil
	}
}
