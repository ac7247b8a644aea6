package config

import (
	"bytes"
	"os"

	"github.com/adrianliechti/smartsearch/pkg/auth"
	"github.com/adrianliechti/smartsearch/pkg/credential"
	"github.com/adrianliechti/smartsearch/pkg/pipeline"

	"gopkg.in/yaml.v3"
)

var _ pipeline.Providers = (*Config)(nil)

type Config struct {
	Address string

	// Keys are the process-wide fallback credentials.
	Keys credential.Set

	Authorizers []auth.Provider

	searcher    searcherFactory
	summarizers map[pipeline.Model]summarizerFactory
}

// Parse reads the optional config file at path and fills everything it does
// not set from the environment.
func Parse(path string) (*Config, error) {
	file := new(configFile)

	if path != "" {
		f, err := parseFile(path)

		if err != nil {
			return nil, err
		}

		file = f
	}

	c := &Config{
		Address: ":8080",
	}

	if port := os.Getenv("PORT"); port != "" {
		c.Address = ":" + port
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	c.registerKeys(file)

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerSearcher(file); err != nil {
		return nil, err
	}

	if err := c.registerSummarizers(file); err != nil {
		return nil, err
	}

	return c, nil
}

// Pipeline returns the search pipeline backed by this configuration.
func (c *Config) Pipeline() *pipeline.Pipeline {
	return pipeline.New(c.Keys, c)
}

type configFile struct {
	Address string `yaml:"address"`

	Keys keysConfig `yaml:"keys"`

	Authorizers []authorizerConfig `yaml:"authorizers"`

	Search      searcherConfig              `yaml:"search"`
	Summarizers map[string]summarizerConfig `yaml:"summarizers"`
}

type keysConfig struct {
	Exa    string `yaml:"exa"`
	Gemini string `yaml:"gemini"`
	OpenAI string `yaml:"openai"`
	Grok   string `yaml:"grok"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) registerKeys(f *configFile) {
	c.Keys = credential.Set{
		Exa:    valueOrEnv(f.Keys.Exa, "EXA_API_KEY"),
		Gemini: valueOrEnv(f.Keys.Gemini, "GEMINI_API_KEY"),
		OpenAI: valueOrEnv(f.Keys.OpenAI, "OPENAI_API_KEY"),
		Grok:   valueOrEnv(f.Keys.Grok, "GROK_API_KEY"),
	}
}

func valueOrEnv(val, key string) string {
	if val != "" {
		return val
	}

	return os.Getenv(key)
}
