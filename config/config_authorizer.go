package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/smartsearch/pkg/auth"
	"github.com/adrianliechti/smartsearch/pkg/auth/header"
	"github.com/adrianliechti/smartsearch/pkg/auth/static"
)

type authorizerConfig struct {
	Type string `yaml:"type"`

	Token  string   `yaml:"token"`
	Tokens []string `yaml:"tokens"`

	UserHeader  string `yaml:"user_header"`
	EmailHeader string `yaml:"email_header"`
}

func (c *Config) registerAuthorizer(f *configFile) error {
	for _, a := range f.Authorizers {
		authorizer, err := createAuthorizer(a)

		if err != nil {
			return err
		}

		c.Authorizers = append(c.Authorizers, authorizer)
	}

	return nil
}

func createAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "header":
		return headerAuthorizer(cfg)

	case "static":
		return staticAuthorizer(cfg)

	default:
		return nil, errors.New("invalid authorizer type: " + cfg.Type)
	}
}

func headerAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	return header.New(
		header.WithUserHeader(cfg.UserHeader),
		header.WithEmailHeader(cfg.EmailHeader),
	)
}

func staticAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	tokens := append([]string{cfg.Token}, cfg.Tokens...)
	return static.New(tokens...)
}
