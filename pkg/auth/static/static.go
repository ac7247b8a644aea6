package static

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/adrianliechti/smartsearch/pkg/auth"
)

var _ auth.Provider = (*Provider)(nil)

type Provider struct {
	tokens []string
}

// New accepts requests carrying one of the given bearer tokens. Without tokens
// every request passes.
func New(tokens ...string) (*Provider, error) {
	p := &Provider{}

	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			p.tokens = append(p.tokens, t)
		}
	}

	return p, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	if len(p.tokens) == 0 {
		return ctx, nil
	}

	header := r.Header.Get("Authorization")

	if header == "" {
		return ctx, errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(header, "Bearer ")

	if !ok {
		return ctx, errors.New("invalid authorization header")
	}

	for _, t := range p.tokens {
		if subtle.ConstantTimeCompare([]byte(t), []byte(token)) == 1 {
			return context.WithValue(ctx, auth.UserContextKey, "token"), nil
		}
	}

	return ctx, errors.New("invalid token")
}
