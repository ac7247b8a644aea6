package auth

import (
	"context"
	"errors"
	"net/http"
)

type contextKey string

const (
	UserContextKey  contextKey = "auth.user"
	EmailContextKey contextKey = "auth.email"
)

type Provider interface {
	Authenticate(ctx context.Context, r *http.Request) (context.Context, error)
}

// Middleware admits a request as soon as one provider accepts it. An empty
// provider list admits everything.
func Middleware(providers ...Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(providers) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			var result error

			for _, p := range providers {
				ctx, err := p.Authenticate(r.Context(), r)

				if err == nil {
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}

				result = errors.Join(result, err)
			}

			http.Error(w, result.Error(), http.StatusUnauthorized)
		})
	}
}
