// Package llmclient wraps the generative backend. The pipeline treats the
// backend as an opaque text-completion oracle: one prompt in, one
// free-text reply out.
package llmclient

import (
	"context"
	"errors"
)

// ErrEmptyResponse reports a backend reply with no usable text.
var ErrEmptyResponse = errors.New("llmclient: empty model response")

// Client is the provider interface. Cross-cutting concerns (logging,
// hooks) are applied via Middleware, not inside providers.
type Client interface {
	Name() string
	Close() error
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Middleware decorates a Client.
type Middleware func(Client) Client

// Chain applies middlewares left to right around base.
func Chain(base Client, mws ...Middleware) Client {
	out := base
	for _, mw := range mws {
		out = mw(out)
	}
	return out
}
