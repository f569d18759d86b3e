package llmclient

import (
	"context"
	"log"
)

// WithLogging logs request sizes and errors. Pass nil to use log.Default().
func WithLogging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next Client) Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next Client
	log  *log.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateText(ctx context.Context, prompt string) (string, error) {
	l.log.Printf("LLM request (%s): %d bytes", l.next.Name(), len(prompt))
	out, err := l.next.GenerateText(ctx, prompt)
	if err != nil {
		l.log.Printf("LLM error (%s): %v", l.next.Name(), err)
		return "", err
	}
	l.log.Printf("LLM response (%s): %d bytes", l.next.Name(), len(out))
	return out, nil
}
