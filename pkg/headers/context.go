package headers

import "context"

type contextKey struct{}

// WithContext stores the request sink in ctx.
func WithContext(ctx context.Context, s *Sink) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request sink, or nil when the context carries none.
func FromContext(ctx context.Context) *Sink {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(contextKey{}).(*Sink)
	return s
}
