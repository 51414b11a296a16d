package cookie

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/headerkit/pkg/headers"
	"github.com/dmitrymomot/headerkit/pkg/logger"
)

// PermanentMaxAge is five years in seconds.
const PermanentMaxAge = 5 * 365 * 24 * 60 * 60

// Factory accumulates directives through chained setters and creates
// cookies bound to its sink. Each cookie gets its own copy of the
// directives, so later setter calls never change cookies already created.
type Factory struct {
	sink       Sink
	defaults   Directives
	directives Directives
	clock      Clock
	codec      Codec
	logger     *slog.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithClock sets the time source used when compiling headers.
func WithClock(c Clock) Option {
	return func(f *Factory) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithCodec encodes every value passed to Cookie.Send.
func WithCodec(c Codec) Option {
	return func(f *Factory) { f.codec = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l.With(logger.Component("cookie"))
		}
	}
}

// WithDefaults replaces the directives that Reset restores.
func WithDefaults(d Directives) Option {
	return func(f *Factory) { f.defaults = d }
}

// NewFactory returns a Factory pushing headers to sink.
func NewFactory(sink Sink, opts ...Option) *Factory {
	f := &Factory{
		sink:     sink,
		defaults: DefaultDirectives(),
		clock:    SystemClock,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.directives = f.defaults
	return f
}

// FromContext returns a Factory bound to the request sink stored by
// headers.ResponseHeaders.
func FromContext(ctx context.Context, opts ...Option) (*Factory, error) {
	sink := headers.FromContext(ctx)
	if sink == nil {
		return nil, ErrNoSink
	}
	return NewFactory(sink, opts...), nil
}

// Reset restores the default directives and applies overrides on top.
// The resulting state does not depend on earlier setter calls.
func (f *Factory) Reset(overrides ...Directive) *Factory {
	f.directives = f.defaults
	for _, o := range overrides {
		if o != nil {
			o(&f.directives)
		}
	}
	return f
}

// Directives returns a copy of the directives currently configured.
func (f *Factory) Directives() Directives { return f.directives }

func (f *Factory) Domain(domain string) *Factory {
	f.directives.Domain = domain
	return f
}

func (f *Factory) Path(path string) *Factory {
	f.directives.Path = path
	return f
}

// Expires sets the expiry date. A MaxAge set on the factory still takes
// precedence.
func (f *Factory) Expires(t time.Time) *Factory {
	f.directives.Expires = t
	return f
}

// MaxAge sets the lifetime in seconds, counted from the moment the header
// is compiled. 0 clears it.
func (f *Factory) MaxAge(seconds int) *Factory {
	f.directives.MaxAge = seconds
	return f
}

func (f *Factory) HTTPOnly() *Factory {
	f.directives.HTTPOnly = true
	return f
}

func (f *Factory) Secure() *Factory {
	f.directives.Secure = true
	return f
}

// SameSite sets SameSite=Strict for "Strict" and SameSite=Lax for any other value.
func (f *Factory) SameSite(v string) *Factory {
	f.directives.SameSite = ParseSameSite(v)
	return f
}

// Cookie creates a cookie with a snapshot of the current directives.
func (f *Factory) Cookie(name string) (*Cookie, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Cookie{
		name:       name,
		directives: f.directives,
		sink:       f.sink,
		clock:      f.clock,
		codec:      f.codec,
		logger:     f.logger,
	}, nil
}

// PermanentCookie sets MaxAge to PermanentMaxAge on the factory and creates
// a cookie. Any configured Expires is overridden.
func (f *Factory) PermanentCookie(name string) (*Cookie, error) {
	return f.MaxAge(PermanentMaxAge).Cookie(name)
}

// SessionCookie sets HttpOnly and SameSite=Lax on the factory and creates a cookie.
func (f *Factory) SessionCookie(name string) (*Cookie, error) {
	return f.HTTPOnly().SameSite(string(SameSiteLax)).Cookie(name)
}
