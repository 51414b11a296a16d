package cookie

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/headerkit/pkg/headers"
	"github.com/dmitrymomot/headerkit/pkg/logger"
)

// Sink receives compiled header contributions.
type Sink interface {
	Push(h headers.Header)
}

// Cookie emits at most one Set-Cookie header for a single name.
// It is not safe for concurrent use.
type Cookie struct {
	name       string
	directives Directives
	sink       Sink
	clock      Clock
	codec      Codec
	logger     *slog.Logger
	sent       bool
}

// Name returns the cookie name.
func (c *Cookie) Name() string { return c.name }

// Sent reports whether a header was already pushed for this cookie.
func (c *Cookie) Sent() bool { return c.sent }

// Directives returns a copy of the cookie's directives.
func (c *Cookie) Directives() Directives { return c.directives }

// WithName returns c itself when name is unchanged. Otherwise it returns a
// new unsent cookie with a copy of the directives and the same sink.
func (c *Cookie) WithName(name string) (*Cookie, error) {
	if name == c.name {
		return c, nil
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	clone := *c
	clone.name = name
	clone.sent = false
	return &clone, nil
}

// Send compiles the header for value and pushes it to the sink.
// With a codec configured, value is encoded first.
func (c *Cookie) Send(value string) error {
	if c.sent {
		return c.alreadySent()
	}
	if c.codec != nil {
		encoded, err := c.codec.Encode(c.name, value)
		if err != nil {
			c.logger.Warn("cookie rejected", logger.Cookie(c.name), logger.Error(err))
			return fmt.Errorf("%w: %w", ErrEncodeFailed, err)
		}
		value = encoded
	}
	return c.emit(value, c.directives, false)
}

// Revoke pushes a header telling the client to drop the cookie right away:
// an empty value with Expires at the Unix epoch.
func (c *Cookie) Revoke() error {
	if c.sent {
		return c.alreadySent()
	}
	d := c.directives
	d.MaxAge = 0
	d.Expires = time.Unix(0, 0)
	return c.emit("", d, true)
}

func (c *Cookie) emit(value string, d Directives, revoked bool) error {
	header, err := Compile(c.name, value, d, c.clock.Now())
	if err != nil {
		c.logger.Warn("cookie rejected", logger.Cookie(c.name), logger.Error(err))
		return err
	}

	c.sink.Push(headers.SetCookie(header))
	c.sent = true
	c.logger.Debug("cookie emitted", logger.Cookie(c.name), logger.Revoked(revoked))
	return nil
}

func (c *Cookie) alreadySent() error {
	err := fmt.Errorf("%w: cannot overwrite %q cookie header", ErrAlreadySent, c.name)
	c.logger.Warn("cookie rejected", logger.Cookie(c.name), logger.Error(err))
	return err
}
