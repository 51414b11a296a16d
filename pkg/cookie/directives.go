package cookie

import "time"

// SameSite is the value of the SameSite directive.
type SameSite string

const (
	SameSiteDefault SameSite = ""
	SameSiteLax     SameSite = "Lax"
	SameSiteStrict  SameSite = "Strict"
)

// ParseSameSite maps "Strict" to SameSiteStrict and anything else to SameSiteLax.
func ParseSameSite(v string) SameSite {
	if v == string(SameSiteStrict) {
		return SameSiteStrict
	}
	return SameSiteLax
}

// Directives is the set of attributes compiled into a Set-Cookie header.
//
// A zero Expires and a zero MaxAge both mean "not set". When both are set,
// MaxAge wins and Expires is recomputed from it at compile time.
type Directives struct {
	Domain   string
	Path     string
	Expires  time.Time
	MaxAge   int
	Secure   bool
	HTTPOnly bool
	SameSite SameSite
}

// DefaultDirectives returns directives with only the root Path set.
func DefaultDirectives() Directives {
	return Directives{Path: "/"}
}

// expiry resolves the authoritative expiry against now and returns both
// representations. A zero time means no expiry directives are emitted.
func (d Directives) expiry(now time.Time) (time.Time, int64) {
	switch {
	case d.MaxAge != 0:
		return time.Unix(now.Unix()+int64(d.MaxAge), 0), int64(d.MaxAge)
	case !d.Expires.IsZero():
		return d.Expires, d.Expires.Unix() - now.Unix()
	}
	return time.Time{}, 0
}

// Directive overrides a single attribute.
type Directive func(*Directives)

func WithDomain(domain string) Directive {
	return func(d *Directives) { d.Domain = domain }
}

func WithPath(path string) Directive {
	return func(d *Directives) { d.Path = path }
}

func WithExpires(t time.Time) Directive {
	return func(d *Directives) { d.Expires = t }
}

// WithMaxAge sets MaxAge in seconds; 0 clears it.
func WithMaxAge(seconds int) Directive {
	return func(d *Directives) { d.MaxAge = seconds }
}

func WithSecure() Directive {
	return func(d *Directives) { d.Secure = true }
}

func WithHTTPOnly() Directive {
	return func(d *Directives) { d.HTTPOnly = true }
}

// WithSameSite sets SameSite, normalizing every value but "Strict" to "Lax".
func WithSameSite(v string) Directive {
	return func(d *Directives) { d.SameSite = ParseSameSite(v) }
}
