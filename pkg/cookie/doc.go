// Package cookie compiles Set-Cookie header values and emits them into a
// response header sink.
//
// # Overview
//
// Compile is a pure function turning a name, a value and a set of Directives
// into a header line:
//
//	name=value; Domain=d; Path=/; Expires=Tuesday, 01-May-2018 02:00:00 UTC; MaxAge=7200; Secure; HttpOnly; SameSite=Lax
//
// Directives with empty or false values are left out. Names and values are
// checked against a character whitelist and rejected with
// ErrIllegalCharacters; nothing is escaped.
//
// Name prefixes follow RFC 6265bis: "__Secure-" forces Secure, "__Host-"
// forces Secure, drops Domain and pins Path to "/". Prefix matching ignores
// case.
//
// # Expiry
//
// Expires and MaxAge are always emitted together. When MaxAge is set it wins
// and Expires is derived from it; otherwise MaxAge is derived from Expires.
// Both are computed from the factory Clock when the header is compiled.
//
// # Factory and Cookie
//
// A Factory holds mutable directives configured through chained setters and
// creates Cookie values holding a copy of them:
//
//	f, err := cookie.FromContext(r.Context())
//	if err != nil {
//		return err
//	}
//	c, err := f.Domain("example.com").Secure().SessionCookie("SessionId")
//	if err != nil {
//		return err
//	}
//	if err := c.Send(sessionID); err != nil {
//		return err
//	}
//
// A Cookie pushes at most one header. A second Send or Revoke returns
// ErrAlreadySent and leaves the sink untouched. Revoke sends an empty value
// with Expires at the Unix epoch.
//
// PermanentCookie and SessionCookie modify the factory before creating the
// cookie; call Reset to get back to the defaults.
//
// # Configuration
//
// Config is parsed from COOKIE_* environment variables with
// github.com/caarlos0/env (see pkg/config). NewFromConfig turns it into a
// Factory, adding a github.com/gorilla/securecookie codec when a hash key is
// configured.
package cookie
