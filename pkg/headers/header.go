package headers

import "net/http"

// SetCookieHeader is the canonical response header name for cookie directives.
const SetCookieHeader = "Set-Cookie"

// Header is a single pending header contribution.
// AddTo must add its value without removing values already present under the same name.
type Header interface {
	AddTo(h http.Header)
}

// Field is a generic name/value header contribution.
type Field struct {
	Name  string
	Value string
}

// AddTo appends the field value to h.
func (f Field) AddTo(h http.Header) {
	h.Add(f.Name, f.Value)
}

// SetCookie is a compiled Set-Cookie header value.
type SetCookie string

// AddTo appends the cookie directive line to h.
func (c SetCookie) AddTo(h http.Header) {
	h.Add(SetCookieHeader, string(c))
}
