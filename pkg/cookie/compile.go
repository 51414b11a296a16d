package cookie

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateFormat is the legacy cookie-date layout used for the Expires directive.
	DateFormat = "Monday, 02-Jan-2006 15:04:05 MST"

	SecurePrefix = "__Secure-"
	HostPrefix   = "__Host-"

	nameExtraChars  = "!#$%&'*+-.^_`|~"
	valueExtraChars = nameExtraChars + "/:=?@()[]{}<>"
)

// Compile builds a Set-Cookie header value from name, value and directives.
// Directives are appended in the fixed order Domain, Path, Expires, MaxAge,
// Secure, HttpOnly, SameSite; empty or false directives are omitted.
//
// Names starting with "__Secure-" force Secure. Names starting with "__Host-"
// force Secure and Path=/ and drop Domain. Both checks ignore case.
func Compile(name, value string, d Directives, now time.Time) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if err := validateValue(value); err != nil {
		return "", err
	}

	d = applyNamePrefix(name, d)
	expires, maxAge := d.expiry(now)

	var b strings.Builder
	b.Grow(len(name) + len(value) + 128)
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)

	writeDirective(&b, "Domain", d.Domain)
	writeDirective(&b, "Path", d.Path)
	if !expires.IsZero() {
		writeDirective(&b, "Expires", expires.UTC().Format(DateFormat))
	}
	if maxAge != 0 {
		writeDirective(&b, "MaxAge", strconv.FormatInt(maxAge, 10))
	}
	writeFlag(&b, "Secure", d.Secure)
	writeFlag(&b, "HttpOnly", d.HTTPOnly)
	writeDirective(&b, "SameSite", string(d.SameSite))

	return b.String(), nil
}

func writeDirective(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("; ")
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)
}

func writeFlag(b *strings.Builder, name string, set bool) {
	if !set {
		return
	}
	b.WriteString("; ")
	b.WriteString(name)
}

func applyNamePrefix(name string, d Directives) Directives {
	if !strings.HasPrefix(name, "__") {
		return d
	}
	switch {
	case hasPrefixFold(name, SecurePrefix):
		d.Secure = true
	case hasPrefixFold(name, HostPrefix):
		d.Secure = true
		d.Domain = ""
		d.Path = "/"
	}
	return d
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty cookie name", ErrIllegalCharacters)
	}
	if i := indexIllegal(name, nameExtraChars); i >= 0 {
		return fmt.Errorf("%w: cookie name %q at position %d", ErrIllegalCharacters, name, i)
	}
	return nil
}

func validateValue(value string) error {
	if i := indexIllegal(value, valueExtraChars); i >= 0 {
		return fmt.Errorf("%w: cookie value at position %d", ErrIllegalCharacters, i)
	}
	return nil
}

// indexIllegal returns the byte offset of the first character outside
// [a-zA-Z0-9] and extra, or -1.
func indexIllegal(s, extra string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case strings.IndexByte(extra, c) >= 0:
		default:
			return i
		}
	}
	return -1
}
