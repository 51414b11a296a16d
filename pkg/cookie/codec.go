package cookie

import (
	"fmt"

	"github.com/gorilla/securecookie"
)

// Codec turns a plain value into the string sent to the client.
// *securecookie.SecureCookie satisfies it.
type Codec interface {
	Encode(name string, value any) (string, error)
}

// NewSecureCodec returns a securecookie codec that signs values with
// hashKey and, when blockKey is non-empty, encrypts them with AES.
// The encoded output only uses characters allowed in cookie values.
func NewSecureCodec(hashKey, blockKey []byte) (*securecookie.SecureCookie, error) {
	if len(hashKey) < 32 {
		return nil, fmt.Errorf("%w: hash key has %d bytes, need at least 32", ErrInvalidCodecKey, len(hashKey))
	}
	switch len(blockKey) {
	case 0:
		blockKey = nil
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: block key must be 16, 24 or 32 bytes, got %d", ErrInvalidCodecKey, len(blockKey))
	}
	return securecookie.New(hashKey, blockKey), nil
}
