package cookie

import "errors"

var (
	ErrIllegalCharacters = errors.New("cookie.illegal_characters")
	ErrAlreadySent       = errors.New("cookie.already_sent")
	ErrNoSink            = errors.New("cookie.no_sink")
	ErrEncodeFailed      = errors.New("cookie.encode_failed")
	ErrInvalidCodecKey   = errors.New("cookie.invalid_codec_key")
)
