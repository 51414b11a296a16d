package logger

import "log/slog"

// Error returns an "error" attribute, or an empty attribute for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Cookie names the cookie a record refers to.
func Cookie(name string) slog.Attr {
	return slog.String("cookie", name)
}

// Revoked marks whether an emitted cookie was a revocation.
func Revoked(v bool) slog.Attr {
	return slog.Bool("revoked", v)
}

// HeaderCount reports a number of header contributions.
func HeaderCount(n int) slog.Attr {
	return slog.Int("count", n)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
