package headers

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/headerkit/pkg/logger"
)

// HandlerFunc produces a response for a request.
type HandlerFunc func(r *http.Request) *http.Response

// ResponseHeaders applies accumulated header contributions to outgoing responses.
// Every request gets its own Sink seeded with the configured defaults.
type ResponseHeaders struct {
	defaults []Header
	logger   *slog.Logger
}

// Option configures ResponseHeaders.
type Option func(*ResponseHeaders)

// WithLogger sets the logger used to report flushes and dropped contributions.
func WithLogger(l *slog.Logger) Option {
	return func(rh *ResponseHeaders) {
		if l != nil {
			rh.logger = l
		}
	}
}

// WithDefaults registers contributions applied to every response before
// the ones pushed while handling the request.
func WithDefaults(defaults ...Header) Option {
	return func(rh *ResponseHeaders) {
		rh.defaults = append(rh.defaults, defaults...)
	}
}

// New creates the response headers middleware.
func New(opts ...Option) *ResponseHeaders {
	rh := &ResponseHeaders{logger: logger.Discard()}
	for _, opt := range opts {
		opt(rh)
	}
	return rh
}

// NewSink returns a fresh per-request sink seeded with the defaults.
func (rh *ResponseHeaders) NewSink() *Sink {
	return NewSink(rh.defaults...)
}

// Process calls next with a request carrying a fresh Sink, then adds all
// pending contributions to the returned response.
func (rh *ResponseHeaders) Process(r *http.Request, next HandlerFunc) *http.Response {
	sink := rh.NewSink()
	r = r.WithContext(WithContext(r.Context(), sink))

	resp := next(r)
	if resp == nil {
		return nil
	}
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}
	sink.ApplyTo(resp.Header)
	rh.logger.DebugContext(r.Context(), "response headers applied", logger.HeaderCount(sink.Len()))

	return resp
}

// Middleware adapts ResponseHeaders to net/http. Pending contributions are
// written right before the status line is committed, or after next returns
// when the handler wrote nothing.
func (rh *ResponseHeaders) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sink := rh.NewSink()
		r = r.WithContext(WithContext(r.Context(), sink))
		fw := &flushWriter{ResponseWriter: w, sink: sink}

		next.ServeHTTP(fw, r)

		if !fw.flushed {
			fw.apply()
			rh.logger.DebugContext(r.Context(), "response headers applied", logger.HeaderCount(fw.applied))
			return
		}
		if dropped := sink.Len() - fw.applied; dropped > 0 {
			rh.logger.WarnContext(r.Context(), "header contributions pushed after response was committed",
				logger.HeaderCount(dropped),
			)
		}
	})
}

type flushWriter struct {
	http.ResponseWriter
	sink    *Sink
	flushed bool
	applied int
}

func (w *flushWriter) apply() {
	if w.flushed {
		return
	}
	w.flushed = true
	w.applied = w.sink.Len()
	w.sink.ApplyTo(w.ResponseWriter.Header())
}

func (w *flushWriter) WriteHeader(code int) {
	w.apply()
	w.ResponseWriter.WriteHeader(code)
}

func (w *flushWriter) Write(b []byte) (int, error) {
	w.apply()
	return w.ResponseWriter.Write(b)
}

// Flush implements http.Flusher to support streaming handlers.
func (w *flushWriter) Flush() {
	w.apply()
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *flushWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
