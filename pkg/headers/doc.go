// Package headers accumulates response header contributions during request
// handling and applies them to the outgoing response exactly once.
//
// # Overview
//
// A Sink is an ordered, append-only list of Header contributions. Nothing is
// deduplicated and values are always added, never overwritten, so several
// Set-Cookie lines can coexist.
//
// ResponseHeaders owns the per-request sinks. It works with plain net/http
// through Middleware, or with handlers returning *http.Response through
// Process.
//
// # Usage
//
//	import (
//		"net/http"
//
//		"github.com/go-chi/chi/v5"
//
//		"github.com/dmitrymomot/headerkit/pkg/headers"
//	)
//
//	rh := headers.New(headers.WithDefaults(headers.Field{Name: "X-Frame-Options", Value: "DENY"}))
//
//	r := chi.NewRouter()
//	r.Use(rh.Middleware)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		headers.FromContext(r.Context()).Push(headers.SetCookie("theme=dark; Path=/"))
//		w.Write([]byte("ok"))
//	})
//
// # Concurrency
//
// Sinks are request scoped and carry no locking. Do not share a Sink between
// goroutines without external synchronization.
package headers
