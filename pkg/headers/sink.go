package headers

import "net/http"

// Sink collects header contributions for one response.
// It is not safe for concurrent use; create one per request.
type Sink struct {
	headers []Header
}

// NewSink returns a sink pre-populated with the given contributions.
func NewSink(defaults ...Header) *Sink {
	s := &Sink{headers: make([]Header, 0, len(defaults)+4)}
	for _, h := range defaults {
		if h != nil {
			s.headers = append(s.headers, h)
		}
	}
	return s
}

// Push appends a contribution. Nil contributions are ignored.
func (s *Sink) Push(h Header) {
	if h == nil {
		return
	}
	s.headers = append(s.headers, h)
}

// Len returns the number of pending contributions.
func (s *Sink) Len() int {
	return len(s.headers)
}

// ApplyTo adds every pending contribution to h in insertion order.
func (s *Sink) ApplyTo(h http.Header) {
	for _, hdr := range s.headers {
		hdr.AddTo(h)
	}
}

// Values renders pending contributions into a fresh header map.
func (s *Sink) Values() http.Header {
	h := make(http.Header, len(s.headers))
	s.ApplyTo(h)
	return h
}
