// Package requestid attaches a correlation ID to every request.
//
// Middleware reuses a valid client-supplied X-Request-ID header or
// generates a UUIDv4. The ID is stored in the request context (FromContext)
// and returned to the client. Behind headers.ResponseHeaders the response
// header travels through the request sink like any other contribution.
//
//	rh := headers.New()
//	handler := rh.Middleware(requestid.Middleware(mux))
//
// LoggerExtractor plugs the ID into loggers built by pkg/logger.
package requestid
