package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/headerkit/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor adding request_id to records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
