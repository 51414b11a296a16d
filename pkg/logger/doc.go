// Package logger builds slog loggers for the header and cookie packages.
//
// New returns a *slog.Logger configured through Option functions (format,
// level, static attributes, environment presets). The handler is wrapped with
// LogHandlerDecorator so values stored in a context.Context, such as a
// request id, are attached to every record logged with that context.
//
// Attribute helpers (Cookie, HeaderCount, Error, ...) keep key names
// consistent across packages. Error returns an empty attribute for nil
// errors, so it can be passed unconditionally.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "web"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "cookie emitted", logger.Cookie("SessionId"))
package logger
