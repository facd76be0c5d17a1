// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a JSON or text handler, applies static attributes and wraps the
// result in a ContextHandler that adds attributes pulled from the record's
// context.Context by registered ContextExtractor callbacks.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Parse(cfg.Env), "extkit"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// # Options
//
//   - WithEnvironment: per-environment level and format plus service/env attributes
//   - WithLevel, WithFormat, WithTextFormatter, WithJSONFormatter
//   - WithOutput, WithHandlerOptions, WithAttr
//   - WithContextExtractors, WithContextValue
//
// ParseLevel and ParseFormat turn configuration strings into option values.
//
// # Errors
//
// Error, Errors, Fingerprint and Exception return an empty slog.Attr for nil
// errors, so they can be passed unconditionally:
//
//	log.Error("transform failed", logger.Exception(err))
//
// Exception groups the message, type, fingerprint, data bag and cause chain
// computed by pkg/exception.
package logger
