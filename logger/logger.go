package logger

// Logger provides a standardized logging interface for the GoldRush Go client.
// It defines methods for different log levels (Debug, Info, Warn, Error) to enable
// consistent logging throughout the client library. This interface allows users
// to plug in their preferred logging implementation (e.g., zerolog, logrus, zap,
// standard log) or use the provided Noop logger to disable logging entirely.
//
// The logger is used throughout the client for:
// - API request/response debugging
// - Retry attempt tracking
// - Rate limiter waits
// - Connection and transport issues
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client, err := goldrush_go.NewClient(apiKey, goldrush_go.WithLogger(myLogger))
//
//	// Using with zerolog
//	client, err := goldrush_go.NewClient(apiKey, goldrush_go.WithLogger(logger.NewZerolog(zl)))
//
//	// Disable logging entirely
//	client, err := goldrush_go.NewClient(apiKey, goldrush_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
