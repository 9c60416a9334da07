// Package logging provides structured logging for the Ted IPTV player.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the application.
//
// # Configuration
//
// Logging is silent by default: a TUI owns the terminal, and unexpected log
// lines would corrupt the rendered screen. Set TED_IPTV_LOG_LEVEL to enable
// output, which goes to stderr so it can be redirected away from the TUI:
//
//	TED_IPTV_LOG_LEVEL=debug ted-iptv 2>debug.log
//
// Valid levels: "debug", "info", "warn", "error".
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("source added",
//	    zap.String("id", src.ID),
//	    zap.String("type", string(src.Type)),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
