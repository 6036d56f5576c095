// Package logger provides a structured logging facility based on Zap.
//
// Request handlers correlate their entries through the ray id stored by the
// rayid middleware (see WithRayID). Long-lived background tasks such as the
// poll loop and the sweeper tag their entries with a component name instead.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
