// Package logger provides a structured logging facility based on Zap.
//
// New builds a production (json) or development (console) logger from Config.
//
// # Context Awareness
//
// Every HTTP request carries a RayID (see core/middleware/rayid). WithRayID copies it
// from the Fiber context onto the log entry so all logs of one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Reconcile failed", zap.Error(err))
package logger
