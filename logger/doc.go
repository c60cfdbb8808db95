// Package logger provides structured logging over zerolog.
//
// A process-wide logger is available through the package-level functions;
// libraries in this module tag their output with WithComponent so log lines
// can be filtered per subsystem.
//
//	logger.Init(logger.Config{Level: "debug", Format: "json"})
//	logger.WithComponent("di").Info("module registered", logger.Fields("name", n))
package logger
