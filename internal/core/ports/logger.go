// Package ports defines the core interfaces for the application.
package ports

// Logger is the structured logging abstraction used across adapters.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, rendering its full cause chain.
	Error(err error)
}
