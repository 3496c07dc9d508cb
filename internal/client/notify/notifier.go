// Package notify carries user-facing client events out of the sync layer.
package notify

import "log/slog"

// Notifier receives events the sync layer cannot handle itself.
type Notifier interface {
	// Error reports a failure that was absorbed, e.g. a load that fell back to the cache.
	Error(resource string, err error)
	// Info reports a notable but non-failing event.
	Info(resource, message string)
	// ReauthRequired is raised once a token refresh fails; the user must log in again.
	ReauthRequired(err error)
}

// Logger is a Notifier that writes events to a slog.Logger.
type Logger struct {
	logger *slog.Logger
}

// NewLogger returns a Notifier backed by logger.
func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (n *Logger) Error(resource string, err error) {
	n.logger.Warn("Sync problem", slog.String("resource", resource), slog.Any("error", err))
}

func (n *Logger) Info(resource, message string) {
	n.logger.Info(message, slog.String("resource", resource))
}

func (n *Logger) ReauthRequired(err error) {
	n.logger.Error("Session expired, please log in again", slog.Any("error", err))
}

// Nop discards every event.
type Nop struct{}

func (Nop) Error(string, error)  {}
func (Nop) Info(string, string)  {}
func (Nop) ReauthRequired(error) {}
