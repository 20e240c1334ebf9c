// Package observability builds the service logger and Prometheus metrics.
package observability

import (
	"log/slog"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/quake-impact-service/internal/config"
)

// NewLogger returns the shared stdout logger for the configured level and
// format ("json" or "text") and installs it as the slog default.
func NewLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
}
