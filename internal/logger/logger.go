// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses *zerolog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging.
package logger

import (
	"io"
	"os"

	"github.com/athleticsdata/athletics-api/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/rs/zerolog"
)

// New builds the application's main structured logger from config.
//
// Output selection:
//   - "console" format (typical for local env): human-friendly writer.
//   - "json" format: plain JSON to stdout, aggregator-friendly.
//   - When New Relic log forwarding is enabled, stdout is wrapped with
//     the zerologWriter integration so log lines carry linking metadata
//     and get forwarded by the agent.
func New(cfg *config.Config, loggerService *LoggerService) *zerolog.Logger {
	level := parseLevel(cfg.Observability.GetLogLevel())

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	} else if loggerService != nil && loggerService.GetApplication() != nil &&
		cfg.Observability.NewRelic.AppLogForwardingEnabled {
		nrWriter := zerologWriter.New(os.Stdout, loggerService.GetApplication())
		out = &nrWriter
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger
}

// parseLevel maps the configured level string to a zerolog level.
// Unknown values fall back to info rather than silencing logs.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
