package logger

import (
	"fmt"
	"time"

	"github.com/athleticsdata/athletics-api/internal/config"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// When no license key is configured, the service still exists but
// GetApplication returns nil; every caller treats a nil application as
// "observability disabled" and degrades to a no-op.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes the New Relic agent from config.
//
// An empty license key is not an error: it returns a LoggerService with
// a nil application so the rest of the app can run untraced.
func NewLoggerService(cfg *config.Config, logger *zerolog.Logger) (*LoggerService, error) {
	nr := cfg.Observability.NewRelic

	if nr.LicenseKey == "" {
		logger.Info().Msg("New Relic license key not set, running without APM")
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
	}
	if nr.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(zerolog.NewConsoleWriter()))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize New Relic application: %w", err)
	}

	logger.Info().
		Str("service", cfg.Observability.ServiceName).
		Msg("New Relic application initialized")

	return &LoggerService{app: app}, nil
}

// GetApplication returns the New Relic application, or nil when APM is
// not configured.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	return ls.app
}

// Shutdown flushes pending telemetry. Bounded so process exit is not
// held hostage by a slow agent.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls.app != nil {
		ls.app.Shutdown(timeout)
	}
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span ids so log lines can be correlated with traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	md := txn.GetTraceMetadata()

	builder := logger.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}

	return builder.Logger()
}
