package log

import (
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// RetryableLogger routes retryablehttp client logging into zerolog.
type RetryableLogger struct {
	logger zerolog.Logger
}

var _ retryablehttp.LeveledLogger = (*RetryableLogger)(nil)

// NewRetryableLogger wraps logger for use as retryablehttp.Client.Logger.
func NewRetryableLogger(logger zerolog.Logger) *RetryableLogger {
	return &RetryableLogger{logger: logger}
}

func (r *RetryableLogger) Error(msg string, keysAndValues ...interface{}) {
	r.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (r *RetryableLogger) Info(msg string, keysAndValues ...interface{}) {
	r.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (r *RetryableLogger) Debug(msg string, keysAndValues ...interface{}) {
	r.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (r *RetryableLogger) Warn(msg string, keysAndValues ...interface{}) {
	r.logger.Warn().Fields(keysAndValues).Msg(msg)
}
