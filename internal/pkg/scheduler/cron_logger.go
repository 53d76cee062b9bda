package scheduler

import (
	"fmt"

	"github.com/piresc/smsmock/internal/pkg/logger"
)

// cronLogger routes cron's own logging through the service logger. cron's
// info lines (schedule, wake, run) are only useful at debug level.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, cronFields(keysAndValues)...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := append(cronFields(keysAndValues), logger.Err(err))
	logger.Error("cron: "+msg, fields...)
}

func cronFields(keysAndValues []interface{}) []logger.Field {
	fields := make([]logger.Field, 0, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields = append(fields, logger.Any(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1]))
	}
	return fields
}
