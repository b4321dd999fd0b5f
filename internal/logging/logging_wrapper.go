package logging

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// WithLogData attaches a LogData to the context.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData, or nil outside the wrapper.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}

// LoggingWrapper gives every request a fresh LogData, exposes it through the
// request context, and emits the start/complete entries with the collected
// fields and a total duration timing.
func LoggingWrapper(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		loggingName := req.Method + " " + req.URL.Path
		log.Infof("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		next.ServeHTTP(w, req.WithContext(WithLogData(req.Context(), logData)))

		endTimer()
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	})
}
