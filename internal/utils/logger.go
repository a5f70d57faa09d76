package utils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the process-wide zap logger. When LOG_FILE is set, entries are
// written to both stdout and that file.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		logger = newLogger(strings.TrimSpace(os.Getenv("LOG_FILE")))
	})
	return logger
}

// SetLogger replaces the process-wide logger; tests use zap.NewNop().
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	logger = l
}

func newLogger(logFile string) *zap.Logger {
	if logFile == "" {
		l, err := zap.NewProduction()
		if err != nil {
			return zap.NewNop()
		}
		return l
	}

	_ = os.MkdirAll(filepath.Dir(logFile), 0o755)
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		l, _ := zap.NewProduction()
		return l
	}

	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	lvl := zapcore.InfoLevel
	return zap.New(zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(f), lvl),
		zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl),
	))
}

// LogEvent writes a standardized module/action/request_id line.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	}
	Logger().Info(message, append(base, fields...)...)
}

// LogWarn is LogEvent at warn level.
func LogWarn(requestID, module, action, message string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	}
	Logger().Warn(message, append(base, fields...)...)
}
