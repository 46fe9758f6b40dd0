package logger

import (
	"go.uber.org/zap"

	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// ZapLogger implements the IAppLogger contract over a zap sugared logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a production-configured logger.
func NewZapLogger() usecasecontract.IAppLogger {
	l := zap.Must(zap.NewProduction())
	return &ZapLogger{sugar: l.Sugar()}
}

// NewNopLogger creates a logger that discards everything; used in tests.
func NewNopLogger() usecasecontract.IAppLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

// Debugf logs a debug message.
func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Infof logs an info message.
func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs a warning message.
func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Warningf logs a warning message.
func (l *ZapLogger) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs an error message.
func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

var _ usecasecontract.IAppLogger = (*ZapLogger)(nil)
