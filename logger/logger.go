// Package logger holds the process wide zap logger used by the featurize
// command.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLog = zap.NewNop()

// InitLogger replaces the process wide logger with a development logger
// writing to standard error at the level given.
func InitLogger(level zapcore.Level) error {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("Jan _2 15:04:05.000")
	encoderConfig.StacktraceKey = ""
	config.EncoderConfig = encoderConfig

	l, err := config.Build()
	if err != nil {
		return err
	}
	zapLog = l
	return nil
}

// ParseLevel is zapcore.ParseLevel, with "" meaning info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(name)
}

// L returns the process wide logger. Before InitLogger is called, it
// discards everything.
func L() *zap.Logger {
	return zapLog
}

func Info(message string, fields ...zap.Field) {
	zapLog.WithOptions(zap.AddCallerSkip(1)).Info(message, fields...)
}

func Warn(message string, fields ...zap.Field) {
	zapLog.WithOptions(zap.AddCallerSkip(1)).Warn(message, fields...)
}

func Debug(message string, fields ...zap.Field) {
	zapLog.WithOptions(zap.AddCallerSkip(1)).Debug(message, fields...)
}

func Error(message string, fields ...zap.Field) {
	zapLog.WithOptions(zap.AddCallerSkip(1)).Error(message, fields...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return zapLog.Sync()
}
