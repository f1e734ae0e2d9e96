// Package logx carries the module-wide logger.
//
// Translation never fails hard: unconvertible modes and unrecognized request
// options are reported here as warnings while the framework default stays in
// charge. Embedders that want those warnings somewhere specific swap the
// logger with Set, or point it at a size-rotated file built by NewRotating.
package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var sugar = zap.Must(zap.NewDevelopment()).Sugar()

// S returns the module-wide sugared logger.
func S() *zap.SugaredLogger {
	return sugar
}

// Set replaces the module-wide logger.
func Set(logger *zap.Logger) {
	sugar = logger.Sugar()
}

// NewRotating builds a logger appending to a size-rotated file at path.
func NewRotating(path string) *zap.Logger {
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	})
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
