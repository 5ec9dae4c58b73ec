package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

func setDebug(enable bool) error {
	c := zap.NewProductionConfig()
	if enable {
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := c.Build()
	if err != nil {
		return err
	}

	logger = l.Sugar()
	return nil
}

func syncLogger() {
	_ = logger.Sync()
}

// Debug will conditionally log a debug message
func Debug(args ...interface{}) {
	logger.Debug(args...)
}

// Debugf will conditionally log a formatted debug message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
