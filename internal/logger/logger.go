// Package logger wraps zap behind the InterfaceLogger interface so
// every component depends on an interface rather than a concrete
// *zap.Logger, and tests can substitute a mock.
package logger

import (
	"go.uber.org/zap"
)

// InterfaceLogger is the logging contract consumed across the pipeline.
type InterfaceLogger interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Sync() error
}

// Config controls logger construction.
type Config struct {
	// Level is one of "debug", "info", "warn", "error". Empty defaults to "info".
	Level string
	// Development enables human-friendly console output instead of JSON.
	Development bool
}

// Logger is the production InterfaceLogger implementation.
type Logger struct {
	sugar *zap.SugaredLogger
}

var _ InterfaceLogger = (*Logger)(nil)

// NewLogger builds a zap-backed Logger from Config.
func NewLogger(cfg *Config) (*Logger, error) {
	var zcfg zap.Config
	if cfg != nil && cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	if cfg != nil && cfg.Level != "" {
		lvl, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = lvl
	}
	z, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

func (l *Logger) Info(args ...interface{})                  { l.sugar.Info(args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.sugar.Error(args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }
func (l *Logger) Fatal(args ...interface{})                 { l.sugar.Fatal(args...) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.sugar.Fatalf(format, args...) }
func (l *Logger) Sync() error                               { return l.sugar.Sync() }
