// Package logger is the process-wide structured logger. It writes to stderr
// until Setup points it at a rolling log file.
package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Settings stores config for the logger
type Settings struct {
	Path       string `cfg:"log-path"`
	Name       string `cfg:"log-name"`
	Level      string `cfg:"log-level"`
	MaxSizeMB  int    `cfg:"log-max-size"`
	MaxBackups int    `cfg:"log-max-backups"`
	MaxAgeDays int    `cfg:"log-max-age"`
}

var (
	mu     sync.RWMutex
	sugar  *zap.SugaredLogger
	closer func() error
)

func init() {
	sugar = newLogger(zapcore.Lock(os.Stderr), zapcore.InfoLevel, false)
}

func newLogger(ws zapcore.WriteSyncer, level zapcore.Level, json bool) *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if json {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// Setup replaces the default stderr logger. An empty Path keeps console
// output and only applies the level.
func Setup(settings *Settings) error {
	level := zapcore.InfoLevel
	if settings.Level != "" {
		if err := level.UnmarshalText([]byte(settings.Level)); err != nil {
			return err
		}
	}
	if settings.Path == "" {
		replace(newLogger(zapcore.Lock(os.Stderr), level, false), nil)
		return nil
	}
	if err := os.MkdirAll(settings.Path, 0755); err != nil {
		return err
	}
	name := settings.Name
	if name == "" {
		name = "redis-client"
	}
	rolling := &lumberjack.Logger{
		Filename:   filepath.Join(settings.Path, name+".log"),
		MaxSize:    settings.MaxSizeMB,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAgeDays,
		LocalTime:  true,
	}
	replace(newLogger(zapcore.AddSync(rolling), level, true), rolling.Close)
	return nil
}

func replace(l *zap.SugaredLogger, c func() error) {
	mu.Lock()
	old, oldCloser := sugar, closer
	sugar, closer = l, c
	mu.Unlock()
	_ = old.Sync()
	if oldCloser != nil {
		_ = oldCloser()
	}
}

// Sync flushes buffered entries
func Sync() error {
	return get().Sync()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debug(v ...interface{}) {
	get().Debug(v...)
}

func Debugf(format string, v ...interface{}) {
	get().Debugf(format, v...)
}

func Info(v ...interface{}) {
	get().Info(v...)
}

func Infof(format string, v ...interface{}) {
	get().Infof(format, v...)
}

func Warn(v ...interface{}) {
	get().Warn(v...)
}

func Warnf(format string, v ...interface{}) {
	get().Warnf(format, v...)
}

func Error(v ...interface{}) {
	get().Error(v...)
}

func Errorf(format string, v ...interface{}) {
	get().Errorf(format, v...)
}
