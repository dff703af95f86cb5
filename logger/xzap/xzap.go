// Package xzap wraps zap with file rotation and context propagation.
package xzap

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogConf struct {
	Mode       string `toml:"mode" mapstructure:"mode" json:"mode"` // console or file
	Path       string `toml:"path" mapstructure:"path" json:"path"`
	Level      string `toml:"level" mapstructure:"level" json:"level"`
	MaxSizeMB  int    `toml:"max_size_mb" mapstructure:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups" json:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" mapstructure:"max_age_days" json:"max_age_days"`
}

type Logger struct {
	logger *zap.Logger
}

var (
	mu     sync.RWMutex
	global = &Logger{logger: zap.NewNop()}
)

type ctxKey struct{}

// SetUp initializes the global logger from config and returns it.
func SetUp(c LogConf) (*Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer
	if c.Mode == "file" && c.Path != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   c.Path,
			MaxSize:    c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAgeDays,
		})
	} else {
		sink = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	l := &Logger{logger: zap.New(core, zap.AddCaller())}

	mu.Lock()
	global = l
	mu.Unlock()
	return l, nil
}

// NewContext attaches a logger to the context.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithContext returns the logger attached to ctx, or the global one.
func WithContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
			return l
		}
	}
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func (l *Logger) Info(msg string, fields ...zap.Field)  { l.logger.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.logger.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.logger.Error(msg, fields...) }
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.logger.Debug(msg, fields...) }

func (l *Logger) Sync() error { return l.logger.Sync() }
