package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/config"
)

const TraceIDKey = "trace_id"

// Logger is the logging interface used across the service. All methods take a
// context so a request trace id can be attached to every line.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...zap.Field)
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Warn(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
	Sync() error
}

type zapLogger struct {
	l *zap.Logger
}

// New builds a zap logger from the logging section of the config.
func New(cfg config.LoggingConfig) (Logger, error) {
	ws, err := buildWriteSyncer(cfg)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(buildEncoder(cfg.Format), ws, parseLevel(cfg.Level))
	return &zapLogger{l: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))}, nil
}

func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}

func buildWriteSyncer(cfg config.LoggingConfig) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(cfg.Output) {
	case "stdout", "":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	}
	// anything else is treated as a file path
	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if cfg.Rotate != nil && cfg.Rotate.Enabled {
		lumber := &lumberjack.Logger{
			Filename:  cfg.Output,
			MaxSize:   cfg.Rotate.MaxSize,
			MaxAge:    cfg.Rotate.MaxAge,
			Compress:  true,
			LocalTime: true,
		}
		return zapcore.AddSync(lumber), nil
	}
	file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return zapcore.AddSync(file), nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (z *zapLogger) log(ctx context.Context, level zapcore.Level, msg string, fields ...zap.Field) {
	allFields := append([]zap.Field{zap.String(TraceIDKey, traceIDFrom(ctx))}, fields...)
	if ce := z.l.Check(level, msg); ce != nil {
		ce.Write(allFields...)
	}
}

func (z *zapLogger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	z.log(ctx, zapcore.DebugLevel, msg, fields...)
}

func (z *zapLogger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	z.log(ctx, zapcore.InfoLevel, msg, fields...)
}

func (z *zapLogger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	z.log(ctx, zapcore.WarnLevel, msg, fields...)
}

func (z *zapLogger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	z.log(ctx, zapcore.ErrorLevel, msg, fields...)
}

func (z *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{l: z.l.With(fields...)}
}

func (z *zapLogger) Sync() error { return z.l.Sync() }

// traceIDFrom extracts the trace id from the context, generating one when the
// context carries none so every log line stays correlatable.
func traceIDFrom(ctx context.Context) string {
	if ctx != nil {
		if v := ctx.Value(TraceIDKey); v != nil {
			if id, ok := v.(string); ok && id != "" {
				return id
			}
		}
	}
	return uuid.New().String()
}
