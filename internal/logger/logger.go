package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const EnvKey = "PROJECTION_ENV"

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv(EnvKey)) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    EnvKey,
			Type:   zapcore.StringType,
			String: os.Getenv(EnvKey),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

const ContextKey = "LOGGER"

func FromContext(ctx context.Context) *zap.SugaredLogger {
	logger, ok := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !ok {
		logger = zap.S()
		logger.Debug("no logger found in ctx - using global")
	}
	return logger
}

func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, logger)
}

func Info(template string, args ...interface{}) {
	zap.S().Infof(template, args...)
}

func Warn(template string, args ...interface{}) {
	zap.S().Warnf(template, args...)
}

func Error(err error) {
	zap.S().Error(err.Error())
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
