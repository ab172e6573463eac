package logs

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"sellerhub/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogMaxSizeMB  = 100
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 28
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New creates a slog.Logger whose records are encoded and written by a zap core.
func New(params Params) (*slog.Logger, error) {
	// Parse log level from config
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	core, closeFn := newCore(params.Config.Env.Log, level)

	if params.Lifecycle != nil {
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				_ = core.Sync()

				return closeFn()
			},
		})
	}

	handler := zapslog.NewHandler(core, zapslog.WithCaller(params.Config.Env.Debug))
	logger := slog.New(handler).With(slog.String("service", params.Config.Env.ServiceName))

	return logger, nil
}

// newCore tees stdout with an optional rotating file.
// Pretty output uses the console encoder, otherwise JSON.
func newCore(cfg config.Log, level slog.Level) (zapcore.Core, func() error) {
	enabler := zap.NewAtomicLevelAt(toZapLevel(level))

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var stdoutEncoder zapcore.Encoder
	if cfg.Pretty {
		consoleCfg := encoderCfg
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		stdoutEncoder = zapcore.NewConsoleEncoder(consoleCfg)
	} else {
		stdoutEncoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEncoder, zapcore.Lock(os.Stdout), enabler),
	}

	closeFn := func() error { return nil }

	if path := strings.TrimSpace(cfg.File.Path); path != "" {
		rotator := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    orDefault(cfg.File.MaxSizeMB, defaultLogMaxSizeMB),
			MaxBackups: orDefault(cfg.File.MaxBackups, defaultLogMaxBackups),
			MaxAge:     orDefault(cfg.File.MaxAgeDays, defaultLogMaxAgeDays),
			Compress:   cfg.File.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(rotator), enabler))
		closeFn = rotator.Close
	}

	return zapcore.NewTee(cores...), closeFn
}

func toZapLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}

	return v
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
