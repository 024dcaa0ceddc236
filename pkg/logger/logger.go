package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-boundedqueue/pkg/settings"
)

const defaultLevel = "info"

// New builds a JSON logger from cfg. Output goes to stdout and, if
// cfg.FileLogName is set, to a size-rotated file.
func New(cfg settings.Logger) (*zap.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}
	if cfg.FileLogName != "" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(fileWriter(cfg)), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		s = defaultLevel
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return level, errors.Wrapf(err, "parse log level %q", s)
	}
	return level, nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg
}

// fileWriter returns the rotating writer for cfg.FileLogName.
func fileWriter(cfg settings.Logger) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.FileLogName,
		MaxSize:    cfg.MaxSize, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge, // days
		Compress:   cfg.Compress,
	}
}
