package logger // package logger builds the application's structured zap logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/avesong/go-api-skeleton/internal/config"
)

// New constructs a zap logger from the application config.  The "prod"
// environment uses the production preset (JSON, sampling, ISO timestamps);
// everything else uses the development preset.  Level and encoding come
// from LOG_LEVEL and LOG_ENCODING.
func New(cfg config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Env == "prod" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	if cfg.LogEncoding != "" {
		zcfg.Encoding = cfg.LogEncoding
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.InitialFields = map[string]any{
		"service": cfg.ServiceName,
		"env":     cfg.Env,
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}
