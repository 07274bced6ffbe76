package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/roadrush/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// setupLogging opens the log file and builds the logger
// The terminal belongs to the renderer, so logs never go to stdout/stderr
// Disabled logging returns a no-op logger and a nil file
func setupLogging(cfg config.LoggingConfig) (*zap.Logger, *os.File, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	// Rotate once at startup when the previous run left a large file
	if info, err := os.Stat(cfg.File); err == nil && cfg.MaxSize > 0 && info.Size() > cfg.MaxSize {
		if err := os.Rename(cfg.File, cfg.File+".old"); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encCfg.ConsoleSeparator = "  "
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(f), level)
	return zap.New(core), f, nil
}
