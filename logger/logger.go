package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Debug bool
}

// NewLogger builds the process logger. Logs go to stderr so they never mix
// with the explanation output on stdout.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	mergedCfg := zap.NewProductionConfig()
	mergedCfg.Encoding = "console"
	mergedCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	mergedCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	mergedCfg.OutputPaths = []string{"stderr"}
	mergedCfg.ErrorOutputPaths = []string{"stderr"}
	mergedCfg.DisableStacktrace = true

	if cfg.Debug {
		mergedCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		mergedCfg.Development = true
	} else {
		mergedCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	return mergedCfg.Build()
}
