package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Log lines are timestamped,
// leveled, and written to stdout and, when logFile is non-empty, to
// the given file as well. The returned instance is passed explicitly
// to every component; there is no ambient global logger.
//
// Misconfiguration degrades instead of aborting: an unknown level
// falls back to info, and an unusable log file falls back to
// stdout-only output. Only the missing API key may stop the process.
func New(level, logFile string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	if logFile != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
	}

	log, err := cfg.Build()
	if err != nil && logFile != "" {
		cfg.OutputPaths = []string{"stdout"}
		log, err = cfg.Build()
	}
	return log, err
}
