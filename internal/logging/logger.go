package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvDebug enables the debug file log.
const EnvDebug = "STARBANK_DEBUG"

// Enabled reports whether the debug log was requested via the environment.
func Enabled() bool {
	return os.Getenv(EnvDebug) == "1"
}

// DefaultLogPath returns ~/.starbank.log, falling back to the working
// directory when the home dir cannot be resolved.
func DefaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".starbank.log"
	}
	return filepath.Join(homeDir, ".starbank.log")
}

// New builds a rotating JSON file logger, or a nop logger when disabled.
// The CLI stays silent on its own; this log exists to trace mutations when
// something looks off.
func New(path string, enabled bool) *zap.Logger {
	if !enabled {
		return zap.NewNop()
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
		}),
		zap.DebugLevel,
	)
	return zap.New(core)
}
