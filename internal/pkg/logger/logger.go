package logger

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	global *zap.Logger
)

// Init builds the global logger. Production mode emits JSON at info level,
// development mode emits colored console output at debug level.
func Init(isProduction bool) {
	var cfg zap.Config

	if isProduction {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	mu.Lock()
	global = l
	mu.Unlock()
}

// L returns the global logger, building a development logger if Init was
// never called (useful in tests).
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global, _ = zap.NewDevelopment()
	}
	return global
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if l := L(); l != nil {
		_ = l.Sync()
	}
}
