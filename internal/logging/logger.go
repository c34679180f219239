// Package logging provides categorized zap loggers for boardpos.
// Every category is a named child of one base logger; categories switched off
// in the configuration get a no-op logger.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names the subsystem a log line comes from.
type Category string

const (
	CategoryBoot   Category = "boot"   // CLI start-up, config resolution
	CategoryConfig Category = "config" // config file load/save
	CategoryBuild  Category = "build"  // coordinate table construction
	CategoryEmit   Category = "emit"   // rendering and file output
	CategoryWatch  Category = "watch"  // config watcher
	CategoryUI     Category = "ui"     // preview and inspector
)

// Options mirrors config.LoggingConfig to keep this package import-free.
type Options struct {
	Level      string          // debug, info, warn, error
	Format     string          // json, console
	Categories map[string]bool // missing categories are enabled
	Verbose    bool            // forces debug level
}

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	enabled map[string]bool
	loggers = make(map[Category]*zap.SugaredLogger)
)

// New builds a zap logger writing to stderr.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(opts.Format) {
	case "", "console", "text":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = l
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Initialize builds the base logger from opts and installs it.
func Initialize(opts Options) (*zap.Logger, error) {
	logger, err := New(opts)
	if err != nil {
		return nil, err
	}
	SetLogger(logger, opts.Categories)
	return logger, nil
}

// SetLogger installs logger as the base for every category.
func SetLogger(logger *zap.Logger, categories map[string]bool) {
	if logger == nil {
		logger = zap.NewNop()
	}
	mu.Lock()
	defer mu.Unlock()
	base = logger
	enabled = categories
	loggers = make(map[Category]*zap.SugaredLogger)
}

// L returns the base logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// IsCategoryEnabled reports whether category logs anything.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabled(category)
}

func categoryEnabled(category Category) bool {
	if enabled == nil {
		return true
	}
	on, ok := enabled[string(category)]
	return !ok || on
}

// Get returns the logger for category.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	var l *zap.SugaredLogger
	if categoryEnabled(category) {
		l = base.Named(string(category)).Sugar()
	} else {
		l = zap.NewNop().Sugar()
	}
	loggers[category] = l
	return l
}

// Sync flushes the base logger. Errors from syncing a terminal are ignored.
func Sync() {
	_ = L().Sync()
}

func Boot(format string, args ...interface{})       { Get(CategoryBoot).Infof(format, args...) }
func BootDebug(format string, args ...interface{})  { Get(CategoryBoot).Debugf(format, args...) }
func Watch(format string, args ...interface{})      { Get(CategoryWatch).Infof(format, args...) }
func WatchDebug(format string, args ...interface{}) { Get(CategoryWatch).Debugf(format, args...) }
