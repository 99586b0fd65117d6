// Package logging provides categorized, config-driven logging for the
// snowboard catalog pipeline. Each pipeline stage gets its own log file
// logs/<category>.log plus a shared zap console sink; logging is a
// silent no-op until Initialize is called.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category identifies a pipeline stage for log routing.
type Category string

const (
	CategoryBoot       Category = "boot"
	CategoryConfig     Category = "config"
	CategoryScrape     Category = "scrape"
	CategoryBrand      Category = "brand"
	CategoryIdentify   Category = "identify"
	CategoryBoardID    Category = "boardid"
	CategoryCoalesce   Category = "coalesce"
	CategoryResolve    Category = "resolve"
	CategoryReviewSite Category = "reviewsite"
	CategoryCache      Category = "cache"
	CategoryBrowser    Category = "browser"
	CategoryStore      Category = "store"
	CategoryPipeline   Category = "pipeline"
	CategoryServer     Category = "server"
)

var (
	mu           sync.RWMutex
	logsDir      string
	initialized  bool
	debugMode    bool
	categoryOn   map[Category]bool
	loggers      = make(map[Category]*Logger)
	consoleCore  zapcore.Core
)

// Initialize sets up the logs directory. Until this is called, all
// loggers are no-ops. categories == nil enables every category.
func Initialize(rootDir string, debug bool, categories map[Category]bool) error {
	mu.Lock()
	defer mu.Unlock()

	debugMode = debug
	categoryOn = categories
	logsDir = filepath.Join(rootDir, "logs")
	initialized = true

	if !debugMode {
		return nil
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("create logs directory: %w", err)
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	consoleCore = zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stderr), zapcore.InfoLevel)

	loggers = make(map[Category]*Logger)
	return nil
}

// IsCategoryEnabled reports whether a category currently logs.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	if !initialized || !debugMode {
		return false
	}
	if categoryOn == nil {
		return true
	}
	enabled, ok := categoryOn[category]
	if !ok {
		return true
	}
	return enabled
}

// Logger wraps a zap.SugaredLogger scoped to one category. A Logger
// obtained while disabled is a safe no-op.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
	file     *os.File
}

// Get returns (or lazily creates) the logger for category.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return &Logger{category: category}
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	path := filepath.Join(logsDir, string(category)+".log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] could not open %s: %v\n", path, err)
		return &Logger{category: category}
	}

	fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	fileCore := zapcore.NewCore(fileEncoder, zapcore.AddSync(file), zapcore.DebugLevel)

	core := fileCore
	if consoleCore != nil {
		core = zapcore.NewTee(fileCore, consoleCore)
	}
	zl := zap.New(core).With(zap.String("category", string(category)))

	l := &Logger{category: category, sugar: zl.Sugar(), file: file}
	loggers[category] = l
	return l
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Errorf(format, args...)
}

// CloseAll flushes and closes every open category log file.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		if l.sugar != nil {
			_ = l.sugar.Sync()
		}
		if l.file != nil {
			_ = l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Timer measures and logs the duration of an operation.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation in category.
func StartTimer(category Category, op string) *Timer {
	return &Timer{category: category, op: op, start: time.Now()}
}

// Stop ends the timer and logs the elapsed duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// StopWithThreshold logs at warn level if elapsed exceeds threshold.
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("%s took %v (threshold %v)", t.op, elapsed, threshold)
	} else {
		Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}

// convenience wrappers, an Info/Debug pair for each of the main pipeline
// categories (config, brand, boardid, and server have none and are
// logged through Get), mirroring the teacher's package-level shorthand
// functions.

func Boot(format string, args ...interface{})       { Get(CategoryBoot).Info(format, args...) }
func BootDebug(format string, args ...interface{})   { Get(CategoryBoot).Debug(format, args...) }
func Scrape(format string, args ...interface{})      { Get(CategoryScrape).Info(format, args...) }
func ScrapeDebug(format string, args ...interface{}) { Get(CategoryScrape).Debug(format, args...) }
func Identify(format string, args ...interface{})    { Get(CategoryIdentify).Info(format, args...) }
func IdentifyDebug(format string, args ...interface{}) {
	Get(CategoryIdentify).Debug(format, args...)
}
func Coalesce(format string, args ...interface{})      { Get(CategoryCoalesce).Info(format, args...) }
func CoalesceDebug(format string, args ...interface{}) { Get(CategoryCoalesce).Debug(format, args...) }
func Resolve(format string, args ...interface{})       { Get(CategoryResolve).Info(format, args...) }
func ResolveDebug(format string, args ...interface{})  { Get(CategoryResolve).Debug(format, args...) }
func ReviewSite(format string, args ...interface{})     { Get(CategoryReviewSite).Info(format, args...) }
func ReviewSiteDebug(format string, args ...interface{}) {
	Get(CategoryReviewSite).Debug(format, args...)
}
func Cache(format string, args ...interface{})      { Get(CategoryCache).Info(format, args...) }
func CacheDebug(format string, args ...interface{}) { Get(CategoryCache).Debug(format, args...) }
func Browser(format string, args ...interface{})    { Get(CategoryBrowser).Info(format, args...) }
func BrowserDebug(format string, args ...interface{}) {
	Get(CategoryBrowser).Debug(format, args...)
}
func Store(format string, args ...interface{})      { Get(CategoryStore).Info(format, args...) }
func StoreDebug(format string, args ...interface{}) { Get(CategoryStore).Debug(format, args...) }
func Pipeline(format string, args ...interface{})   { Get(CategoryPipeline).Info(format, args...) }
func PipelineDebug(format string, args ...interface{}) {
	Get(CategoryPipeline).Debug(format, args...)
}
