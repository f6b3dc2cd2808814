package common

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

var logLevelNames = map[LogLevel]string{
	LogDebug: "debug",
	LogInfo:  "info",
	LogWarn:  "warn",
	LogError: "error",
}

var zapLevels = map[LogLevel]zapcore.Level{
	LogDebug: zapcore.DebugLevel,
	LogInfo:  zapcore.InfoLevel,
	LogWarn:  zapcore.WarnLevel,
	LogError: zapcore.ErrorLevel,
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLogLevel converts a configured level name into a LogLevel
func ParseLogLevel(name string) (LogLevel, error) {
	for level, levelName := range logLevelNames {
		if strings.EqualFold(name, levelName) {
			return level, nil
		}
	}
	return LogInfo, fmt.Errorf("unknown log level %q", name)
}

// Log output formats
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LogOptions configures the process-wide logger
type LogOptions struct {
	Level  LogLevel
	Format string
}

// SafeLogger provides STDIO-safe logging that only writes to stderr.
// Loggers derived through Named share the level of their parent.
type SafeLogger struct {
	prefix string
	level  zap.AtomicLevel
	sugar  *zap.SugaredLogger
}

// NewLogger builds the root logger. It is called once at process start and the
// result is handed to every component that logs.
func NewLogger(opts LogOptions) (*SafeLogger, error) {
	level := zap.NewAtomicLevelAt(zapLevels[opts.Level])
	if IsDebugEnabled() {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")

	var encoder zapcore.Encoder
	switch opts.Format {
	case "", LogFormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case LogFormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return newSafeLogger("", zap.New(core), level), nil
}

// NewSafeLogger creates a console logger at INFO level with the given prefix.
// Used before configuration is available.
func NewSafeLogger(prefix string) *SafeLogger {
	logger, err := NewLogger(LogOptions{Level: LogInfo, Format: LogFormatConsole})
	if err != nil {
		// console format is always accepted
		panic(err)
	}
	return logger.Named(prefix)
}

// NewLoggerWithCore wraps an existing zap core, mainly so tests can observe output
func NewLoggerWithCore(prefix string, core zapcore.Core) *SafeLogger {
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	return newSafeLogger("", zap.New(core, zap.IncreaseLevel(level)), level).Named(prefix)
}

// NopLogger discards everything
func NopLogger() *SafeLogger {
	return newSafeLogger("", zap.NewNop(), zap.NewAtomicLevelAt(zapcore.InfoLevel))
}

func newSafeLogger(prefix string, base *zap.Logger, level zap.AtomicLevel) *SafeLogger {
	return &SafeLogger{
		prefix: prefix,
		level:  level,
		sugar:  base.Sugar(),
	}
}

// Named returns a child logger whose messages carry prefix
func (l *SafeLogger) Named(prefix string) *SafeLogger {
	if prefix == "" {
		return l
	}
	return &SafeLogger{
		prefix: prefix,
		level:  l.level,
		sugar:  l.sugar.Named(prefix),
	}
}

// With returns a child logger that adds the given key/value pairs to every entry
func (l *SafeLogger) With(keysAndValues ...interface{}) *SafeLogger {
	return &SafeLogger{
		prefix: l.prefix,
		level:  l.level,
		sugar:  l.sugar.With(keysAndValues...),
	}
}

// SetLevel sets the minimum log level
func (l *SafeLogger) SetLevel(level LogLevel) {
	l.level.SetLevel(zapLevels[level])
}

// Level reports the minimum log level currently in effect
func (l *SafeLogger) Level() LogLevel {
	for level, zl := range zapLevels {
		if zl == l.level.Level() {
			return level
		}
	}
	return LogInfo
}

// Prefix returns the name the logger was created with
func (l *SafeLogger) Prefix() string {
	return l.prefix
}

// Debug logs a debug message
func (l *SafeLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs an info message
func (l *SafeLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn logs a warning message
func (l *SafeLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs an error message
func (l *SafeLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered entries
func (l *SafeLogger) Sync() error {
	return l.sugar.Sync()
}
