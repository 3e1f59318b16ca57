// Package logger provides process-wide logging for gitlab-xsearch.
// Debug, Info and Section messages are printed only when verbose mode is
// enabled via the --verbose flag. Warnings and errors are always printed.
// Output goes to stderr so rendered results on stdout stay clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	level             = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	sugar             = newSugar(os.Stderr)
)

// newSugar builds a console logger that prints "[LEVEL] message".
func newSugar(w io.Writer) *zap.SugaredLogger {
	encCfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]")
		},
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core).Sugar()
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.WarnLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	sugar = newSugar(w)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Debugf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Infof(format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Warnf(format, args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Errorf(format, args...)
}

// Errorw prints an error message with structured key/value context.
func Errorw(msg string, keysAndValues ...any) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Errorw(msg, keysAndValues...)
}
