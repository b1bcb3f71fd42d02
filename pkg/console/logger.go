// Package console decorates developer-facing log output with caller,
// severity and timestamp prefixes, styled per theme. It forwards the
// caller's values untouched to a pluggable sink; decoration is best
// effort and never load-bearing.
package console

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/modoterra/lucerna/pkg/callsite"
	"github.com/modoterra/lucerna/pkg/core"
	"github.com/modoterra/lucerna/pkg/theme"
)

const timeLayout = "2006-01-02 15:04:05"

// Logger is the decorating front end. Each Logger owns its settings;
// Configure and the emit methods are safe for concurrent use.
type Logger struct {
	mu     sync.RWMutex
	cfg    Config
	source callsite.Source
	res    callsite.Resolver
	sink   Sink
	now    func() time.Time
}

// Option adjusts a Logger at construction time.
type Option func(*Logger)

// WithConfig starts the logger with c instead of the defaults.
func WithConfig(c Config) Option {
	return func(l *Logger) { l.cfg = c }
}

// WithSink routes output to s instead of the standard error sink.
func WithSink(s Sink) Option {
	return func(l *Logger) { l.sink = s }
}

// WithSource captures caller frames from s instead of the runtime.
func WithSource(s callsite.Source) Option {
	return func(l *Logger) { l.source = s }
}

// WithResolver filters frames with r instead of the default markers.
func WithResolver(r callsite.Resolver) Option {
	return func(l *Logger) { l.res = r }
}

// New builds a Logger with default settings writing to stderr.
func New(opts ...Option) *Logger {
	l := &Logger{
		cfg:    DefaultConfig(),
		source: callsite.RuntimeSource{},
		res:    callsite.DefaultResolver(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.sink == nil {
		l.sink = NewConsoleSink(os.Stderr)
	}
	return l
}

// Configure shallow-merges o into the logger's settings. Every call is
// total: unrecognized values are kept as-is and resolved to documented
// fallbacks at emit time.
func (l *Logger) Configure(o Overlay) {
	l.mu.Lock()
	o.Apply(&l.cfg)
	l.mu.Unlock()
}

// Config returns a copy of the current settings.
func (l *Logger) Config() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

// Log writes args decorated per the current settings. A leading
// severity token ("[INFO]", "[WARNING]", "[ERROR]", "[DEBUG]") selects
// the level and is not forwarded; any other first value is ordinary
// content logged at the generic level.
//
// With errorHandling "throw", emit failures re-panic to the caller;
// the other policies keep failures inside the logger.
func (l *Logger) Log(args ...any) {
	l.dispatch(core.LevelLog, true, args)
}

// Info logs args at the INFO level.
func (l *Logger) Info(args ...any) { l.dispatch(core.LevelInfo, false, args) }

// Warning logs args at the WARNING level.
func (l *Logger) Warning(args ...any) { l.dispatch(core.LevelWarning, false, args) }

// Error logs args at the ERROR level.
func (l *Logger) Error(args ...any) { l.dispatch(core.LevelError, false, args) }

// Debug logs args at the DEBUG level.
func (l *Logger) Debug(args ...any) { l.dispatch(core.LevelDebug, false, args) }

// Logf formats per fmt.Sprintf and logs the result at the generic
// level. The formatted string is always content: it is never inspected
// for a severity token.
func (l *Logger) Logf(format string, args ...any) {
	l.dispatch(core.LevelLog, false, []any{fmt.Sprintf(format, args...)})
}

// Infof formats per fmt.Sprintf and logs at the INFO level.
func (l *Logger) Infof(format string, args ...any) {
	l.dispatch(core.LevelInfo, false, []any{fmt.Sprintf(format, args...)})
}

// Warningf formats per fmt.Sprintf and logs at the WARNING level.
func (l *Logger) Warningf(format string, args ...any) {
	l.dispatch(core.LevelWarning, false, []any{fmt.Sprintf(format, args...)})
}

// Errorf formats per fmt.Sprintf and logs at the ERROR level.
func (l *Logger) Errorf(format string, args ...any) {
	l.dispatch(core.LevelError, false, []any{fmt.Sprintf(format, args...)})
}

// Debugf formats per fmt.Sprintf and logs at the DEBUG level.
func (l *Logger) Debugf(format string, args ...any) {
	l.dispatch(core.LevelDebug, false, []any{fmt.Sprintf(format, args...)})
}

func (l *Logger) dispatch(level core.Level, detect bool, args []any) {
	cfg := l.Config()
	if cfg.Disable {
		return
	}

	failure := l.try(cfg, level, detect, args)
	if failure == nil {
		return
	}
	switch cfg.ErrorHandling {
	case core.PolicyFallback:
		// Plain forwarding of the caller's values exactly as given.
		_ = l.sink.Write(core.Event{Level: core.LevelLog, Args: args})
	case core.PolicyThrow:
		panic(failure)
	}
}

// try runs the decorate-and-forward path with a recover boundary so a
// single policy switch handles both panics and sink errors. The
// returned value is the original panic value or the sink error.
func (l *Logger) try(cfg Config, level core.Level, detect bool, args []any) (failure any) {
	defer func() {
		if r := recover(); r != nil {
			failure = r
		}
	}()

	forward := args
	if detect && len(args) > 0 {
		if lv, ok := core.DetectToken(args[0]); ok {
			level = lv
			forward = args[1:]
		}
	}

	style := theme.StyleFor(cfg.Theme, level)
	caller := l.res.Resolve(l.source.Frames())

	var parts []string
	if cfg.UseEmojis {
		parts = append(parts, theme.EmojiFor(level))
	}
	if cfg.ShowDate {
		parts = append(parts, l.now().Format(timeLayout))
	}
	if cfg.ShowFilename && caller.File != callsite.UnknownFile {
		parts = append(parts, "["+caller.File+"]")
	}
	if cfg.ShowLineNumber && caller.Line != callsite.UnknownLine {
		parts = append(parts, "("+caller.Line+")")
	}
	if caller.Function != callsite.GlobalScope {
		parts = append(parts, "{"+caller.Function+"}")
	}
	// The level tag is not gated: showLogLevel is accepted in the
	// config surface but the tag is always appended.
	parts = append(parts, level.Tag())

	prefix := style.Render(strings.Join(parts, " ")) + " "
	if err := l.sink.Write(core.Event{Level: level, Prefix: prefix, Args: forward}); err != nil {
		return err
	}
	return nil
}

var std = New()

// Default returns the shared process-wide logger.
func Default() *Logger { return std }

// Configure adjusts the shared logger's settings.
func Configure(o Overlay) { std.Configure(o) }

// Log writes args through the shared logger.
func Log(args ...any) { std.Log(args...) }

// Info logs args at the INFO level through the shared logger.
func Info(args ...any) { std.Info(args...) }

// Warning logs args at the WARNING level through the shared logger.
func Warning(args ...any) { std.Warning(args...) }

// Error logs args at the ERROR level through the shared logger.
func Error(args ...any) { std.Error(args...) }

// Debug logs args at the DEBUG level through the shared logger.
func Debug(args ...any) { std.Debug(args...) }

// Logf formats and logs at the generic level through the shared logger.
func Logf(format string, args ...any) { std.Logf(format, args...) }

// Infof formats and logs at the INFO level through the shared logger.
func Infof(format string, args ...any) { std.Infof(format, args...) }

// Warningf formats and logs at the WARNING level through the shared
// logger.
func Warningf(format string, args ...any) { std.Warningf(format, args...) }

// Errorf formats and logs at the ERROR level through the shared logger.
func Errorf(format string, args ...any) { std.Errorf(format, args...) }

// Debugf formats and logs at the DEBUG level through the shared logger.
func Debugf(format string, args ...any) { std.Debugf(format, args...) }
