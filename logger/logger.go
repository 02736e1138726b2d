package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

type Fields map[string]interface{}

var (
	std    zerolog.Logger
	stdSet bool
)

// exit is swapped in tests so Fatal can be observed without ending the process.
var exit = os.Exit

// Logger wraps zerolog.Logger so callers can pass a *logger.Logger around
// and call Info/Debug/Warn/Error with a Fields map.
type Logger struct {
	Z zerolog.Logger
}

// NewConsole creates a zerolog ConsoleWriter-backed logger. When color is true
// the console writer will emit ANSI colors. Time format matches "3:04PM".
func NewConsole(out io.Writer, level Level, color bool) *Logger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: "3:04PM", NoColor: !color}

	colorWrap := func(s string, code string) string {
		if !color {
			return s
		}
		return "\x1b[" + code + "m" + s + "\x1b[0m"
	}

	cw.FormatLevel = func(i interface{}) string {
		s := zerolog.NoLevel
		switch v := i.(type) {
		case string:
			if lvl, err := zerolog.ParseLevel(v); err == nil {
				s = lvl
			}
		case zerolog.Level:
			s = v
		}
		switch s {
		case zerolog.DebugLevel:
			return colorWrap("DBG", "36")
		case zerolog.InfoLevel:
			return colorWrap("INF", "32")
		case zerolog.WarnLevel:
			return colorWrap("WRN", "33")
		case zerolog.ErrorLevel:
			return colorWrap("ERR", "31")
		case zerolog.FatalLevel:
			return colorWrap("FTL", "35")
		default:
			return ""
		}
	}

	cw.FormatTimestamp = func(i interface{}) string {
		switch v := i.(type) {
		case time.Time:
			return colorWrap(v.Format("3:04PM"), "2")
		case string:
			return colorWrap(v, "2")
		default:
			return ""
		}
	}

	l := zerolog.New(cw).With().Timestamp().Logger().Level(level)
	return &Logger{Z: l}
}

// NewJSON returns a logger that writes one JSON object per line, suitable
// for log collectors.
func NewJSON(out io.Writer, level Level) *Logger {
	return &Logger{Z: zerolog.New(out).With().Timestamp().Logger().Level(level)}
}

// NewNop returns a no-op Logger instance.
func NewNop() *Logger {
	return &Logger{Z: zerolog.Nop()}
}

// New builds a logger from a type name as found in the config file:
// "color", "simple", "json" or "none".
func New(out io.Writer, typ string, level Level) *Logger {
	switch typ {
	case "none":
		return NewNop()
	case "json":
		return NewJSON(out, level)
	case "simple":
		return NewConsole(out, level, false)
	default:
		return NewConsole(out, level, true)
	}
}

// ParseLevel maps a config level name to a zerolog level. Empty means info.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelInfo, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// SetStd replaces the package logger used by wrapper functions.
func SetStd(l *Logger) {
	stdSet = true
	if l == nil {
		std = zerolog.Nop()
		return
	}
	std = l.Z
}

// Std returns the package logger as a *Logger.
func Std() *Logger {
	ensureStd()
	return &Logger{Z: std}
}

func ensureStd() {
	if !stdSet {
		std = NewConsole(os.Stdout, zerolog.InfoLevel, true).Z
		stdSet = true
	}
}

func emit(e *zerolog.Event, msg string, f Fields) {
	if f != nil {
		e = e.Fields(map[string]interface{}(f))
	}
	e.Msg(msg)
}

func Info(msg string, f Fields) {
	ensureStd()
	emit(std.Info(), msg, f)
}

func Debug(msg string, f Fields) {
	ensureStd()
	emit(std.Debug(), msg, f)
}

func Warn(msg string, f Fields) {
	ensureStd()
	emit(std.Warn(), msg, f)
}

func Error(msg string, f Fields) {
	ensureStd()
	emit(std.Error(), msg, f)
}

// Fatal logs at fatal level and terminates the process with status 1.
func Fatal(msg string, f Fields) {
	ensureStd()
	emit(std.WithLevel(zerolog.FatalLevel), msg, f)
	exit(1)
}

func (l *Logger) Info(msg string, f Fields) {
	emit(l.Z.Info(), msg, f)
}

func (l *Logger) Debug(msg string, f Fields) {
	emit(l.Z.Debug(), msg, f)
}

func (l *Logger) Warn(msg string, f Fields) {
	emit(l.Z.Warn(), msg, f)
}

func (l *Logger) Error(msg string, f Fields) {
	emit(l.Z.Error(), msg, f)
}
