// Package log provides named, leveled loggers shared by the kernel tools.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level is a logger verbosity level.
type Level int

// The levels that can be passed to SetLevel.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is implemented by all loggers returned by New.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger tagged with the given module name.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all log output to w. The current level is kept.
func SetSink(w io.Writer) {
	level := logging.NOTICE
	if leveledBackend != nil {
		level = leveledBackend.GetLevel("")
	}

	backend := logging.NewLogBackend(w, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveledBackend.SetLevel(level, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the verbosity of every logger.
func SetLevel(level Level) {
	leveledBackend.SetLevel(toLogging(level), "")
}

// GetLevel returns the current verbosity.
func GetLevel() Level {
	switch leveledBackend.GetLevel("") {
	case logging.DEBUG:
		return Debug
	case logging.INFO:
		return Info
	case logging.WARNING:
		return Warning
	case logging.ERROR, logging.CRITICAL:
		return Error
	default:
		return Notice
	}
}

// ParseLevel maps a level name such as "debug" or "warning" to a Level.
// Unknown names map to Notice.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return Debug
	case "info":
		return Info
	case "warning", "warn":
		return Warning
	case "error":
		return Error
	default:
		return Notice
	}
}

func toLogging(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}
