package debuglogger

import (
	"github.com/Cloud-Foundations/Hanoi/lib/log"
)

type Logger struct {
	level int16
	log.Logger
}

// New will create a Logger which has an initial debug level of -1, so no debug
// messages are logged.
func New(logger log.Logger) *Logger {
	return &Logger{level: -1, Logger: logger}
}

// Upgrade returns logger as a log.DebugLogger if it already is one, else it
// wraps logger with a new Logger which logs no debug messages.
func Upgrade(logger log.Logger) log.DebugLogger {
	if debugLogger, ok := logger.(log.DebugLogger); ok {
		return debugLogger
	}
	return New(logger)
}

// Debug will log a message if the debug level is at least level.
func (l *Logger) Debug(level uint8, v ...interface{}) {
	if l.level >= int16(level) {
		l.Print(v...)
	}
}

// Debugf is similar to Debug, with formatting support.
func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	if l.level >= int16(level) {
		l.Printf(format, v...)
	}
}

// Debugln is similar to Debug.
func (l *Logger) Debugln(level uint8, v ...interface{}) {
	if l.level >= int16(level) {
		l.Println(v...)
	}
}

// GetLevel returns the current debug level.
func (l *Logger) GetLevel() int16 {
	return l.level
}

// SetLevel sets the debug level. Levels below -1 are treated as -1.
func (l *Logger) SetLevel(level int16) {
	if level < -1 {
		level = -1
	}
	l.level = level
}
