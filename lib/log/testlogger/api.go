package testlogger

import (
	"github.com/Cloud-Foundations/Hanoi/lib/log"
)

// TestLogger is the subset of testing.TB used for logging.
type TestLogger interface {
	Fatal(v ...interface{})
	Log(v ...interface{})
}

// Logger adapts a TestLogger to the log.DebugLogger interface, so that library
// code may log into the test output. Debug messages are logged at every level.
type Logger struct {
	logger TestLogger
}

var _ log.DebugLogger = (*Logger)(nil)

// New will create a Logger from logger, typically a *testing.T.
func New(logger TestLogger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Debug(level uint8, v ...interface{}) { l.log(sprint(v...)) }

func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	l.log(sprintf(format, v...))
}

func (l *Logger) Debugln(level uint8, v ...interface{}) { l.log(sprint(v...)) }

func (l *Logger) Fatal(v ...interface{}) { l.logger.Fatal(sprint(v...)) }

func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal(sprintf(format, v...))
}

func (l *Logger) Fatalln(v ...interface{}) { l.logger.Fatal(sprint(v...)) }

// Panic logs a fatal test failure and then panics.
func (l *Logger) Panic(v ...interface{}) { l.panic(sprint(v...)) }

func (l *Logger) Panicf(format string, v ...interface{}) {
	l.panic(sprintf(format, v...))
}

func (l *Logger) Panicln(v ...interface{}) { l.panic(sprint(v...)) }

func (l *Logger) Print(v ...interface{}) { l.log(sprint(v...)) }

func (l *Logger) Printf(format string, v ...interface{}) {
	l.log(sprintf(format, v...))
}

func (l *Logger) Println(v ...interface{}) { l.log(sprint(v...)) }
