package testlogger

import (
	"fmt"
	"strings"
)

func sprint(v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprint(v...), "\n")
}

func sprintf(format string, v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintf(format, v...), "\n")
}

func (l *Logger) log(message string) {
	l.logger.Log(message)
}

func (l *Logger) panic(message string) {
	l.logger.Fatal(message)
	panic(message)
}
