package cmdlogger

import (
	"flag"
	stdlog "log"
	"os"

	"github.com/Cloud-Foundations/Hanoi/lib/log/debuglogger"
)

var (
	logDatestamps = flag.Bool("logDatestamps", false,
		"If true, prefix log messages with datestamps")
	logDebugLevel = flag.Int("logDebugLevel", -1, "Debug log level")
)

// New returns a logger writing to standard error, configured by the
// -logDatestamps and -logDebugLevel command-line flags. It should be called
// after flag.Parse.
func New() *debuglogger.Logger {
	flags := 0
	if *logDatestamps {
		flags = stdlog.LstdFlags
	}
	logger := debuglogger.New(stdlog.New(os.Stderr, "", flags))
	logger.SetLevel(int16(*logDebugLevel))
	return logger
}
