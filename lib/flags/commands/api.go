package commands

import (
	"flag"
	"io"

	"github.com/Cloud-Foundations/Hanoi/lib/log"
)

type CommandFunc func([]string, log.DebugLogger) error

type Command struct {
	Command string
	Args    string
	MinArgs int
	MaxArgs int // A negative value means no limit.
	CmdFunc CommandFunc
}

var (
	cpuProfileFilename = flag.String("cpuProfileFilename", "",
		"Save a CPU profile of the subcommand to the specified file")
)

// PrintCommands writes one line per command with its argument summary.
func PrintCommands(writer io.Writer, commands []Command) {
	printCommands(writer, commands)
}

// RunCommands runs the command named by args[0] with the remaining arguments.
// Errors from the command are written to output. The returned value is the
// exit code: 0 for success, 1 if the command failed and 2 for usage errors.
func RunCommands(args []string, commands []Command, output io.Writer,
	printUsage func(), logger log.DebugLogger) int {
	return runCommands(args, commands, output, printUsage, logger)
}
