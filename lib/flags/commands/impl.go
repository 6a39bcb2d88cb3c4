package commands

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sort"

	"github.com/Cloud-Foundations/Hanoi/lib/log"
)

func printCommands(writer io.Writer, commands []Command) {
	isSorted := sort.SliceIsSorted(commands, func(i, j int) bool {
		return commands[i].Command < commands[j].Command
	})
	if !isSorted {
		fmt.Fprintln(writer, "NOTE: COMMANDS ARE NOT SORTED!")
	}
	for _, command := range commands {
		if command.CmdFunc == nil {
			continue
		}
		if command.Args == "" {
			fmt.Fprintln(writer, " ", command.Command)
		} else {
			fmt.Fprintln(writer, " ", command.Command, command.Args)
		}
	}
}

func findCommand(commands []Command, name string) *Command {
	for index := range commands {
		if commands[index].CmdFunc != nil && commands[index].Command == name {
			return &commands[index]
		}
	}
	return nil
}

func runCommands(args []string, commands []Command, output io.Writer,
	printUsage func(), logger log.DebugLogger) int {
	if len(args) < 1 {
		printUsage()
		return 2
	}
	command := findCommand(commands, args[0])
	if command == nil {
		fmt.Fprintf(output, "unknown command: %s\n", args[0])
		printUsage()
		return 2
	}
	numCommandArgs := len(args) - 1
	if numCommandArgs < command.MinArgs ||
		(command.MaxArgs >= 0 && numCommandArgs > command.MaxArgs) {
		printUsage()
		return 2
	}
	if *cpuProfileFilename != "" {
		file, err := os.Create(*cpuProfileFilename)
		if err != nil {
			fmt.Fprintln(output, err)
			return 2
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			fmt.Fprintf(output, "could not start CPU profile: %s\n", err)
			return 2
		}
		defer pprof.StopCPUProfile()
	}
	logger.Debugf(1, "running command: %s\n", command.Command)
	if err := command.CmdFunc(args[1:], logger); err != nil {
		fmt.Fprintf(output, "Error! %s\n", err)
		return 1
	}
	return 0
}
