package main

import (
	"io"
	"os"

	"github.com/Cloud-Foundations/Hanoi/lib/hanoi"
	"github.com/Cloud-Foundations/Hanoi/lib/log"
)

func printInitialSubcommand(args []string, logger log.DebugLogger) error {
	return printInitial(os.Stdout, logger)
}

func printInitial(writer io.Writer, logger log.DebugLogger) error {
	t := makeTowers(logger)
	defer t.clear()
	return hanoi.WriteState(writer, t.source, t.auxiliary, t.destination)
}
