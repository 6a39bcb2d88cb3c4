package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Cloud-Foundations/Hanoi/lib/errors"
	"github.com/Cloud-Foundations/Hanoi/lib/hanoi"
	"github.com/Cloud-Foundations/Hanoi/lib/log"
)

func countMovesSubcommand(args []string, logger log.DebugLogger) error {
	return countMoves(os.Stdout, args[0])
}

func countMoves(writer io.Writer, arg string) error {
	numDisks, err := strconv.ParseUint(arg, 10, 0)
	if err != nil {
		return errors.NewInvalidArgumentError("numDisks", err.Error())
	}
	count, err := hanoi.MoveCount(uint(numDisks))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer, count)
	return err
}
