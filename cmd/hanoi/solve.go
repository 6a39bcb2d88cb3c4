package main

import (
	"io"
	"os"
	"strconv"

	"github.com/Cloud-Foundations/Hanoi/lib/errors"
	"github.com/Cloud-Foundations/Hanoi/lib/hanoi"
	"github.com/Cloud-Foundations/Hanoi/lib/log"
)

func solveSubcommand(args []string, logger log.DebugLogger) error {
	return solve(os.Stdout, args, logger)
}

// solve moves every source disk, unless args names the number of disks to
// move. Asking for more disks than the source holds fails part way through.
func solve(writer io.Writer, args []string, logger log.DebugLogger) error {
	t := makeTowers(logger)
	defer t.clear()
	numToMove := t.source.Disks.Length()
	if len(args) > 0 {
		value, err := strconv.ParseUint(args[0], 10, 0)
		if err != nil {
			return errors.NewInvalidArgumentError("numDisks", err.Error())
		}
		numToMove = uint(value)
	}
	err := hanoi.WriteState(writer, t.source, t.auxiliary, t.destination)
	if err != nil {
		return err
	}
	solveFunc := hanoi.Solve[int]
	if *iterative {
		solveFunc = hanoi.SolveIterative[int]
	}
	numMoves, err := solveFunc(numToMove, t.source, t.auxiliary,
		t.destination, hanoi.Params{
			Logger:    logger,
			Placement: placement,
			Writer:    writer,
		})
	if err != nil {
		return err
	}
	logger.Debugf(0, "completed in %d moves\n", numMoves)
	return nil
}
