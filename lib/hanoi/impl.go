package hanoi

import (
	"fmt"
	"io"
	stdlog "log"
	"time"

	"github.com/Cloud-Foundations/Hanoi/lib/errors"
	"github.com/Cloud-Foundations/Hanoi/lib/format"
	"github.com/Cloud-Foundations/Hanoi/lib/log"
	"github.com/Cloud-Foundations/Hanoi/lib/log/debuglogger"
	"github.com/zyedidia/generic/stack"
)

const separator = "-------------"

type solver[T any] struct {
	logger    log.DebugLogger
	numMoves  uint64
	placement Placement
	writer    io.Writer
}

// frame is one pending unit of work for the iterative solver: either a
// sub-problem of numDisks disks or a single move.
type frame[T any] struct {
	numDisks    uint
	move        bool
	source      *Column[T]
	auxiliary   *Column[T]
	destination *Column[T]
}

func moveCount(numDisks uint) (uint64, error) {
	if numDisks > MaxDisks {
		return 0, errors.NewInvalidArgumentError("numDisks",
			fmt.Sprintf("%d exceeds maximum of %d", numDisks, MaxDisks))
	}
	if numDisks == 0 {
		return 0, nil
	}
	return ^uint64(0) >> (MaxDisks - numDisks), nil
}

func solve[T any](numDisks uint, source, auxiliary, destination *Column[T],
	params Params, iterative bool) (uint64, error) {
	if _, err := moveCount(numDisks); err != nil {
		return 0, err
	}
	s := &solver[T]{
		logger:    params.Logger,
		placement: params.Placement,
		writer:    params.Writer,
	}
	if s.logger == nil {
		s.logger = debuglogger.New(stdlog.New(io.Discard, "", 0))
	}
	if s.writer == nil {
		s.writer = io.Discard
	}
	s.logger.Debugf(0, "moving %d disks from %s to %s via %s, placement: %s\n",
		numDisks, source.Name, destination.Name, auxiliary.Name,
		s.placement)
	startTime := time.Now()
	var err error
	if iterative {
		err = s.solveIterative(numDisks, source, auxiliary, destination)
	} else {
		err = s.solveRecursive(numDisks, source, auxiliary, destination)
	}
	duration := time.Since(startTime)
	recordSolve(s.numMoves, duration, err)
	if err != nil {
		s.logger.Debugf(0, "solve failed after %d moves: %s\n", s.numMoves, err)
		return s.numMoves, err
	}
	s.logger.Debugf(0, "moved %d disks in %d moves, took %s\n",
		numDisks, s.numMoves, format.Duration(duration))
	return s.numMoves, nil
}

func (s *solver[T]) solveRecursive(numDisks uint,
	source, auxiliary, destination *Column[T]) error {
	if numDisks == 0 {
		return nil
	}
	err := s.solveRecursive(numDisks-1, source, destination, auxiliary)
	if err != nil {
		return err
	}
	if err := s.moveDisk(source, auxiliary, destination); err != nil {
		return err
	}
	return s.solveRecursive(numDisks-1, auxiliary, source, destination)
}

// Frames are pushed in reverse of the order in which the recursive solver
// would visit them.
func (s *solver[T]) solveIterative(numDisks uint,
	source, auxiliary, destination *Column[T]) error {
	frames := stack.New[frame[T]]()
	frames.Push(frame[T]{
		numDisks:    numDisks,
		source:      source,
		auxiliary:   auxiliary,
		destination: destination,
	})
	for frames.Size() > 0 {
		f := frames.Pop()
		if f.move {
			if err := s.moveDisk(f.source, f.auxiliary, f.destination); err != nil {
				return err
			}
			continue
		}
		if f.numDisks == 0 {
			continue
		}
		frames.Push(frame[T]{
			numDisks:    f.numDisks - 1,
			source:      f.auxiliary,
			auxiliary:   f.source,
			destination: f.destination,
		})
		frames.Push(frame[T]{
			move:        true,
			source:      f.source,
			auxiliary:   f.auxiliary,
			destination: f.destination,
		})
		frames.Push(frame[T]{
			numDisks:    f.numDisks - 1,
			source:      f.source,
			auxiliary:   f.destination,
			destination: f.auxiliary,
		})
	}
	return nil
}

// The top disk is read before anything is changed, so a failed move leaves
// all columns untouched.
func (s *solver[T]) moveDisk(source, auxiliary, destination *Column[T]) error {
	disk, err := source.Disks.Get(0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.writer, "Move disk %v from Column %s to Column %s\n",
		disk, source.Name, destination.Name)
	if err != nil {
		return err
	}
	if s.placement == PlaceAtBottom {
		destination.Disks.PushBack(disk)
	} else {
		destination.Disks.PushFront(disk)
	}
	if err := source.Disks.PopFront(); err != nil {
		return err
	}
	s.numMoves++
	s.logger.Debugf(1, "move %d: %v %s->%s\n",
		s.numMoves, disk, source.Name, destination.Name)
	return writeState(s.writer, source, auxiliary, destination)
}

func writeState[T any](writer io.Writer,
	source, auxiliary, destination *Column[T]) error {
	towers := []struct {
		title  string
		column *Column[T]
	}{
		{"Source Tower:", source},
		{"Auxiliary Tower:", auxiliary},
		{"Destination Tower:", destination},
	}
	for _, tower := range towers {
		if _, err := fmt.Fprintln(writer, tower.title); err != nil {
			return err
		}
		if err := tower.column.WriteColumn(writer); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer, separator)
	return err
}

func (p Placement) string() string {
	switch p {
	case PlaceOnTop:
		return "top"
	case PlaceAtBottom:
		return "bottom"
	}
	return fmt.Sprintf("Placement(%d)", uint(p))
}

func (p *Placement) set(value string) error {
	switch value {
	case "top":
		*p = PlaceOnTop
	case "bottom":
		*p = PlaceAtBottom
	default:
		return errors.NewInvalidArgumentError("placement",
			fmt.Sprintf("%q is not one of: top, bottom", value))
	}
	return nil
}
