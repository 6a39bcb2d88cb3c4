package hanoi

import (
	"io"

	"github.com/Cloud-Foundations/Hanoi/lib/list"
	"github.com/Cloud-Foundations/Hanoi/lib/log"
)

// MaxDisks is the largest number of disks which may be moved in one solve,
// since the move count must fit in a uint64.
const MaxDisks = 64

const (
	PlaceOnTop Placement = iota
	PlaceAtBottom
)

// Column is one peg. The front of Disks is the top of the peg.
type Column[T any] struct {
	Name  string
	Disks *list.List[T]
}

// Placement selects where a moved disk is put on the destination column.
// PlaceOnTop keeps peg (stack) semantics, so a full solve leaves the disks in
// their original order. PlaceAtBottom appends the disk to the back of the
// destination, which matches the historical console output of this program.
type Placement uint

type Params struct {
	Logger    log.DebugLogger // Optional.
	Placement Placement
	Writer    io.Writer // Console output. If nil, output is discarded.
}

// NewColumn creates a column. If disks is nil an empty list is used.
func NewColumn[T any](name string, disks *list.List[T]) *Column[T] {
	if disks == nil {
		disks = list.New[T]()
	}
	return &Column[T]{Name: name, Disks: disks}
}

// MoveCount returns the number of moves required to move numDisks disks,
// which is 2^numDisks - 1.
func MoveCount(numDisks uint) (uint64, error) {
	return moveCount(numDisks)
}

// Solve moves the top numDisks disks from source to destination, one disk at a
// time, using auxiliary as the spare peg. Each move is announced and is
// followed by the state of the three columns. The number of moves made is
// returned. Errors from the columns (for example moving from an empty column)
// are returned unchanged and stop the solve.
// The recursion depth is numDisks.
func Solve[T any](numDisks uint, source, auxiliary, destination *Column[T],
	params Params) (uint64, error) {
	return solve(numDisks, source, auxiliary, destination, params, false)
}

// SolveIterative is the same as Solve, except that an explicit stack is used
// in place of recursion. The moves and output are identical.
func SolveIterative[T any](numDisks uint,
	source, auxiliary, destination *Column[T], params Params) (uint64, error) {
	return solve(numDisks, source, auxiliary, destination, params, true)
}

// String returns "top" or "bottom".
func (p Placement) String() string {
	return p.string()
}

// Set implements flag.Value.
func (p *Placement) Set(value string) error {
	return p.set(value)
}

// WriteColumn writes the "Column <name>: <disk>" lines for the column.
func (c *Column[T]) WriteColumn(writer io.Writer) error {
	return c.Disks.WriteColumn(writer, c.Name)
}

// WriteState writes the towers of the three columns followed by a separator
// line.
func WriteState[T any](writer io.Writer,
	source, auxiliary, destination *Column[T]) error {
	return writeState(writer, source, auxiliary, destination)
}
