package list

import (
	"io"
)

// MaxRandomValue is the exclusive upper bound of values generated by
// NewRandom.
const MaxRandomValue = 100

// List is a singly linked list of values. The zero value is an empty list
// ready to use. A List is not safe for concurrent use.
type List[T any] struct {
	first  *entry[T]
	last   *entry[T]
	length uint
}

type entry[T any] struct {
	next  *entry[T]
	value T
}

// RandomSource is a source of pseudo-random integers. The *rand.Rand type from
// math/rand/v2 satisfies this interface.
type RandomSource interface {
	IntN(n int) int
}

// New creates an empty linked list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewFromValues creates a linked list containing the specified values in
// order.
func NewFromValues[T any](values ...T) *List[T] {
	return newFromValues(values)
}

// NewRandom creates a linked list of count values in the range
// [0, MaxRandomValue) drawn from source.
func NewRandom(count uint, source RandomSource) *List[int] {
	return newRandom(count, source)
}

// DeleteAll removes every entry equal to value. It returns the number of
// entries removed.
func DeleteAll[T comparable](l *List[T], value T) uint {
	return deleteAll(l, value)
}

// Assign replaces the contents of the list with a copy of the contents of
// other. Assigning a list to itself does nothing.
func (l *List[T]) Assign(other *List[T]) {
	l.assign(other)
}

// Back returns the last value in the list.
func (l *List[T]) Back() (T, error) {
	return l.back()
}

// Clear removes all entries from the list. It is safe to call Clear on an
// empty list.
func (l *List[T]) Clear() {
	l.clear()
}

// ColumnLines returns one "Column <label>: <value>" line per value, starting
// from the front.
func (l *List[T]) ColumnLines(label string) []string {
	return l.columnLines(label)
}

// Copy returns a deep copy of the list. The copy shares no entries with the
// original.
func (l *List[T]) Copy() *List[T] {
	return l.copy()
}

// DeleteFunc removes every entry for which fn returns true, preserving the
// order of the remaining entries. It returns the number of entries removed.
func (l *List[T]) DeleteFunc(fn func(T) bool) uint {
	return l.deleteFunc(fn)
}

// Front returns the first value in the list.
func (l *List[T]) Front() (T, error) {
	return l.front()
}

// Get returns the value at the specified index, counting from 0 at the front.
// This is O(index).
func (l *List[T]) Get(index uint) (T, error) {
	return l.get(index)
}

// IsEmpty returns true if the list has no entries.
func (l *List[T]) IsEmpty() bool {
	return l.first == nil
}

// IterateValues will call fn for each value in the list, starting from the
// front. If fn returns false the iteration terminates and IterateValues will
// return false, else it will return true.
func (l *List[T]) IterateValues(fn func(T) bool) bool {
	return l.iterateValues(fn)
}

// Length returns the number of entries in the list.
func (l *List[T]) Length() uint {
	return l.length
}

// PopBack removes the last entry. This is O(n) since entries do not link back
// to their predecessor.
func (l *List[T]) PopBack() error {
	return l.popBack()
}

// PopFront removes the first entry.
func (l *List[T]) PopFront() error {
	return l.popFront()
}

// PushBack adds the value to the back of the list.
func (l *List[T]) PushBack(value T) {
	l.pushBack(value)
}

// PushBackList adds the values of other to the back of the list, preserving
// their order. The other list is not modified.
func (l *List[T]) PushBackList(other *List[T]) {
	l.pushBackList(other)
}

// PushFront adds the value to the front of the list.
func (l *List[T]) PushFront(value T) {
	l.pushFront(value)
}

// PushFrontList adds the values of other to the front of the list, preserving
// their order. The other list is not modified. A scratch copy of other is made.
func (l *List[T]) PushFrontList(other *List[T]) {
	l.pushFrontList(other)
}

// Reverse reverses the order of the entries in place.
func (l *List[T]) Reverse() {
	l.reverse()
}

// Set replaces the value at the specified index.
func (l *List[T]) Set(index uint, value T) error {
	return l.set(index, value)
}

// String returns the values in the form "[v0 v1 v2]".
func (l *List[T]) String() string {
	return l.string()
}

// Values returns a slice of the values, starting from the front.
func (l *List[T]) Values() []T {
	return l.values()
}

// WriteColumn writes one "Column <label>: <value>" line per value to writer,
// starting from the front.
func (l *List[T]) WriteColumn(writer io.Writer, label string) error {
	return l.writeColumn(writer, label)
}
