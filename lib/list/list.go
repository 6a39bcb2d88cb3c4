package list

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cloud-Foundations/Hanoi/lib/errors"
	"github.com/zyedidia/generic"
)

func newFromValues[T any](values []T) *List[T] {
	l := &List[T]{}
	for _, value := range values {
		l.pushBack(value)
	}
	return l
}

func newRandom(count uint, source RandomSource) *List[int] {
	l := &List[int]{}
	for index := uint(0); index < count; index++ {
		l.pushBack(source.IntN(MaxRandomValue))
	}
	return l
}

func deleteAll[T comparable](l *List[T], value T) uint {
	return l.deleteFunc(func(v T) bool {
		return generic.Equals(v, value)
	})
}

func (l *List[T]) assign(other *List[T]) {
	if l == other {
		return
	}
	l.clear()
	l.pushBackList(other)
}

func (l *List[T]) back() (T, error) {
	if l.last == nil {
		var zero T
		return zero, errors.NewEmptyCollectionError("Back")
	}
	return l.last.value, nil
}

func (l *List[T]) clear() {
	var nextEntry *entry[T]
	for entry := l.first; entry != nil; entry = nextEntry {
		nextEntry = entry.next
		entry.next = nil
	}
	l.first = nil
	l.last = nil
	l.length = 0
}

func (l *List[T]) columnLines(label string) []string {
	lines := make([]string, 0, l.length)
	l.iterateValues(func(value T) bool {
		lines = append(lines, fmt.Sprintf("Column %s: %v", label, value))
		return true
	})
	return lines
}

func (l *List[T]) copy() *List[T] {
	newList := &List[T]{}
	newList.pushBackList(l)
	return newList
}

// Single pass: prev trails entry so matches can be unlinked in place.
func (l *List[T]) deleteFunc(fn func(T) bool) uint {
	var numDeleted uint
	var prev *entry[T]
	entry := l.first
	for entry != nil {
		nextEntry := entry.next
		if fn(entry.value) {
			if prev == nil {
				l.first = nextEntry
			} else {
				prev.next = nextEntry
			}
			if entry == l.last {
				l.last = prev
			}
			entry.next = nil
			l.length--
			numDeleted++
		} else {
			prev = entry
		}
		entry = nextEntry
	}
	return numDeleted
}

func (l *List[T]) front() (T, error) {
	if l.first == nil {
		var zero T
		return zero, errors.NewEmptyCollectionError("Front")
	}
	return l.first.value, nil
}

func (l *List[T]) get(index uint) (T, error) {
	entry, err := l.getEntry(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return entry.value, nil
}

func (l *List[T]) getEntry(index uint) (*entry[T], error) {
	if index >= l.length {
		return nil, errors.NewIndexOutOfRangeError(index, l.length)
	}
	entry := l.first
	for count := uint(0); count < index; count++ {
		entry = entry.next
	}
	return entry, nil
}

func (l *List[T]) iterateValues(fn func(T) bool) bool {
	for entry := l.first; entry != nil; entry = entry.next {
		if !fn(entry.value) {
			return false
		}
	}
	return true
}

func (l *List[T]) popBack() error {
	if l.first == nil {
		return errors.NewEmptyCollectionError("PopBack")
	}
	if l.first == l.last {
		l.first = nil
		l.last = nil
		l.length = 0
		return nil
	}
	prev := l.first
	for prev.next != l.last {
		prev = prev.next
	}
	prev.next = nil
	l.last = prev
	l.length--
	return nil
}

func (l *List[T]) popFront() error {
	if l.first == nil {
		return errors.NewEmptyCollectionError("PopFront")
	}
	oldFirst := l.first
	l.first = oldFirst.next
	oldFirst.next = nil
	if l.first == nil {
		l.last = nil
	}
	l.length--
	return nil
}

func (l *List[T]) pushBack(value T) {
	entry := &entry[T]{value: value}
	if l.last == nil {
		l.first = entry
	} else {
		l.last.next = entry
	}
	l.last = entry
	l.length++
}

// Only the entries present at the start are copied, so pushing a list onto
// itself doubles it instead of looping forever.
func (l *List[T]) pushBackList(other *List[T]) {
	entry := other.first
	for count := other.length; count > 0; count-- {
		l.pushBack(entry.value)
		entry = entry.next
	}
}

func (l *List[T]) pushFront(value T) {
	entry := &entry[T]{next: l.first, value: value}
	if l.first == nil {
		l.last = entry
	}
	l.first = entry
	l.length++
}

func (l *List[T]) pushFrontList(other *List[T]) {
	scratch := other.copy()
	if scratch.first == nil {
		return
	}
	scratch.last.next = l.first
	if l.last == nil {
		l.last = scratch.last
	}
	l.first = scratch.first
	l.length += scratch.length
}

func (l *List[T]) reverse() {
	var prev *entry[T]
	entry := l.first
	for entry != nil {
		nextEntry := entry.next
		entry.next = prev
		prev = entry
		entry = nextEntry
	}
	l.first, l.last = l.last, l.first
}

func (l *List[T]) set(index uint, value T) error {
	entry, err := l.getEntry(index)
	if err != nil {
		return err
	}
	entry.value = value
	return nil
}

func (l *List[T]) string() string {
	buffer := &strings.Builder{}
	buffer.WriteRune('[')
	for entry := l.first; entry != nil; entry = entry.next {
		if entry != l.first {
			buffer.WriteRune(' ')
		}
		fmt.Fprint(buffer, entry.value)
	}
	buffer.WriteRune(']')
	return buffer.String()
}

func (l *List[T]) values() []T {
	values := make([]T, 0, l.length)
	for entry := l.first; entry != nil; entry = entry.next {
		values = append(values, entry.value)
	}
	return values
}

func (l *List[T]) writeColumn(writer io.Writer, label string) error {
	for entry := l.first; entry != nil; entry = entry.next {
		_, err := fmt.Fprintf(writer, "Column %s: %v\n", label, entry.value)
		if err != nil {
			return err
		}
	}
	return nil
}
