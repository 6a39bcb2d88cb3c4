package errors

import (
	"errors"
	"strconv"
)

type EmptyCollectionError struct {
	Operation string
}

func (e *EmptyCollectionError) Error() string {
	if e.Operation != "" {
		return e.Operation + ": list is empty"
	}
	return "list is empty"
}

func NewEmptyCollectionError(operation string) *EmptyCollectionError {
	return &EmptyCollectionError{Operation: operation}
}

type IndexOutOfRangeError struct {
	Index  uint
	Length uint
}

func (e *IndexOutOfRangeError) Error() string {
	return "index " + strconv.FormatUint(uint64(e.Index), 10) +
		" out of range [0:" + strconv.FormatUint(uint64(e.Length), 10) + ")"
}

func NewIndexOutOfRangeError(index, length uint) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{Index: index, Length: length}
}

type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason != "" {
		return "invalid argument " + e.Argument + ": " + e.Reason
	}
	return "invalid argument: " + e.Argument
}

func NewInvalidArgumentError(argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Reason: reason}
}

// IsEmptyCollection returns true if err is or wraps an EmptyCollectionError.
func IsEmptyCollection(err error) bool {
	var target *EmptyCollectionError
	return errors.As(err, &target)
}

// IsIndexOutOfRange returns true if err is or wraps an IndexOutOfRangeError.
func IsIndexOutOfRange(err error) bool {
	var target *IndexOutOfRangeError
	return errors.As(err, &target)
}

// IsInvalidArgument returns true if err is or wraps an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}
