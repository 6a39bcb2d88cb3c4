package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Cloud-Foundations/Hanoi/lib/errors"
	"github.com/Cloud-Foundations/Hanoi/lib/flagutil"
	"github.com/Cloud-Foundations/Hanoi/lib/hanoi"
	"github.com/Cloud-Foundations/Hanoi/lib/log/testlogger"
)

func setFlags(t *testing.T, disks flagutil.UintList, p hanoi.Placement,
	useIterative bool) {
	oldDisks, oldPlacement, oldIterative := diskValues, placement, *iterative
	diskValues, placement, *iterative = disks, p, useIterative
	t.Cleanup(func() {
		diskValues, placement, *iterative = oldDisks, oldPlacement, oldIterative
	})
}

func TestSolveOutput(t *testing.T) {
	for _, useIterative := range []bool{false, true} {
		setFlags(t, flagutil.UintList{4, 7, 2}, hanoi.PlaceOnTop, useIterative)
		buffer := &bytes.Buffer{}
		if err := solve(buffer, nil, testlogger.New(t)); err != nil {
			t.Fatal(err)
		}
		output := buffer.String()
		initial := "Source Tower:\nColumn A: 4\nColumn A: 7\nColumn A: 2\n" +
			"Auxiliary Tower:\nDestination Tower:\n-------------\n"
		if !strings.HasPrefix(output, initial) {
			t.Fatalf("missing initial state, got:\n%s", output)
		}
		if count := strings.Count(output, "Move disk "); count != 7 {
			t.Errorf("got: %d moves, expected: 7", count)
		}
		final := "Destination Tower:\nColumn C: 4\nColumn C: 7\nColumn C: 2\n" +
			"-------------\n"
		if !strings.HasSuffix(output, final) {
			t.Errorf("unexpected final state, got:\n%s", output)
		}
	}
}

func TestSolveTooManyDisks(t *testing.T) {
	setFlags(t, flagutil.UintList{4, 7}, hanoi.PlaceOnTop, false)
	buffer := &bytes.Buffer{}
	err := solve(buffer, []string{"3"}, testlogger.New(t))
	if !errors.IsIndexOutOfRange(err) {
		t.Fatalf("got: %v, expected IndexOutOfRangeError", err)
	}
}

func TestSolveBadArgument(t *testing.T) {
	setFlags(t, flagutil.UintList{4}, hanoi.PlaceOnTop, false)
	err := solve(&bytes.Buffer{}, []string{"three"}, testlogger.New(t))
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("got: %v, expected InvalidArgumentError", err)
	}
}

func TestSolveRandomDisks(t *testing.T) {
	setFlags(t, nil, hanoi.PlaceOnTop, false)
	oldNumDisks, oldSeed := *numDisks, *randomSeed
	*numDisks, *randomSeed = 4, 42
	defer func() { *numDisks, *randomSeed = oldNumDisks, oldSeed }()
	buffer := &bytes.Buffer{}
	if err := solve(buffer, nil, testlogger.New(t)); err != nil {
		t.Fatal(err)
	}
	if count := strings.Count(buffer.String(), "Move disk "); count != 15 {
		t.Errorf("got: %d moves, expected: 15", count)
	}
	first := makeTowers(testlogger.New(t)).source.Disks.Values()
	second := makeTowers(testlogger.New(t)).source.Disks.Values()
	if len(first) != 4 {
		t.Fatalf("got %d disks, expected: 4", len(first))
	}
	for index := range first {
		if first[index] != second[index] {
			t.Fatalf("seeded disks differ: %v != %v", first, second)
		}
	}
}

func TestPrintInitial(t *testing.T) {
	setFlags(t, flagutil.UintList{1, 2}, hanoi.PlaceOnTop, false)
	buffer := &bytes.Buffer{}
	if err := printInitial(buffer, testlogger.New(t)); err != nil {
		t.Fatal(err)
	}
	expected := "Source Tower:\nColumn A: 1\nColumn A: 2\n" +
		"Auxiliary Tower:\nDestination Tower:\n-------------\n"
	if got := buffer.String(); got != expected {
		t.Errorf("got: %q, expected: %q", got, expected)
	}
}

func TestCountMoves(t *testing.T) {
	var tests = []struct {
		arg  string
		want string
	}{
		{"0", "0\n"},
		{"3", "7\n"},
		{"20", "1048575\n"},
		{"64", "18446744073709551615\n"},
	}
	for _, test := range tests {
		buffer := &bytes.Buffer{}
		if err := countMoves(buffer, test.arg); err != nil {
			t.Fatal(err)
		}
		if got := buffer.String(); got != test.want {
			t.Errorf("count-moves %s: got: %q, expected: %q",
				test.arg, got, test.want)
		}
	}
	for _, bad := range []string{"-1", "x", "65"} {
		if err := countMoves(&bytes.Buffer{}, bad); !errors.IsInvalidArgument(err) {
			t.Errorf("count-moves %s: got: %v, expected InvalidArgumentError",
				bad, err)
		}
	}
}
