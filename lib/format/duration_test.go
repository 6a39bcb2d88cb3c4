package format

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	var tests = []struct {
		duration time.Duration
		want     string
	}{
		{0, "0ns"},
		{999, "999ns"},
		{1500 * time.Nanosecond, "1.5µs"},
		{12345 * time.Microsecond, "12.3ms"},
		{2500 * time.Millisecond, "2.5s"},
		{90*time.Second + 400*time.Millisecond, "1m30s"},
		{26 * time.Hour, "26h0m0s"},
	}
	for _, test := range tests {
		if got := Duration(test.duration); got != test.want {
			t.Errorf("Duration(%d) = %q, expected: %q",
				test.duration, got, test.want)
		}
	}
}
