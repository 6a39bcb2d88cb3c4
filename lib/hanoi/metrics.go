package hanoi

import (
	"sync"
	"time"

	"github.com/Cloud-Foundations/tricorder/go/tricorder"
	"github.com/Cloud-Foundations/tricorder/go/tricorder/units"
)

var (
	metricsMutex          sync.Mutex
	numFailures           uint64
	numMoves              uint64
	numSolves             uint64
	solveTimeDistribution *tricorder.CumulativeDistribution
)

func init() {
	initMetrics()
}

func initMetrics() {
	dir, err := tricorder.RegisterDirectory("hanoi")
	if err != nil {
		panic(err)
	}
	err = dir.RegisterMetric("num-failures",
		func() uint64 { _, _, failures := readCounters(); return failures },
		units.None, "number of solves which stopped with an error")
	if err != nil {
		panic(err)
	}
	err = dir.RegisterMetric("num-moves",
		func() uint64 { _, moves, _ := readCounters(); return moves },
		units.None, "number of disks moved")
	if err != nil {
		panic(err)
	}
	err = dir.RegisterMetric("num-solves",
		func() uint64 { solves, _, _ := readCounters(); return solves },
		units.None, "number of solves run")
	if err != nil {
		panic(err)
	}
	bucketer := tricorder.NewGeometricBucketer(0.1, 1e5)
	solveTimeDistribution = bucketer.NewCumulativeDistribution()
	err = dir.RegisterMetric("solve-time", solveTimeDistribution,
		units.Millisecond, "solve durations")
	if err != nil {
		panic(err)
	}
}

func recordSolve(moves uint64, duration time.Duration, err error) {
	metricsMutex.Lock()
	numMoves += moves
	numSolves++
	if err != nil {
		numFailures++
	}
	metricsMutex.Unlock()
	solveTimeDistribution.Add(duration)
}

func readCounters() (solves, moves, failures uint64) {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	return numSolves, numMoves, numFailures
}
