package main

import (
	"math/rand/v2"
	"time"

	"github.com/Cloud-Foundations/Hanoi/lib/hanoi"
	"github.com/Cloud-Foundations/Hanoi/lib/list"
	"github.com/Cloud-Foundations/Hanoi/lib/log"
)

type towers struct {
	source      *hanoi.Column[int]
	auxiliary   *hanoi.Column[int]
	destination *hanoi.Column[int]
}

func makeTowers(logger log.DebugLogger) *towers {
	var disks *list.List[int]
	if len(diskValues) > 0 {
		disks = list.NewFromValues(diskValues.Ints()...)
	} else {
		seed := *randomSeed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		logger.Debugf(0, "generating %d disks with seed: %d\n", *numDisks, seed)
		disks = list.NewRandom(*numDisks, rand.New(rand.NewPCG(seed, ^seed)))
	}
	return &towers{
		source:      hanoi.NewColumn("A", disks),
		auxiliary:   hanoi.NewColumn[int]("B", nil),
		destination: hanoi.NewColumn[int]("C", nil),
	}
}

func (t *towers) clear() {
	t.source.Disks.Clear()
	t.auxiliary.Disks.Clear()
	t.destination.Disks.Clear()
}
