package main

import (
	"fmt"
	"math/rand/v2"
)

// Rand is a deterministic random number generator. The World owns one and
// seeds it from the Playthrough, so replaying the same inputs with the same
// seed reproduces the same blocks.
// Rand holds its state by value. Copying a Rand produces an independent
// generator which will output the same numbers as the original.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), 0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number in [minVal, maxVal], both ends included.
func (r *Rand) RInt(minVal int64, maxVal int64) int64 {
	if minVal > maxVal {
		Check(fmt.Errorf("invalid random interval [%d, %d]", minVal, maxVal))
		return minVal
	}
	n := uint64(maxVal-minVal) + 1
	return minVal + int64(r.pcg.Uint64()%n)
}
