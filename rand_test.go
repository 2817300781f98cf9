package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRand_SameSeedSameRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(13)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_DifferentSeedsDifferentRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(14)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.NotEqual(t, v1, v2)
}

func TestRand_CopyMakesIdenticalGenerators(t *testing.T) {
	r1 := NewRand(13)
	for range 10 {
		r1.RInt(0, 1000000)
	}

	r2 := r1

	v1 := [10]int64{}
	v2 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_RIntIncludesBothEnds(t *testing.T) {
	r := NewRand(0)
	seen := map[int64]bool{}
	for range 10000 {
		v := r.RInt(3, 8)
		assert.GreaterOrEqual(t, v, int64(3))
		assert.LessOrEqual(t, v, int64(8))
		seen[v] = true
	}
	assert.Len(t, seen, 6)

	assert.Equal(t, int64(5), r.RInt(5, 5))
	assert.Panics(t, func() { r.RInt(8, 3) })
}
