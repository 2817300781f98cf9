package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewBlock_WithinLimits(t *testing.T) {
	params := DefaultWorldParams()
	r := NewRand(0)
	for range 10000 {
		b := NewBlock(&r, params)
		require.GreaterOrEqual(t, b.Size.X, int64(20))
		require.LessOrEqual(t, b.Size.X, int64(60))
		require.GreaterOrEqual(t, b.Size.Y, int64(20))
		require.LessOrEqual(t, b.Size.Y, int64(60))
		require.GreaterOrEqual(t, b.Speed, int64(3))
		require.LessOrEqual(t, b.Speed, int64(8))
		require.GreaterOrEqual(t, b.Pos.X, int64(0))
		require.LessOrEqual(t, b.Pos.X, params.ScreenWidth-b.Size.X)
		require.Equal(t, -b.Size.Y, b.Pos.Y)
	}
}

func TestNewBlock_SameSeedSameBlocks(t *testing.T) {
	params := DefaultWorldParams()
	r1 := NewRand(7)
	r2 := NewRand(7)
	for range 100 {
		assert.Equal(t, NewBlock(&r1, params), NewBlock(&r2, params))
	}
}

func TestBlockStep(t *testing.T) {
	b := Block{Pos: Pt{100, -50}, Size: Pt{50, 50}, Speed: 5}
	for range 10 {
		b.Step()
	}
	assert.Equal(t, Pt{100, 0}, b.Pos)
	assert.Equal(t, NewRectangle(100, 0, 50, 50), b.Bounds())
}

func TestBlockExited(t *testing.T) {
	b := Block{Pos: Pt{100, 479}, Size: Pt{20, 20}, Speed: 1}
	assert.False(t, b.Exited(480))
	b.Step()
	assert.False(t, b.Exited(480))
	b.Step()
	assert.True(t, b.Exited(480))
}
