package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(DefaultWorldParams())
	assert.Equal(t, Pt{295, 420}, p.Pos)
	assert.Equal(t, Pt{50, 50}, p.Size)
	assert.Equal(t, int64(6), p.Speed)
}

func TestPlayerMove_Left(t *testing.T) {
	params := DefaultWorldParams()
	p := NewPlayer(params)
	for range 5 {
		p.Move(-1, params.ScreenBounds())
	}
	assert.Equal(t, int64(265), p.Pos.X)
	assert.Equal(t, int64(420), p.Pos.Y)
}

func TestPlayerMove_ZeroDoesNothing(t *testing.T) {
	params := DefaultWorldParams()
	p := NewPlayer(params)
	for _, x := range []int64{0, 1, 295, 589, 590} {
		p.Pos.X = x
		p.Move(0, params.ScreenBounds())
		assert.Equal(t, x, p.Pos.X)
		assert.Equal(t, int64(420), p.Pos.Y)
	}
}

func TestPlayerMove_StaysOnScreen(t *testing.T) {
	params := DefaultWorldParams()
	p := NewPlayer(params)

	for range 100 {
		p.Move(1, params.ScreenBounds())
	}
	assert.Equal(t, int64(590), p.Pos.X)

	for range 100 {
		p.Move(-1, params.ScreenBounds())
	}
	assert.Equal(t, int64(0), p.Pos.X)

	r := NewRand(0)
	for range 10000 {
		p.Move(r.RInt(-1, 1), params.ScreenBounds())
		assert.GreaterOrEqual(t, p.Pos.X, int64(0))
		assert.LessOrEqual(t, p.Pos.X+p.Size.X, params.ScreenWidth)
	}
}
