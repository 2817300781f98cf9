package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLayout_Wide(t *testing.T) {
	var g Gui
	g.WorldParams = DefaultWorldParams()
	w, h := g.Layout(1280, 720)
	assert.Equal(t, 853, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, NewRectangle(106, 0, 640, 480), g.gameArea)
}

func TestLayout_TallWithDebugArea(t *testing.T) {
	var g Gui
	g.WorldParams = DefaultWorldParams()
	g.enableDebugAreas = true
	w, h := g.Layout(320, 1024)
	assert.Equal(t, 640, w)
	assert.Equal(t, 2048, h)
	assert.Equal(t, NewRectangle(0, 764, 640, 480), g.gameArea)
	assert.Equal(t, NewRectangle(0, 1244, 640, DebugHeight), g.debugArea)
	assert.Equal(t, Pt{5, 3}, g.ScreenToDebug(Pt{5, 1247}))
}

func TestLayout_Minimized(t *testing.T) {
	var g Gui
	g.WorldParams = DefaultWorldParams()
	w, h := g.Layout(0, 0)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}
