package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func testdataFS() FS {
	return os.DirFS("testdata").(FS)
}

func TestLoadScenario(t *testing.T) {
	s := LoadScenario(testdataFS(), "scenario-two-blocks.yaml")
	require.NotNil(t, s.Player)
	assert.Equal(t, int64(100), s.Player.X)
	require.Len(t, s.Blocks, 2)
	assert.Equal(t, ScenarioBlock{X: 600, Y: 100, Width: 40, Height: 10, Speed: 8},
		s.Blocks[1])

	l := s.GetLevel(DefaultWorldParams())
	assert.True(t, l.CustomPlayerPos)
	assert.Equal(t, Pt{100, 420}, l.PlayerPos)
	assert.Equal(t, []Block{
		{Pos: Pt{0, -20}, Size: Pt{20, 20}, Speed: 3},
		{Pos: Pt{600, 100}, Size: Pt{40, 10}, Speed: 8},
	}, l.StartBlocks)
}

func TestLoadScenario_Embedded(t *testing.T) {
	s := LoadScenario(&embeddedFiles, "data/scenarios/corridor.yaml")
	l := s.GetLevel(DefaultWorldParams())
	assert.Len(t, l.StartBlocks, 4)

	// The corridor is wide enough to survive without moving.
	w := NewWorld(0, DefaultWorldParams(), l)
	for range 200 {
		w.Step(PlayerInput{})
		require.Equal(t, Playing, w.Status)
	}
	assert.Equal(t, int64(20), w.Score)
}

func TestScenario_InvalidBlock(t *testing.T) {
	s := LoadScenario(testdataFS(), "scenario-invalid-block.yaml")
	assert.Nil(t, s.Player)
	assert.Panics(t, func() { s.GetLevel(DefaultWorldParams()) })
}

func TestScenario_NoPlayer(t *testing.T) {
	s := Scenario{}
	l := s.GetLevel(DefaultWorldParams())
	assert.False(t, l.CustomPlayerPos)
	assert.Empty(t, l.StartBlocks)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	assert.Panics(t, func() { LoadScenario(testdataFS(), "missing.yaml") })
}
