package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

// randomPlaythrough plays nFrames of random input, the way a person mashing
// keys would, including restarts.
func randomPlaythrough(seed int64, nFrames int) Playthrough {
	level := Level{
		CustomPlayerPos: true,
		PlayerPos:       Pt{100, 420},
		StartBlocks:     []Block{{Pos: Pt{0, -30}, Size: Pt{30, 30}, Speed: 4}},
	}
	p := NewPlaythrough(DefaultWorldParams(), level, seed)
	r := NewRand(seed)
	for range nFrames {
		p.History = append(p.History, PlayerInput{
			Left:    r.RInt(0, 1) == 1,
			Right:   r.RInt(0, 2) == 2,
			Restart: r.RInt(0, 60) == 0,
			Elapsed: frame + frame*time.Duration(r.RInt(-1, 1))/10,
		})
	}
	return p
}

func TestPlaythrough_SerializeDeserialize(t *testing.T) {
	p1 := randomPlaythrough(5, 500)
	p2 := DeserializePlaythrough(p1.Serialize())
	assert.Equal(t, p1, p2)
}

func TestPlaythrough_DeserializeWrongInputVersion(t *testing.T) {
	p := randomPlaythrough(5, 10)
	p.InputVersion = InputVersion + 1
	data := p.Serialize()
	assert.Panics(t, func() { DeserializePlaythrough(data) })
}

func TestPlaythrough_Clone(t *testing.T) {
	p1 := randomPlaythrough(5, 10)
	p2 := p1.Clone()
	assert.Equal(t, p1, *p2)

	p2.History[0].Left = !p2.History[0].Left
	p2.StartBlocks[0].Speed = 100
	assert.NotEqual(t, p1.History[0], p2.History[0])
	assert.Equal(t, int64(4), p1.StartBlocks[0].Speed)
}

func TestRegressionId_SamePlaythroughSameId(t *testing.T) {
	p := randomPlaythrough(11, 2000)
	id1 := RegressionId(&p)
	replayed := DeserializePlaythrough(p.Serialize())
	id2 := RegressionId(&replayed)
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 64)
}

func TestRegressionId_DifferentInputDifferentId(t *testing.T) {
	p1 := randomPlaythrough(11, 100)
	p2 := p1.Clone()
	p2.History[0] = PlayerInput{Right: true}
	p1.History[0] = PlayerInput{Left: true}
	assert.NotEqual(t, RegressionId(&p1), RegressionId(p2))
}

func TestRegressionId_ReplayIsDeterministic(t *testing.T) {
	// Stepping two Worlds with the same input must keep them identical at
	// every frame, not just at the end.
	p := randomPlaythrough(17, 3000)
	w1 := NewWorldFromPlaythrough(p)
	w2 := NewWorldFromPlaythrough(p)
	for i := range p.History {
		w1.Step(p.History[i])
		w2.Step(p.History[i])
		require.Equal(t, w1.StateBytes(), w2.StateBytes())
	}
}

func BenchmarkRegressionId(b *testing.B) {
	p := randomPlaythrough(23, 3600)
	for b.Loop() {
		RegressionId(&p)
	}
}
