package main

import (
	"fmt"
	"slices"
	"time"
)

// SimulationVersion identifies the rules implemented by World. A Playthrough
// can only be replayed by a World with the same SimulationVersion, because
// the same inputs under different rules produce a different game.
// SimulationVersion must change every time World.Step changes behavior, even
// slightly (the order in which random numbers are drawn counts).
const SimulationVersion = 1

// World rules
// - The player sits near the bottom of the screen and can only move
// horizontally. The player never leaves the screen.
// - Blocks appear above the top edge of the screen at a fixed interval of
// wall-clock time, each with a random size, speed and horizontal position.
// - Every frame each block falls by its speed.
// - A block whose top goes below the bottom edge of the screen is removed and
// the player gets points for it.
// - If a block overlaps the player, the game is over. Touching edges is not
// overlapping.
// - When the game is over nothing moves until the player restarts. A restart
// begins a new session: the player is back in the center, there are no
// blocks and the score is 0.

type Status int64

const (
	Playing Status = iota
	GameOver
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Status(%d)", int64(s))
	}
}

// PlayerInput is everything the World needs from the outside to advance one
// frame. The elapsed wall-clock time is part of the input so that replaying a
// Playthrough spawns blocks on exactly the same frames.
type PlayerInput struct {
	Left    bool
	Right   bool
	Restart bool
	Elapsed time.Duration
}

// Direction converts the pressed keys into a horizontal direction. If both
// keys are held, right wins.
func (p PlayerInput) Direction() (dir int64) {
	if p.Left {
		dir = -1
	}
	if p.Right {
		dir = 1
	}
	return
}

// Level describes how the first session of a World starts. An empty Level
// means the regular start: player in the center, no blocks.
type Level struct {
	CustomPlayerPos bool
	PlayerPos       Pt
	StartBlocks     []Block
}

type World struct {
	WorldParams
	Level
	Rand    Rand
	Player  Player
	Blocks  []Block
	Spawner Spawner
	Score   int64
	Status  Status
	Tick    int64

	// Events that happened during the last Step. Used by the GUI for effects,
	// sounds and logging. They are not part of the state of the World.
	JustExited    []Block
	JustEnded     bool
	JustRestarted bool
}

func NewWorld(seed int64, params WorldParams, level Level) (w World) {
	w.WorldParams = params
	w.Level = level
	w.Rand = NewRand(seed)
	w.StartSession()

	if level.CustomPlayerPos {
		w.Player.Pos = level.PlayerPos
		w.Player.Pos = w.Player.Bounds().ClampInside(w.ScreenBounds()).Min
	}
	w.Blocks = slices.Clone(level.StartBlocks)
	return
}

func NewWorldFromPlaythrough(p Playthrough) World {
	if p.SimulationVersion != SimulationVersion {
		Check(fmt.Errorf("can't replay this playthrough - we are at "+
			"SimulationVersion %d and playthrough was generated with "+
			"SimulationVersion %d", SimulationVersion, p.SimulationVersion))
	}
	return NewWorld(p.Seed, p.WorldParams, p.Level)
}

// StartSession resets everything except the random number generator, which
// keeps going so that a new session gets new blocks.
func (w *World) StartSession() {
	w.Player = NewPlayer(w.WorldParams)
	w.Blocks = w.Blocks[:0]
	w.Spawner = NewSpawner(w.SpawnInterval())
	w.Score = 0
	w.Status = Playing
}

func (w *World) Step(input PlayerInput) {
	w.Tick++
	w.JustExited = w.JustExited[:0]
	w.JustEnded = false
	w.JustRestarted = false

	if w.Status == GameOver {
		// Only a restart matters once the game is over. Movement and the
		// spawn timer are ignored.
		if input.Restart {
			w.StartSession()
			w.JustRestarted = true
		}
		return
	}

	w.Player.Move(input.Direction(), w.ScreenBounds())

	if w.Spawner.Advance(input.Elapsed) {
		w.Blocks = append(w.Blocks, NewBlock(&w.Rand, w.WorldParams))
	}

	for i := range w.Blocks {
		w.Blocks[i].Step()
	}

	w.RemoveExitedBlocks()
	w.CheckCollision()
}

// RemoveExitedBlocks filters out the blocks that fell below the screen and
// gives points for each of them.
func (w *World) RemoveExitedBlocks() {
	n := 0
	for i := range w.Blocks {
		if w.Blocks[i].Exited(w.ScreenHeight) {
			w.Score += w.PointsPerBlock
			w.JustExited = append(w.JustExited, w.Blocks[i])
			continue
		}
		w.Blocks[n] = w.Blocks[i]
		n++
	}
	w.Blocks = w.Blocks[:n]
}

// CheckCollision ends the game as soon as one block overlaps the player.
func (w *World) CheckCollision() {
	player := w.Player.Bounds()
	for i := range w.Blocks {
		if player.Intersects(w.Blocks[i].Bounds()) {
			w.Status = GameOver
			w.JustEnded = true
			return
		}
	}
}
