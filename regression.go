package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes
// they are considered "the same", even though they may be implemented
// differently.
// The state is what the player can see or what decides what the player will
// see next: the status, the score, the player, the blocks and the spawn timer.
// The events of the last frame (JustExited etc.) are left out, they are
// derived from the state.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, w.Tick)
	Serialize(buf, w.Status)
	Serialize(buf, w.Score)
	Serialize(buf, w.Player)
	Serialize(buf, w.Spawner)
	SerializeSlice(buf, w.Blocks)
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough.
// - If the RegressionId hasn't changed, the refactoring of World did not alter
// the playthrough.
// - If the RegressionId has changed, something in the refactoring is now
// causing the play experience to be different.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(*p)
	hash.Write(w.StateBytes())

	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
