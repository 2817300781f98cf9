package main

import (
	"bytes"
	"fmt"
	"github.com/google/uuid"
	"slices"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
// An executable can replay any playthrough with the same InputVersion
// and SimulationVersion as the ones in the executable.
const InputVersion = 1

// Playthrough represents all the input sent to a World during a run of the
// game. Given this input and a compatible simulation, the same game is
// played out again, frame by frame. A Playthrough spans every session of a
// run: restarts are inputs like any other.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	WorldParams
	Level
	Id      uuid.UUID
	Seed    int64
	History []PlayerInput
}

func NewPlaythrough(params WorldParams, level Level, seed int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = ReleaseVersion
	p.WorldParams = params
	p.Level = level
	p.Id = uuid.New()
	p.Seed = seed
	return
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	Serialize(buf, p.WorldParams)
	Serialize(buf, p.CustomPlayerPos)
	Serialize(buf, p.PlayerPos)
	SerializeSlice(buf, p.StartBlocks)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.StartBlocks = slices.Clone(p.StartBlocks)
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &p.InputVersion)
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"version %d",
			InputVersion, p.InputVersion))
		return
	}
	Deserialize(buf, &p.SimulationVersion)
	Deserialize(buf, &p.ReleaseVersion)
	Deserialize(buf, &p.WorldParams)
	Deserialize(buf, &p.CustomPlayerPos)
	Deserialize(buf, &p.PlayerPos)
	DeserializeSlice(buf, &p.StartBlocks)
	Deserialize(buf, &p.Id)
	Deserialize(buf, &p.Seed)
	DeserializeSlice(buf, &p.History)
	return
}
