package main

import "fmt"

// Scenario is a hand-written starting position for the World, loaded from a
// YAML file. It is used to reproduce specific situations while developing and
// in tests.
type Scenario struct {
	Player *ScenarioPlayer  `yaml:"Player"`
	Blocks []ScenarioBlock `yaml:"Blocks"`
}

type ScenarioPlayer struct {
	X int64 `yaml:"X"`
}

type ScenarioBlock struct {
	X      int64 `yaml:"X"`
	Y      int64 `yaml:"Y"`
	Width  int64 `yaml:"Width"`
	Height int64 `yaml:"Height"`
	Speed  int64 `yaml:"Speed"`
}

func LoadScenario(fsys FS, filename string) (s Scenario) {
	LoadYAML(fsys, filename, &s)
	return
}

// GetLevel converts the scenario to a Level. Blocks are not required to
// respect the random size and speed intervals, but they must have a positive
// size and must fall.
func (s *Scenario) GetLevel(p WorldParams) (l Level) {
	if s.Player != nil {
		l.CustomPlayerPos = true
		l.PlayerPos = NewPlayer(p).Pos
		l.PlayerPos.X = s.Player.X
	}
	for i, b := range s.Blocks {
		if b.Width <= 0 || b.Height <= 0 || b.Speed <= 0 {
			Check(fmt.Errorf("invalid block %d in scenario: %+v", i, b))
			continue
		}
		l.StartBlocks = append(l.StartBlocks, Block{
			Pos:   Pt{b.X, b.Y},
			Size:  Pt{b.Width, b.Height},
			Speed: b.Speed,
		})
	}
	return
}
