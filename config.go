package main

import (
	"fmt"
	"time"
)

// WorldParams are the numbers that define the rules of the World. They are
// part of the Playthrough, so a recording made with a tweaked config replays
// under the same rules it was recorded with.
type WorldParams struct {
	ScreenWidth        int64 `yaml:"ScreenWidth"`
	ScreenHeight       int64 `yaml:"ScreenHeight"`
	PlayerSize         int64 `yaml:"PlayerSize"`
	PlayerSpeed        int64 `yaml:"PlayerSpeed"`
	PlayerBottomMargin int64 `yaml:"PlayerBottomMargin"`
	BlockMinSize       int64 `yaml:"BlockMinSize"`
	BlockMaxSize       int64 `yaml:"BlockMaxSize"`
	BlockMinSpeed      int64 `yaml:"BlockMinSpeed"`
	BlockMaxSpeed      int64 `yaml:"BlockMaxSpeed"`
	SpawnIntervalMs    int64 `yaml:"SpawnIntervalMs"`
	PointsPerBlock     int64 `yaml:"PointsPerBlock"`
}

type Config struct {
	WorldParams   `yaml:",inline"`
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LoadScenario  bool   `yaml:"LoadScenario"`
	ScenarioFile  string `yaml:"ScenarioFile"`
	SoundEnabled  bool   `yaml:"SoundEnabled"`
}

func DefaultWorldParams() WorldParams {
	return WorldParams{
		ScreenWidth:        640,
		ScreenHeight:       480,
		PlayerSize:         50,
		PlayerSpeed:        6,
		PlayerBottomMargin: 10,
		BlockMinSize:       20,
		BlockMaxSize:       60,
		BlockMinSpeed:      3,
		BlockMaxSpeed:      8,
		SpawnIntervalMs:    700,
		PointsPerBlock:     10,
	}
}

// WithDefaults fills in every field left at zero by the config file.
func (p WorldParams) WithDefaults() WorldParams {
	d := DefaultWorldParams()
	fill := func(v *int64, def int64) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&p.ScreenWidth, d.ScreenWidth)
	fill(&p.ScreenHeight, d.ScreenHeight)
	fill(&p.PlayerSize, d.PlayerSize)
	fill(&p.PlayerSpeed, d.PlayerSpeed)
	fill(&p.PlayerBottomMargin, d.PlayerBottomMargin)
	fill(&p.BlockMinSize, d.BlockMinSize)
	fill(&p.BlockMaxSize, d.BlockMaxSize)
	fill(&p.BlockMinSpeed, d.BlockMinSpeed)
	fill(&p.BlockMaxSpeed, d.BlockMaxSpeed)
	fill(&p.SpawnIntervalMs, d.SpawnIntervalMs)
	fill(&p.PointsPerBlock, d.PointsPerBlock)
	return p
}

func (p WorldParams) Validate() error {
	if p.ScreenWidth <= 0 || p.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", p.ScreenWidth,
			p.ScreenHeight)
	}
	if p.PlayerSize <= 0 || p.PlayerSize > p.ScreenWidth ||
		p.PlayerSize+p.PlayerBottomMargin > p.ScreenHeight {
		return fmt.Errorf("player of size %d does not fit on a %dx%d screen",
			p.PlayerSize, p.ScreenWidth, p.ScreenHeight)
	}
	if p.BlockMinSize <= 0 || p.BlockMinSize > p.BlockMaxSize ||
		p.BlockMaxSize > p.ScreenWidth {
		return fmt.Errorf("invalid block size interval [%d, %d]",
			p.BlockMinSize, p.BlockMaxSize)
	}
	if p.BlockMinSpeed <= 0 || p.BlockMinSpeed > p.BlockMaxSpeed {
		return fmt.Errorf("invalid block speed interval [%d, %d]",
			p.BlockMinSpeed, p.BlockMaxSpeed)
	}
	if p.SpawnIntervalMs <= 0 {
		return fmt.Errorf("invalid spawn interval %d ms", p.SpawnIntervalMs)
	}
	return nil
}

func (p WorldParams) ScreenBounds() Rectangle {
	return NewRectangle(0, 0, p.ScreenWidth, p.ScreenHeight)
}

func (p WorldParams) SpawnInterval() time.Duration {
	return time.Duration(p.SpawnIntervalMs) * time.Millisecond
}
