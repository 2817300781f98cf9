package main

import (
	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const FontSize = 28

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible.
	previousVal := CheckCrashes
	if g.FSys != FS(&embeddedFiles) {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		g.Config = Config{}
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	g.WorldParams = g.WorldParams.WithDefaults()
	Check(g.WorldParams.Validate())

	if g.devModeEnabled {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("config loaded", "config", g.Config)

	if g.defaultFont == nil {
		fontData, err := opentype.Parse(goregular.TTF)
		Check(err)

		g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
			Size:    FontSize,
			DPI:     72,
			Hinting: font.HintingVertical,
		})
		Check(err)
	}
}
