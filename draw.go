package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"image/color"
)

var (
	LetterboxColor   = color.NRGBA{R: 8, G: 8, B: 14, A: 255}
	DebugAreaColor   = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	DebugButtonColor = color.NRGBA{R: 120, G: 120, B: 140, A: 255}
	DebugBarColor    = color.NRGBA{R: 90, G: 90, B: 100, A: 255}
	DebugCursorColor = color.NRGBA{R: 251, G: 150, B: 32, A: 255}
)

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw the game.
	screen.Fill(LetterboxColor)

	game := SubImage(screen, g.gameArea)
	g.DrawScene(game, BuildScene(&g.world, &g.visWorld))

	if g.enableDebugAreas {
		g.DrawDebugControls(SubImage(screen, g.debugArea))
	}
}

func (g *Gui) DrawScene(screen *ebiten.Image, s Scene) {
	screen.Fill(s.Background)
	DrawRect(screen, s.Player.Rect, s.Player.Color)
	for _, b := range s.Blocks {
		DrawRect(screen, b.Rect, b.Color)
	}
	for _, l := range s.Labels {
		DrawTextCentered(screen, g.defaultFont, l.Text, l.Center, l.Color)
	}
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	// Background of playback bar.
	screen.Fill(DebugAreaColor)

	// Play/pause button.
	playButton, playBar := g.DebugControls()
	DrawRect(screen, playButton, DebugButtonColor)
	symbol := "||"
	if g.playbackPaused || g.state == DebugCrash {
		symbol = ">"
	}
	DrawTextCentered(screen, g.defaultFont, symbol, playButton.Center(),
		color.White)

	// Play bar.
	DrawRect(screen, playBar, DebugBarColor)

	// Playback bar cursor.
	nFrames := max(int64(len(g.playthrough.History)), 1)
	cursorWidth := int64(6)
	cursorX := playBar.Min.X + g.frameIdx*playBar.Width()/nFrames -
		cursorWidth/2
	DrawRect(screen, NewRectangle(cursorX, 0, cursorWidth, DebugHeight),
		DebugCursorColor)
}
