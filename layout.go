package main

// Visual areas
// ------------
//
// - The game area: the space the World is aware of. It has the size of the
// World's screen (ScreenWidth x ScreenHeight) and World coordinates map 1:1
// to pixels in it.
// - The debug area: a bar under the game area with playback controls. It is
// only displayed during Playback and DebugCrash.
// - The screen: contains the game area, the debug area if it is displayed
// and any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

const DebugHeight = int64(40)

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	defer g.HandlePanic()

	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window.
	//
	// The way it works:
	// - I can return any size I want.
	// - In the Draw method, I will receive the screen bitmap, which will have
	// the size in pixels that I return here.
	// - The screen bitmap from Draw method will be scaled automatically by
	// ebitengine to fit inside the window.
	// - The scaling will preserve the aspect ratio of the screen bitmap.
	//
	// What I want:
	// - Cover the entire window with some background, even if the
	// interesting parts are only in some area in the center.
	// - Have a game area that I can reason about easily, no matter the
	// aspect ratio or the resolution of the user's screen.
	//
	// Solution:
	// - Compute screenWidth and screenHeight so that the aspect ratio of the
	// screen bitmap is the same as the aspect ratio of the game window.
	// - Compute screenWidth and screenHeight such that the game area (plus
	// the debug area) is as large as it can be, but still fits inside the
	// screen.
	gameWidth := g.ScreenWidth
	gameHeight := g.ScreenHeight
	if g.enableDebugAreas {
		gameHeight += DebugHeight
	}

	if outsideWidth <= 0 || outsideHeight <= 0 {
		// Minimized window. Any size will do.
		screenWidth, screenHeight = int(gameWidth), int(gameHeight)
	} else {
		// If the window is thinner than the game, the game fills the width
		// of the window and there is space left at the top and the bottom.
		screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
		gameAspectRatio := float64(gameWidth) / float64(gameHeight)
		if screenAspectRatio < gameAspectRatio {
			screenWidth = int(gameWidth)
			screenHeight = int(float64(screenWidth) / screenAspectRatio)
		} else {
			screenHeight = int(gameHeight)
			screenWidth = int(float64(screenHeight) * screenAspectRatio)
		}
	}

	// Define the game area relative to the total screen area.
	g.gameArea.Min.X = (int64(screenWidth) - gameWidth) / 2
	g.gameArea.Min.Y = (int64(screenHeight) - gameHeight) / 2
	g.gameArea.Max = g.gameArea.Min.Plus(Pt{g.ScreenWidth, g.ScreenHeight})

	// Define the debug area relative to the total screen area.
	g.debugArea = NewRectangle(
		g.gameArea.Min.X,
		g.gameArea.Max.Y,
		g.ScreenWidth,
		DebugHeight)
	return
}

// DebugControls returns the play/pause button and the play bar, relative to
// the debug area.
func (g *Gui) DebugControls() (playButton Rectangle, playBar Rectangle) {
	playButton = NewRectangle(0, 0, DebugHeight, DebugHeight)
	playBar = NewRectangle(DebugHeight+10, 0, g.ScreenWidth-DebugHeight-20,
		DebugHeight)
	return
}

func (g *Gui) ScreenToDebug(pt Pt) Pt {
	return pt.Minus(g.debugArea.Min)
}
