package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"slices"
	"time"
)

// frameClock measures the wall-clock time between consecutive calls to
// Update. Ebitengine calls Update at a steady TPS, but the World doesn't rely
// on it: the spawn timer only looks at the time that actually passed.
type frameClock struct {
	last time.Time
}

func (c *frameClock) Elapsed() (elapsed time.Duration) {
	now := time.Now()
	if !c.last.IsZero() {
		elapsed = now.Sub(c.last)
	}
	c.last = now
	return
}

func (g *Gui) Update() error {
	defer g.HandlePanic()

	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	// Escape quits from any state, before anything else happens this frame.
	if g.JustPressed(ebiten.KeyEscape) {
		g.state = Terminated
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	case Terminated:
		return ebiten.Termination
	default:
		panic("unhandled default case")
	}

	return nil
}

// StartPlaythrough starts a new recording and a new World for it.
func (g *Gui) StartPlaythrough() {
	var level Level
	if g.LoadScenario {
		scenario := LoadScenario(g.FSys, g.ScenarioFile)
		level = scenario.GetLevel(g.WorldParams)
	}
	g.playthrough = NewPlaythrough(g.WorldParams, level, time.Now().UnixNano())
	g.world = NewWorldFromPlaythrough(g.playthrough)
	g.visWorld = VisWorld{}
	g.frameIdx = 0
	InitializeIdInDbHttp(g.username, g.playthrough.ReleaseVersion,
		g.playthrough.SimulationVersion, g.playthrough.InputVersion,
		g.playthrough.Id)
	logger.Info("session started", "id", g.playthrough.Id,
		"scenario", g.LoadScenario)
}

func (g *Gui) UpdatePlayScreen() {
	// Config changes while the game runs are applied by starting over, so
	// that the recording never mixes two sets of rules.
	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		g.StartPlaythrough()
	}

	// Get the player input.
	var input PlayerInput
	input.Left = g.Pressed(ebiten.KeyArrowLeft) || g.Pressed(ebiten.KeyA)
	input.Right = g.Pressed(ebiten.KeyArrowRight) || g.Pressed(ebiten.KeyD)
	input.Restart = g.JustPressed(ebiten.KeySpace)
	input.Elapsed = g.clock.Elapsed()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	// Step the world.
	g.world.Step(input)
	g.visWorld.Step(&g.world)
	g.sounds.Step(&g.world)

	if g.world.JustEnded {
		logger.Info("game over", "score", g.world.Score, "tick", g.world.Tick)
		select {
		case g.uploadPlaythrough <- g.playthrough.Clone():
		default:
			logger.Warn("upload queue full, playthrough dropped",
				"id", g.playthrough.Id)
		}
	}
	if g.world.JustRestarted {
		logger.Info("session restarted", "tick", g.world.Tick)
	}

	// Finally increase the frame.
	g.frameIdx++
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) CursorPos() Pt {
	x, y := ebiten.CursorPosition()
	return Pt{int64(x), int64(y)}
}

func (g *Gui) JustClicked(button Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	return button.ContainsPt(g.ScreenToDebug(g.CursorPos()))
}

func (g *Gui) LeftClickPressedOn(button Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	return button.ContainsPt(g.ScreenToDebug(g.CursorPos()))
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	playButton, playBar := g.DebugControls()
	userRequestedPlaybackPause := g.JustPressed(ebiten.KeySpace) ||
		g.JustClicked(playButton)
	if userRequestedPlaybackPause {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(playBar) {
		// Get the distance between the start and the cursor on the play bar.
		dx := g.ScreenToDebug(g.CursorPos()).X - playBar.Min.X
		targetFrameIdx = dx * nFrames / playBar.Width()
	}

	if g.Pressed(ebiten.KeyArrowLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShift
	}

	if g.Pressed(ebiten.KeyArrowRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShift
	}

	if g.Pressed(ebiten.KeyArrowLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyArrowRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	targetFrameIdx = max(0, min(targetFrameIdx, nFrames-1))

	if targetFrameIdx != g.frameIdx {
		// Rewind and replay the world up to the target frame. The World has
		// no way to go backwards.
		g.world = NewWorldFromPlaythrough(g.playthrough)
		for i := int64(0); i < targetFrameIdx; i++ {
			g.world.Step(g.playthrough.History[i])
		}
		g.visWorld = VisWorld{}
		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused && g.frameIdx < nFrames-1 {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(&g.world)
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) ||
		g.JustPressed(ebiten.KeyArrowRight)
	if goToNextFrame && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}

	// Go to the previous frame.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) ||
		g.JustPressed(ebiten.KeyArrowLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.frameIdx--

		// I have no better way to go to the previous frame than redoing all
		// the frames from the beginning.
		g.world = NewWorldFromPlaythrough(g.playthrough)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}
}

// HandlePanic is deferred by every method Ebitengine calls. It logs what went
// wrong and where before letting the panic continue. If recording is on, the
// input that caused the panic is already on disk and can be replayed with
// StartState: DebugCrash.
func (g *Gui) HandlePanic() {
	if r := recover(); r != nil {
		logger.Error("panic", "err", r, "state", g.state, "frame", g.frameIdx,
			"playthrough", g.playthrough.Id, "recording", g.RecordingFile)
		panic(r)
	}
}
