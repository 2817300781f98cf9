package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"os"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play. It is meant as a unique label for the functionality that a
// player is presented with.
// ReleaseVersion must change when SimulationVersion or InputVersion change.
// It also changes when nothing in the simulation changed but the executable
// did: sounds, graphics, asserts enabled or disabled, uploads enabled or
// disabled.
const ReleaseVersion = 1

const WindowTitle = "Dodge the Falling Blocks"
const TPS = 60

//go:embed data/*
var embeddedFiles embed.FS

// GameState is the state of the application, around the World. While the
// state is PlayScreen the World has its own state (Playing or GameOver).
// Terminated is final: the next Update ends the game loop.
type GameState int64

const (
	PlayScreen GameState = iota
	Playback
	DebugCrash
	Terminated
)

// Gui is the context object of the whole program. It is created once in
// main() and owns the window-side resources (font, sounds) together with the
// World it displays.
type Gui struct {
	Config
	world             World
	visWorld          VisWorld
	sounds            *Sounds
	FSys              FS
	folderWatcher     FolderWatcher
	defaultFont       font.Face
	playthrough       Playthrough
	frameIdx          int64
	state             GameState
	clock             frameClock
	pressedKeys       []ebiten.Key
	justPressedKeys   []ebiten.Key
	FrameSkipShift    int64
	FrameSkipArrow    int64
	playbackPaused    bool
	enableDebugAreas  bool
	gameArea          Rectangle
	debugArea         Rectangle
	username          string
	uploadPlaythrough chan *Playthrough
	devModeEnabled    bool
}

func main() {
	var g Gui
	g.username = getUsername()
	g.FrameSkipShift = 10
	g.FrameSkipArrow = 1
	// A channel size of 10 means the channel will buffer 10 playthroughs
	// before it is full and it blocks. Sessions last at least several
	// seconds, so the uploader has plenty of time to keep up.
	g.uploadPlaythrough = make(chan *Playthrough, 10)
	go UploadPlaythroughs(g.username, g.uploadPlaythrough)

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher with the current timestamps of files, so
		// that the first check doesn't report a change and restart the
		// game for nothing.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.enableDebugAreas = true
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
		g.world = NewWorldFromPlaythrough(g.playthrough)
	case "DebugCrash":
		g.state = DebugCrash
		g.enableDebugAreas = true
		// Don't crash when we are debugging the crash. This is useful if the
		// crash was caused by one of my asserts:
		// - world.Step() crashed during the last frame
		// - Now Check() doesn't crash anymore.
		// - I can have the world.Step() with the bug execute, and I can see
		// the results visually
		CheckCrashes = false
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
		g.world = NewWorldFromPlaythrough(g.playthrough)
		// The last input caused the crash, so run the whole playthrough
		// except the last input. This gives me a chance to see the current
		// state of the world and then trigger the bug when I'm ready.
		g.frameIdx = max(int64(len(g.playthrough.History))-1, 0)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	case "Play", "":
		g.state = PlayScreen
		if g.SoundEnabled {
			g.sounds = NewSounds()
		}
		g.StartPlaythrough()
	default:
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	ebiten.SetWindowSize(int(g.ScreenWidth), int(g.ScreenHeight))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(TPS)

	logger.Info("starting", "release", ReleaseVersion, "state", g.StartState,
		"screen", fmt.Sprintf("%dx%d", g.ScreenWidth, g.ScreenHeight))
	if err := ebiten.RunGame(&g); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}
	logger.Info("quit", "frames", g.frameIdx)
}
