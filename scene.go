package main

import "image/color"

var (
	BackgroundColor   = color.NRGBA{R: 18, G: 18, B: 30, A: 255}
	PlayerColor       = color.NRGBA{R: 30, G: 200, B: 50, A: 255}
	BlockColor        = color.NRGBA{R: 200, G: 30, B: 30, A: 255}
	ScoreColor        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	GameOverColor     = color.NRGBA{R: 255, G: 200, B: 200, A: 255}
	InstructionsColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	PopupColor        = color.NRGBA{R: 255, G: 230, B: 120, A: 255}
)

const ScoreLabelY = 20

type FilledRect struct {
	Rect  Rectangle
	Color color.NRGBA
}

// Label is a line of text centered on Center.
type Label struct {
	Text   string
	Center Pt
	Color  color.NRGBA
}

// Scene is everything that must be drawn for one frame, in World coordinates.
// Building it doesn't touch any graphics, so what the player gets to see can
// be tested without a window.
type Scene struct {
	Background color.NRGBA
	Player     FilledRect
	Blocks     []FilledRect
	Labels     []Label
}

func BuildScene(w *World, v *VisWorld) (s Scene) {
	s.Background = BackgroundColor
	s.Player = FilledRect{w.Player.Bounds(), PlayerColor}
	s.Blocks = make([]FilledRect, 0, len(w.Blocks))
	for i := range w.Blocks {
		s.Blocks = append(s.Blocks, FilledRect{w.Blocks[i].Bounds(), BlockColor})
	}

	if v != nil {
		for _, p := range v.Popups {
			s.Labels = append(s.Labels, p.Label())
		}
	}

	centerX := w.ScreenWidth / 2
	s.Labels = append(s.Labels, Label{
		Text:   ScoreText(w.Score),
		Center: Pt{centerX, ScoreLabelY},
		Color:  ScoreColor,
	})
	if w.Status == GameOver {
		s.Labels = append(s.Labels,
			Label{
				Text:   "GAME OVER",
				Center: Pt{centerX, w.ScreenHeight/2 - 20},
				Color:  GameOverColor,
			},
			Label{
				Text:   "Press SPACE to restart or ESC to quit",
				Center: Pt{centerX, w.ScreenHeight/2 + 20},
				Color:  InstructionsColor,
			})
	}
	return
}
