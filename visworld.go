package main

import "fmt"

// PopupNFrames is how long a score popup stays on screen.
const PopupNFrames = 45

func ScoreText(score int64) string {
	return fmt.Sprintf("Score: %d", score)
}

// Popup is a "+10" that appears where a block left the screen, floats up and
// fades out. It doesn't represent an entity in the World, it is a standalone
// effect.
type Popup struct {
	Pos         Pt
	Text        string
	NFramesLeft int64
}

func (p *Popup) Label() Label {
	c := PopupColor
	c.A = uint8(int64(c.A) * p.NFramesLeft / PopupNFrames)
	return Label{Text: p.Text, Center: p.Pos, Color: c}
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to store data and execute logic for ongoing visual effects.
// Draw() relies on the information in VisWorld to draw things, just like it
// relies on World.
//
// VisWorld runs parallel to World and is meant to be updated alongside World,
// in the Update() function, right after World.Step().
type VisWorld struct {
	Popups []*Popup
}

func (v *VisWorld) Step(w *World) {
	if w.JustRestarted {
		v.Popups = v.Popups[:0]
		return
	}

	// Step existing popups.
	for _, p := range v.Popups {
		p.NFramesLeft--
		p.Pos.Y--
	}

	// Filter out obsolete popups.
	n := 0
	for i := range v.Popups {
		if v.Popups[i].NFramesLeft > 0 {
			v.Popups[n] = v.Popups[i]
			n++
		}
	}
	v.Popups = v.Popups[:n]

	// Create new popups where blocks left the screen.
	for _, b := range w.JustExited {
		popup := Popup{}
		popup.Pos = Pt{b.Bounds().Center().X, w.ScreenHeight - 15}
		popup.Text = fmt.Sprintf("+%d", w.PointsPerBlock)
		popup.NFramesLeft = PopupNFrames
		v.Popups = append(v.Popups, &popup)
	}
}
