package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"image/color"
)

// DrawRect fills r on screen.
// r is in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func DrawRect(screen *ebiten.Image, r Rectangle, clr color.Color) {
	origin := screen.Bounds().Min
	vector.DrawFilledRect(screen,
		float32(int64(origin.X)+r.Min.X),
		float32(int64(origin.Y)+r.Min.Y),
		float32(r.Width()),
		float32(r.Height()),
		clr, false)
}

// DrawTextCentered draws message so that the center of its bounds is at
// center, in the coordinate system of screen (see DrawRect).
func DrawTextCentered(screen *ebiten.Image, face font.Face, message string,
	center Pt, clr color.Color) {
	// The origin of the text is on its baseline, so most of the text is
	// drawn above y and a little bit under y. BoundString gives the bounds
	// relative to that origin.
	bounds := text.BoundString(face, message)
	origin := screen.Bounds().Min
	x := origin.X + int(center.X) - bounds.Min.X - bounds.Dx()/2
	y := origin.Y + int(center.Y) - bounds.Min.Y - bounds.Dy()/2
	text.Draw(screen, message, face, x, y, clr)
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the coordinate system of
// screen (see DrawRect).
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	// Do this because when dealing with sub-images in general I think in
	// relative coordinates. So for img2 = img1.SubImage(pt1, pt2) I now expect
	// that img2.At(0, 0) indicates the same pixel as img1.At(pt1). Ebitengine
	// doesn't do it like that. I still need to use img2.At(pt1) to indicate
	// pixel img1.At(pt1).
	imgRect := r.ToImageRectangle()
	minPt := screen.Bounds().Min
	imgRect.Min = imgRect.Min.Add(minPt)
	imgRect.Max = imgRect.Max.Add(minPt)
	return screen.SubImage(imgRect).(*ebiten.Image)
}
