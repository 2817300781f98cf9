package main

import "image"

// Rectangle is an axis-aligned box. Min is the top-left corner and Max is the
// bottom-right corner, so a rectangle at (x, y) with size (w, h) covers
// [x, x+w) on X and [y, y+h) on Y.
type Rectangle struct {
	Min Pt
	Max Pt
}

// NewRectangle builds a rectangle from a position and a size, the way entities
// in the World describe themselves.
func NewRectangle(x, y, width, height int64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func (r Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Size() Pt {
	return Pt{r.Width(), r.Height()}
}

func (r Rectangle) Center() Pt {
	return r.Min.Plus(r.Size().DivBy(2))
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Intersects is true only if the two rectangles share some area. Rectangles
// that merely touch along an edge or a corner do not intersect.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}

// ClampInside moves r, without resizing it, so that it lies inside bounds.
// If r is larger than bounds on some axis, it is aligned with the top or left
// edge of bounds on that axis.
func (r Rectangle) ClampInside(bounds Rectangle) Rectangle {
	size := r.Size()
	pos := r.Min
	pos.X = max(bounds.Min.X, min(pos.X, bounds.Max.X-size.X))
	pos.Y = max(bounds.Min.Y, min(pos.Y, bounds.Max.Y-size.Y))
	return Rectangle{pos, pos.Plus(size)}
}

func (r Rectangle) ToImageRectangle() image.Rectangle {
	return image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
}
