package main

type Pt struct {
	X int64
	Y int64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) DivBy(divide int64) Pt {
	return Pt{p.X / divide, p.Y / divide}
}
