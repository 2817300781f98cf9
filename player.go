package main

type Player struct {
	Pos   Pt
	Size  Pt
	Speed int64
}

// NewPlayer places the player at the bottom center of the screen.
func NewPlayer(p WorldParams) (pl Player) {
	pl.Size = Pt{p.PlayerSize, p.PlayerSize}
	pl.Pos.X = (p.ScreenWidth - p.PlayerSize) / 2
	pl.Pos.Y = p.ScreenHeight - p.PlayerSize - p.PlayerBottomMargin
	pl.Speed = p.PlayerSpeed
	return
}

func (pl *Player) Bounds() Rectangle {
	return Rectangle{pl.Pos, pl.Pos.Plus(pl.Size)}
}

// Move shifts the player horizontally by dir * Speed, dir being -1, 0 or 1,
// and keeps the player entirely inside arena.
func (pl *Player) Move(dir int64, arena Rectangle) {
	Assert(dir >= -1 && dir <= 1)
	pl.Pos.X += dir * pl.Speed
	pl.Pos = pl.Bounds().ClampInside(arena).Min
}
