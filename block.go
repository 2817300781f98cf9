package main

// Block is a falling obstacle. Only Pos.Y changes after a block is created.
type Block struct {
	Pos   Pt
	Size  Pt
	Speed int64
}

// NewBlock creates a block just above the top edge of the screen, with a
// random size, speed and horizontal position such that the block is fully
// inside the screen horizontally.
// The order in which random numbers are drawn is part of the simulation.
// Changing it changes what every recorded Playthrough looks like.
func NewBlock(r *Rand, p WorldParams) (b Block) {
	b.Size.X = r.RInt(p.BlockMinSize, p.BlockMaxSize)
	b.Size.Y = r.RInt(p.BlockMinSize, p.BlockMaxSize)
	b.Pos.X = r.RInt(0, p.ScreenWidth-b.Size.X)
	b.Pos.Y = -b.Size.Y
	b.Speed = r.RInt(p.BlockMinSpeed, p.BlockMaxSpeed)
	return
}

func (b *Block) Step() {
	b.Pos.Y += b.Speed
}

func (b *Block) Bounds() Rectangle {
	return Rectangle{b.Pos, b.Pos.Plus(b.Size)}
}

// Exited is true once the top of the block is below the bottom of the screen.
// A block whose top is exactly on the bottom edge is still on screen.
func (b *Block) Exited(screenHeight int64) bool {
	return b.Pos.Y > screenHeight
}
