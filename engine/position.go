package engine

import "fmt"

// Position is a grid position in world units, always a multiple of the block size
type Position struct {
	X, Y int
}

// Add returns the position offset by dx, dy
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring cell one block away along heading
func (p Position) Step(h Heading, blockSize int) Position {
	dx, dy := h.Delta()
	return p.Add(dx*blockSize, dy*blockSize)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
