package render

import (
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/engine"
)

// Grid dimensions in cells
const (
	GridCols = constants.PlayfieldWidth / constants.BlockSize  // 64
	GridRows = constants.PlayfieldHeight / constants.BlockSize // 36
)

// Each terminal row shows two grid rows with a half block glyph,
// so a grid cell is one column by half a row and looks square
const (
	// FieldRows is the playfield height in terminal rows
	FieldRows = GridRows / 2

	// FrameWidth and FrameHeight include the border
	FrameWidth  = GridCols + 2
	FrameHeight = FieldRows + 2
)

// CellOf maps a world position to grid column and row
// Column 0 is the left edge, row 0 is the top edge; ok is false outside the playfield
func CellOf(p engine.Position) (col, row int, ok bool) {
	col = floorDiv(p.X, constants.BlockSize) + GridCols/2
	row = GridRows/2 - floorDiv(p.Y, constants.BlockSize)
	ok = col >= 0 && col < GridCols && row >= 0 && row < GridRows
	return col, row, ok
}

// Layout positions the framed playfield inside a screen
type Layout struct {
	// FrameX, FrameY is the top-left border corner
	FrameX, FrameY int
}

// NewLayout centers the frame horizontally below the caption row
func NewLayout(screenWidth int) Layout {
	x := (screenWidth - FrameWidth) / 2
	if x < 0 {
		x = 0
	}
	return Layout{FrameX: x, FrameY: constants.PlayfieldTopRow}
}

// Screen returns the terminal cell for a grid cell and whether it is the upper half
func (l Layout) Screen(col, row int) (x, y int, upper bool) {
	return l.FrameX + 1 + col, l.FrameY + 1 + row/2, row%2 == 0
}

// StatusRow is the terminal row below the frame
func (l Layout) StatusRow() int {
	return l.FrameY + FrameHeight
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
