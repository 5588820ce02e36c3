package render

import (
	"testing"

	"github.com/lixenwraith/grid-snake/engine"
)

func TestCellOf(t *testing.T) {
	tests := []struct {
		name     string
		pos      engine.Position
		col, row int
		ok       bool
	}{
		{"Origin", engine.Position{X: 0, Y: 0}, 32, 18, true},
		{"One block right", engine.Position{X: 20, Y: 0}, 33, 18, true},
		{"One block up", engine.Position{X: 0, Y: 20}, 32, 17, true},
		{"One block down", engine.Position{X: 0, Y: -20}, 32, 19, true},
		{"Max prize corner", engine.Position{X: 620, Y: 340}, 63, 1, true},
		{"Min prize corner", engine.Position{X: -620, Y: -340}, 1, 35, true},
		{"Left edge", engine.Position{X: -640, Y: 0}, 0, 18, true},
		{"Past right edge", engine.Position{X: 640, Y: 0}, 64, 18, false},
		{"Past bottom edge", engine.Position{X: 0, Y: -360}, 32, 36, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := CellOf(tt.pos)
			if col != tt.col || row != tt.row || ok != tt.ok {
				t.Errorf("Expected (%d,%d,%v), got (%d,%d,%v)", tt.col, tt.row, tt.ok, col, row, ok)
			}
		})
	}
}

func TestLayoutScreen(t *testing.T) {
	layout := NewLayout(80)
	if layout.FrameX != 7 || layout.FrameY != 1 {
		t.Fatalf("Unexpected layout %+v", layout)
	}

	x, y, upper := layout.Screen(32, 18)
	if x != 40 || y != 11 || !upper {
		t.Errorf("Expected (40,11,upper), got (%d,%d,%v)", x, y, upper)
	}
	x, y, upper = layout.Screen(32, 19)
	if x != 40 || y != 11 || upper {
		t.Errorf("Expected (40,11,lower), got (%d,%d,%v)", x, y, upper)
	}

	if layout.StatusRow() != 21 {
		t.Errorf("Expected status row 21, got %d", layout.StatusRow())
	}

	if narrow := NewLayout(20); narrow.FrameX != 0 {
		t.Errorf("Expected frame clamped to column 0, got %d", narrow.FrameX)
	}
}
