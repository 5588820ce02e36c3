package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/status"
)

type sceneEntity struct {
	pos   engine.Position
	style engine.Style
}

// TerminalScene implements engine.Scene on a tcell screen
// Entities are kept by handle and composed into a cell grid on every Draw
type TerminalScene struct {
	screen  tcell.Screen
	palette Palette
	status  *status.Registry

	next     engine.Handle
	entities map[engine.Handle]sceneEntity
	caption  string

	// Hint is appended to the status line (key help, audio state)
	Hint string
}

// NewTerminalScene creates a scene drawing onto screen
// reg may be nil to hide the metrics line
func NewTerminalScene(screen tcell.Screen, reg *status.Registry) *TerminalScene {
	return &TerminalScene{
		screen:   screen,
		palette:  DefaultPalette(),
		status:   reg,
		entities: make(map[engine.Handle]sceneEntity),
	}
}

func (s *TerminalScene) Spawn(pos engine.Position, style engine.Style) engine.Handle {
	s.next++
	s.entities[s.next] = sceneEntity{pos: pos, style: style}
	return s.next
}

func (s *TerminalScene) Restyle(h engine.Handle, style engine.Style) {
	if e, ok := s.entities[h]; ok {
		e.style = style
		s.entities[h] = e
	}
}

func (s *TerminalScene) Despawn(h engine.Handle) {
	delete(s.entities, h)
}

func (s *TerminalScene) SetCaption(text string) {
	s.caption = text
}

// Len returns the number of live entities
func (s *TerminalScene) Len() int {
	return len(s.entities)
}

// Draw renders the full frame and shows it
func (s *TerminalScene) Draw() {
	width, _ := s.screen.Size()
	layout := NewLayout(width)
	base := tcell.StyleDefault.Background(s.palette.Background)

	s.screen.Fill(' ', base)

	s.drawText(layout.FrameX, constants.CaptionRow, s.caption, base.Foreground(s.palette.Caption).Bold(true))
	s.drawBorder(layout, base.Foreground(s.palette.Border))
	s.drawField(layout)
	s.drawStatus(layout, base.Foreground(s.palette.Status))

	s.screen.Show()
}

// compose resolves the style of every grid cell; prizes over heads over bodies
func (s *TerminalScene) compose() [GridRows][GridCols]engine.Style {
	var grid [GridRows][GridCols]engine.Style
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = styleEmpty
		}
	}

	for _, e := range s.entities {
		col, row, ok := CellOf(e.pos)
		if !ok {
			continue
		}
		if layer(grid[row][col]) < layer(e.style) {
			grid[row][col] = e.style
		}
	}
	return grid
}

// styleEmpty marks a cell with no entity, drawn with the background color
const styleEmpty engine.Style = 255

func layer(style engine.Style) int {
	switch style {
	case engine.StylePrize:
		return 3
	case engine.StyleHead:
		return 2
	case engine.StyleBody:
		return 1
	default:
		return 0
	}
}

func (s *TerminalScene) drawField(layout Layout) {
	grid := s.compose()

	for row := 0; row < GridRows; row += 2 {
		for col := 0; col < GridCols; col++ {
			x, y, _ := layout.Screen(col, row)
			top := s.palette.ForStyle(grid[row][col])
			bottom := s.palette.ForStyle(grid[row+1][col])
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.screen.SetContent(x, y, '▀', nil, style)
		}
	}
}

func (s *TerminalScene) drawBorder(layout Layout, style tcell.Style) {
	x0, y0 := layout.FrameX, layout.FrameY
	x1, y1 := x0+FrameWidth-1, y0+FrameHeight-1

	for x := x0 + 1; x < x1; x++ {
		s.screen.SetContent(x, y0, '─', nil, style)
		s.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.screen.SetContent(x0, y, '│', nil, style)
		s.screen.SetContent(x1, y, '│', nil, style)
	}
	s.screen.SetContent(x0, y0, '┌', nil, style)
	s.screen.SetContent(x1, y0, '┐', nil, style)
	s.screen.SetContent(x0, y1, '└', nil, style)
	s.screen.SetContent(x1, y1, '┘', nil, style)
}

func (s *TerminalScene) drawStatus(layout Layout, style tcell.Style) {
	line := s.Hint
	if s.status != nil {
		line = fmt.Sprintf("tick %d  frame %d  eaten %d  spawned %d  %s",
			s.status.Int(status.KeyTicks),
			s.status.Int(status.KeyFrames),
			s.status.Int(status.KeyPrizeEaten),
			s.status.Int(status.KeyPrizeSpawned),
			s.Hint,
		)
	}
	s.drawText(layout.FrameX, layout.StatusRow(), line, style)
}

func (s *TerminalScene) drawText(x, y int, text string, style tcell.Style) {
	width, height := s.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, ch := range text {
		if x >= width {
			return
		}
		s.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
