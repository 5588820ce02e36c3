package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/engine"
)

// Palette holds resolved terminal colors
type Palette struct {
	Head       tcell.Color
	Body       tcell.Color
	Prize      tcell.Color
	Background tcell.Color
	Border     tcell.Color
	Caption    tcell.Color
	Status     tcell.Color
}

// DefaultPalette converts the configured sRGB palette to terminal colors
func DefaultPalette() Palette {
	return Palette{
		Head:       RGB(constants.SnakeHeadColor),
		Body:       RGB(constants.SnakeBodyColor),
		Prize:      RGB(constants.PrizeColor),
		Background: RGB(constants.ClearColor),
		Border:     RGB(constants.BorderColor),
		Caption:    RGB(constants.CaptionColor),
		Status:     RGB(constants.StatusColor),
	}
}

// RGB converts sRGB float components (0-1) to a true-color tcell color
func RGB(c [3]float64) tcell.Color {
	r, g, b := colorful.Color{R: c[0], G: c[1], B: c[2]}.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ForStyle returns the fill color for an entity style
func (p Palette) ForStyle(style engine.Style) tcell.Color {
	switch style {
	case engine.StyleHead:
		return p.Head
	case engine.StyleBody:
		return p.Body
	case engine.StylePrize:
		return p.Prize
	default:
		return p.Background
	}
}
