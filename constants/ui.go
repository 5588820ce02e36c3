package constants

// Palette in sRGB float components, converted to terminal colors by the render package
var (
	SnakeHeadColor = [3]float64{0.26, 0.68, 0.45}
	SnakeBodyColor = [3]float64{0.26, 0.46, 0.69}
	PrizeColor     = [3]float64{1.0, 0.2, 0.4}
	ClearColor     = [3]float64{0.1, 0.1, 0.1}
	BorderColor    = [3]float64{0.45, 0.45, 0.5}
	CaptionColor   = [3]float64{0.95, 0.95, 0.95}
	StatusColor    = [3]float64{0.6, 0.6, 0.65}
)

// Glyphs
const (
	SegmentChar = '█'
	PrizeChar   = '●'
)

// HUD layout
const (
	// CaptionRow is the terminal row of the score caption
	CaptionRow = 0

	// PlayfieldTopRow is the terminal row of the playfield's top border
	PlayfieldTopRow = 1
)
