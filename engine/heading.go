package engine

// Heading is the axis-aligned direction the snake travels
// The zero value is HeadingRight, the initial heading of every run
type Heading uint8

const (
	HeadingRight Heading = iota
	HeadingLeft
	HeadingUp
	HeadingDown
)

// String returns the heading name
func (h Heading) String() string {
	switch h {
	case HeadingRight:
		return "Right"
	case HeadingLeft:
		return "Left"
	case HeadingUp:
		return "Up"
	case HeadingDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Opposite returns the reverse heading
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingRight:
		return HeadingLeft
	case HeadingLeft:
		return HeadingRight
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	default:
		return h
	}
}

// Delta returns the unit step for the heading in world axes (Y grows up)
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingRight:
		return 1, 0
	case HeadingLeft:
		return -1, 0
	case HeadingUp:
		return 0, 1
	case HeadingDown:
		return 0, -1
	default:
		return 0, 0
	}
}

// Horizontal reports whether the heading lies on the X axis
func (h Heading) Horizontal() bool {
	return h == HeadingLeft || h == HeadingRight
}
