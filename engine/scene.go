package engine

// Handle is an opaque reference to a visual entity owned by the Scene
// The simulation stores handles and hands them back, it never interprets them
type Handle uint64

// NoHandle is the zero Handle, never returned by a Scene
const NoHandle Handle = 0

// Style selects how a visual entity is drawn
type Style uint8

const (
	StyleHead Style = iota
	StyleBody
	StylePrize
)

func (s Style) String() string {
	switch s {
	case StyleHead:
		return "head"
	case StyleBody:
		return "body"
	case StylePrize:
		return "prize"
	default:
		return "unknown"
	}
}

// Scene is the rendering collaborator
// All calls happen on the simulation goroutine
type Scene interface {
	// Spawn creates a visual entity at pos and returns its handle
	Spawn(pos Position, style Style) Handle

	// Restyle changes the style of an existing entity
	Restyle(h Handle, style Style)

	// Despawn removes an entity; unknown handles are ignored
	Despawn(h Handle)

	// SetCaption replaces the on-screen caption text
	SetCaption(text string)
}
