package input

import "github.com/lixenwraith/grid-snake/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, q, Ctrl+Q, Ctrl+C
	IntentRestart    // r
	IntentToggleMute // m, Ctrl+S
	IntentResize     // Terminal resize event

	// Gameplay
	IntentDirection // arrows, WASD
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentRestart:    "restart",
	IntentToggleMute: "toggle_mute",
	IntentResize:     "resize",
	IntentDirection:  "direction",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine state
type Intent struct {
	Type IntentType
	Key  engine.Key // Valid for IntentDirection
}
