package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/engine"
)

// KeyEntry describes a key's meaning without function pointers
type KeyEntry struct {
	Intent IntentType
	Key    engine.Key
}

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},
			tcell.KeyLeft:   {IntentDirection, engine.KeyLeft},
			tcell.KeyRight:  {IntentDirection, engine.KeyRight},
			tcell.KeyUp:     {IntentDirection, engine.KeyUp},
			tcell.KeyDown:   {IntentDirection, engine.KeyDown},
		},

		Runes: map[rune]KeyEntry{
			'a': {IntentDirection, engine.KeyLeft},
			'd': {IntentDirection, engine.KeyRight},
			'w': {IntentDirection, engine.KeyUp},
			's': {IntentDirection, engine.KeyDown},
			'q': {Intent: IntentQuit},
			'r': {Intent: IntentRestart},
			'm': {Intent: IntentToggleMute},
		},
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		entry, ok := kt.Runes[r]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
