package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/engine"
)

// Frame collects terminal events between two simulation steps
// Terminals report presses but not releases, so a key counts as pressed only in the frame it arrived
type Frame struct {
	table *KeyTable
	keys  engine.KeySet
}

var _ engine.InputSource = (*Frame)(nil)

// NewFrame creates a frame using the default key table
func NewFrame() *Frame {
	return &Frame{table: DefaultKeyTable()}
}

// HandleEvent records direction keys and returns the resulting intent
// Non-direction intents are returned for the caller and not stored
func (f *Frame) HandleEvent(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := f.table.Lookup(ev)
		if !ok {
			return Intent{}
		}
		if entry.Intent == IntentDirection {
			f.keys.Press(entry.Key)
		}
		return Intent{Type: entry.Intent, Key: entry.Key}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

// Reset forgets the keys of the previous frame
func (f *Frame) Reset() {
	f.keys.Clear()
}

func (f *Frame) JustPressed(k engine.Key) bool {
	return f.keys.JustPressed(k)
}

func (f *Frame) AnyPressed(keys ...engine.Key) bool {
	return f.keys.AnyPressed(keys...)
}
