package engine

// Key is a logical direction key, decoupled from the terminal key codes
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	keyCount
)

// DirectionKeys lists direction keys in resolution priority order
var DirectionKeys = [...]Key{KeyLeft, KeyRight, KeyUp, KeyDown}

// Heading returns the heading requested by the key
func (k Key) Heading() Heading {
	switch k {
	case KeyLeft:
		return HeadingLeft
	case KeyUp:
		return HeadingUp
	case KeyDown:
		return HeadingDown
	default:
		return HeadingRight
	}
}

func (k Key) String() string {
	return k.Heading().String()
}

// InputSource exposes the keys seen during the current frame
// The simulation only reads it
type InputSource interface {
	// JustPressed reports whether k went down during this frame
	JustPressed(k Key) bool

	// AnyPressed reports whether any of keys is currently held
	AnyPressed(keys ...Key) bool
}

// KeySet is a fixed-size InputSource where pressed and just-pressed coincide
// Used by tests and by frontends that cannot observe key releases
type KeySet [keyCount]bool

// NewKeySet returns a KeySet with keys pressed
func NewKeySet(keys ...Key) *KeySet {
	var ks KeySet
	for _, k := range keys {
		ks.Press(k)
	}
	return &ks
}

// Press marks k as pressed
func (ks *KeySet) Press(k Key) {
	if k < keyCount {
		ks[k] = true
	}
}

// Clear releases all keys
func (ks *KeySet) Clear() {
	*ks = KeySet{}
}

// Empty reports whether no key is pressed
func (ks *KeySet) Empty() bool {
	for _, down := range ks {
		if down {
			return false
		}
	}
	return true
}

func (ks *KeySet) JustPressed(k Key) bool {
	return k < keyCount && ks[k]
}

func (ks *KeySet) AnyPressed(keys ...Key) bool {
	for _, k := range keys {
		if ks.JustPressed(k) {
			return true
		}
	}
	return false
}
