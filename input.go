package breakout

// Key is a logical game key. Hosts map their physical keys onto these.
type Key uint8

// Game keys.
const (
	KeyLeft Key = iota
	KeyRight
	KeyLaunch
	KeyEnter
	// KeyNext and KeyPrev cycle the menu level selection.
	KeyNext
	KeyPrev

	numKeys
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyLaunch:
		return "Launch"
	case KeyEnter:
		return "Enter"
	case KeyNext:
		return "Next"
	case KeyPrev:
		return "Prev"
	default:
		return "Key(?)"
	}
}

// Input is a snapshot of which keys are held for one frame. It is owned by
// the caller and passed to Game.ProcessInput; the zero value has no keys down.
type Input struct {
	down [numKeys]bool
}

// Press marks k as held.
func (in *Input) Press(k Key) {
	if k < numKeys {
		in.down[k] = true
	}
}

// Release marks k as not held.
func (in *Input) Release(k Key) {
	if k < numKeys {
		in.down[k] = false
	}
}

// Set marks k as held or released.
func (in *Input) Set(k Key, down bool) {
	if down {
		in.Press(k)
	} else {
		in.Release(k)
	}
}

// Down reports whether k is held.
func (in Input) Down(k Key) bool {
	return k < numKeys && in.down[k]
}

// Keys builds an Input with the given keys held.
func Keys(keys ...Key) Input {
	var in Input
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

// keyLatch remembers which one-shot keys have already been acted on so a
// held key triggers once until it is released.
type keyLatch [numKeys]bool

// pressed reports a fresh press of k and latches it.
func (l *keyLatch) pressed(in Input, k Key) bool {
	if !in.Down(k) || l[k] {
		return false
	}
	l[k] = true
	return true
}

// release clears the latch of every key not held in in.
func (l *keyLatch) release(in Input) {
	for k := range l {
		if !in.Down(Key(k)) {
			l[k] = false
		}
	}
}
