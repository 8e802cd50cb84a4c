package breakout

// Effects are the post-processing flags a renderer applies to the whole frame.
type Effects struct {
	// Shake wobbles the frame briefly after a solid brick hit.
	Shake bool
	// Confuse inverts colors and flips the frame on both axes.
	Confuse bool
	// Chaos runs an edge filter and swirls the frame.
	Chaos bool

	shakeTime float32
}

// shake starts or extends the shake effect for d seconds.
func (e *Effects) shake(d float32) {
	e.Shake = true
	if d > e.shakeTime {
		e.shakeTime = d
	}
}

// update counts the shake timer down by dt.
func (e *Effects) update(dt float32) {
	if e.shakeTime <= 0 {
		return
	}
	e.shakeTime -= dt
	if e.shakeTime <= 0 {
		e.shakeTime = 0
		e.Shake = false
	}
}

// reset clears every effect.
func (e *Effects) reset() {
	*e = Effects{}
}
