package breakout

import "math/rand/v2"

// PowerUpType identifies a power-up and its effect.
type PowerUpType uint8

// Power-up types. Speed, Sticky, PassThrough and PadSizeIncrease help the
// player; Confuse and Chaos hinder.
const (
	Speed PowerUpType = iota
	Sticky
	PassThrough
	PadSizeIncrease
	Confuse
	Chaos
)

// powerUpSpec holds the static properties of a power-up type.
type powerUpSpec struct {
	name     string
	color    Color
	duration float32 // seconds; 0 for one-shot effects
	bad      bool
}

var powerUpSpecs = [...]powerUpSpec{
	Speed:           {"speed", RGB(0.5, 0.5, 1.0), 0, false},
	Sticky:          {"sticky", RGB(1.0, 0.5, 1.0), 20, false},
	PassThrough:     {"pass-through", RGB(0.5, 1.0, 0.5), 10, false},
	PadSizeIncrease: {"pad-size-increase", RGB(1.0, 0.6, 0.4), 0, false},
	Confuse:         {"confuse", RGB(1.0, 0.3, 0.3), 15, true},
	Chaos:           {"chaos", RGB(0.9, 0.25, 0.25), 15, true},
}

// String returns the power-up name.
func (t PowerUpType) String() string {
	if int(t) < len(powerUpSpecs) {
		return powerUpSpecs[t].name
	}
	return "PowerUpType(?)"
}

// Sprite returns the texture name of the power-up.
func (t PowerUpType) Sprite() string {
	return "powerup_" + t.String()
}

// Duration returns how long the effect lasts once activated, in seconds.
func (t PowerUpType) Duration() float32 {
	return powerUpSpecs[t].duration
}

// Color returns the power-up tint.
func (t PowerUpType) Color() Color {
	return powerUpSpecs[t].color
}

// PowerUp falls from a destroyed brick and takes effect when caught by the paddle.
type PowerUp struct {
	Object

	Type PowerUpType
	// Duration is the remaining effect time once Activated.
	Duration  float32
	Activated bool
}

// NewPowerUp returns a power-up of type t at pos, falling with velocity.
func NewPowerUp(t PowerUpType, pos, size, velocity Vec2) *PowerUp {
	p := &PowerUp{
		Object:   NewObject(pos, size, t.Sprite()),
		Type:     t,
		Duration: t.Duration(),
	}
	p.Color = t.Color()
	p.Velocity = velocity
	return p
}

// spawnPowerUps rolls every power-up type for a brick destroyed at pos.
// Each type drops independently, so one brick can release several.
func spawnPowerUps(rng *rand.Rand, cfg *Config, pos Vec2) []*PowerUp {
	var out []*PowerUp
	for t := range powerUpSpecs {
		chance := cfg.GoodChance
		if powerUpSpecs[t].bad {
			chance = cfg.BadChance
		}
		if chance <= 0 || rng.IntN(chance) != 0 {
			continue
		}
		out = append(out, NewPowerUp(PowerUpType(t), pos, cfg.PowerUpSize(), V2(0, cfg.PowerUpVelocity)))
	}
	return out
}

// isOtherPowerUpActive reports whether a power-up of type t other than the
// expiring one is still active.
func isOtherPowerUpActive(powerUps []*PowerUp, t PowerUpType) bool {
	for _, p := range powerUps {
		if p.Activated && p.Type == t {
			return true
		}
	}
	return false
}
