package breakout

import "math/rand/v2"

// Option configures a Game during creation.
//
// Example:
//
//	g := breakout.New(cfg,
//	    breakout.WithSound(engine),
//	    breakout.WithRand(rand.New(rand.NewPCG(1, 2))),
//	)
type Option func(*gameOptions)

// gameOptions holds optional collaborators for Game creation.
type gameOptions struct {
	sound SoundPlayer
	rng   *rand.Rand
}

// defaultOptions returns silent sound and a time-seeded random source.
func defaultOptions() gameOptions {
	return gameOptions{
		sound: nopSound{},
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// WithSound sets the player used for sound effects and music.
func WithSound(s SoundPlayer) Option {
	return func(o *gameOptions) {
		if s != nil {
			o.sound = s
		}
	}
}

// WithRand sets the random source for power-up drops and particle jitter.
// Tests pass a fixed seed to make sessions reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *gameOptions) {
		if rng != nil {
			o.rng = rng
		}
	}
}
