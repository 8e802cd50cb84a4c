// Package breakout implements the rules of a Breakout-style arcade game.
//
// # Overview
//
// The package owns game state and physics only. Drawing, asset loading and
// audio are collaborators behind small interfaces ([SpriteRenderer],
// [TextRenderer], [Resources], [SoundPlayer]); the render, resource and audio
// packages provide implementations built on gogpu/gg and faiface/beep.
//
// # Quick Start
//
//	cfg := breakout.DefaultConfig()
//	g := breakout.New(cfg)
//	if err := g.Init(); err != nil {
//	    log.Printf("some levels failed to load: %v", err)
//	}
//
//	for frame := range frames {
//	    g.ProcessInput(dt, frame.Input)
//	    g.Update(dt)
//	    g.Draw(sprites, text, resources)
//	}
//
// # Coordinate System
//
// Screen coordinates, as in gg:
//   - Origin (0,0) at top-left of the field
//   - X increases right
//   - Y increases down
//   - Object positions are top-left corners, including the ball's
//
// # Levels
//
// A level file is a plain-text grid, one row per line, cells separated by
// whitespace. 0 is empty, 1 a solid brick, 2 and above a destructible brick
// whose value picks its tint. The grid is stretched over the top half of the
// field.
//
// # Concurrency
//
// A [Game] is not safe for concurrent use. Every method runs to completion on
// the calling goroutine; hosts drive it from a single frame loop.
package breakout

// Version is the current version of the module.
const Version = "0.3.0"
