package main

import "github.com/gogpu/breakout"

// deadZone is how far, in pixels, the paddle center may trail its target
// before the autopilot moves.
const deadZone = 4

// autopilot plays the game headlessly: it starts from the menu, launches the
// ball and keeps the paddle under it, aiming slightly off center so the ball
// does not bounce straight up forever.
type autopilot struct {
	frame int
}

// input returns the keys to hold for the next frame of g.
func (a *autopilot) input(g *breakout.Game) breakout.Input {
	a.frame++
	switch g.State() {
	case breakout.StateMenu, breakout.StateWin:
		// Enter acts once per press, so tap it on alternate frames.
		if a.frame%2 == 0 {
			return breakout.Keys(breakout.KeyEnter)
		}
		return breakout.Input{}
	}

	ball := g.Ball()
	if ball.Stuck {
		return breakout.Keys(breakout.KeyLaunch)
	}

	paddle := g.Paddle()
	target := ball.Position.X + ball.Radius
	// Lead toward the side the ball is heading so hits land off center.
	if ball.Velocity.X >= 0 {
		target -= paddle.Size.X / 6
	} else {
		target += paddle.Size.X / 6
	}
	center := paddle.Position.X + paddle.Size.X/2

	switch {
	case target < center-deadZone:
		return breakout.Keys(breakout.KeyLeft)
	case target > center+deadZone:
		return breakout.Keys(breakout.KeyRight)
	default:
		return breakout.Input{}
	}
}
