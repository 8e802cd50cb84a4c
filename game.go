package breakout

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"

	"github.com/chewxy/math32"
)

// State is the top-level mode of a Game.
type State uint8

// Game states.
const (
	StateActive State = iota
	StateMenu
	StateWin
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateMenu:
		return "menu"
	case StateWin:
		return "win"
	default:
		return "State(?)"
	}
}

// paddleStrength scales how far off-center paddle hits deflect the ball.
const paddleStrength = 2

// Game owns one play session: the levels, the paddle, the ball, power-ups,
// particles and effect flags. It is driven one frame at a time by
// ProcessInput, Update and Draw, all from a single goroutine.
type Game struct {
	cfg   Config
	state State

	levels []*Level
	level  int
	lives  int

	paddle    Object
	ball      *Ball
	powerUps  []*PowerUp
	particles *ParticleGenerator
	effects   Effects

	keys  keyLatch
	sound SoundPlayer
	rng   *rand.Rand
}

// New creates a game in the menu state. Call Init before the first frame.
func New(cfg Config, opts ...Option) *Game {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Game{
		cfg:       cfg,
		state:     StateMenu,
		lives:     cfg.Lives,
		sound:     o.sound,
		rng:       o.rng,
		particles: NewParticleGenerator(cfg.Particles, o.rng),
	}
}

// Init loads every configured level, places the paddle and ball and starts
// the music. Level files that fail to load become empty levels; their errors
// are joined into the returned error, and the game stays playable.
func (g *Game) Init() error {
	paths := g.cfg.Levels
	if len(paths) == 0 {
		paths = []string{""}
	}

	var errs []error
	g.levels = make([]*Level, len(paths))
	for i, path := range paths {
		lvl, err := g.loadLevel(path)
		if err != nil {
			errs = append(errs, err)
		}
		g.levels[i] = lvl
	}
	g.level = 0
	g.lives = g.cfg.Lives

	r := g.cfg.BallRadius
	g.ball = NewBall(Vec2{}, r, g.cfg.InitialBallVelocity())
	g.ResetPlayer()

	g.sound.Play(SoundMusic, true)
	return errors.Join(errs...)
}

func (g *Game) loadLevel(path string) (*Level, error) {
	if path == "" {
		Logger().Warn("no level configured, continuing with an empty level")
		return &Level{}, nil
	}
	lvl, err := LoadLevel(path, g.cfg.Width, g.cfg.Height/2)
	if err != nil {
		Logger().Warn("level load failed, continuing with an empty level", "path", path, "err", err)
	}
	return lvl, err
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Level returns the selected level.
func (g *Game) Level() *Level { return g.levels[g.level] }

// LevelIndex returns the index of the selected level.
func (g *Game) LevelIndex() int { return g.level }

// Levels returns every loaded level in menu order.
func (g *Game) Levels() []*Level { return g.levels }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Paddle returns the player paddle.
func (g *Game) Paddle() *Object { return &g.paddle }

// Ball returns the ball.
func (g *Game) Ball() *Ball { return g.ball }

// PowerUps returns the power-ups currently falling or active.
func (g *Game) PowerUps() []*PowerUp { return g.powerUps }

// Particles returns the ball trail generator.
func (g *Game) Particles() *ParticleGenerator { return g.particles }

// Effects returns the post-processing flags for this frame.
func (g *Game) Effects() Effects { return g.effects }

// Config returns the session configuration.
func (g *Game) Config() Config { return g.cfg }

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	Logger().Info("game state", "from", g.state, "to", s, "level", g.level)
	g.state = s
}

// ProcessInput applies one frame of input. Enter and the level selection keys
// act once per press; paddle movement and launch act while held.
// Input before Init is ignored.
func (g *Game) ProcessInput(dt float32, in Input) {
	g.keys.release(in)
	if len(g.levels) == 0 {
		return
	}

	switch g.state {
	case StateMenu:
		if g.keys.pressed(in, KeyEnter) {
			g.setState(StateActive)
		}
		n := len(g.levels)
		if g.keys.pressed(in, KeyNext) {
			g.level = (g.level + 1) % n
		}
		if g.keys.pressed(in, KeyPrev) {
			g.level = (g.level - 1 + n) % n
		}
	case StateWin:
		if g.keys.pressed(in, KeyEnter) {
			g.effects.Chaos = false
			g.setState(StateMenu)
		}
	case StateActive:
		g.movePaddle(dt, in)
		if in.Down(KeyLaunch) {
			g.ball.Stuck = false
		}
	}
}

// movePaddle slides the paddle within the field and carries a stuck ball
// along by the same distance.
func (g *Game) movePaddle(dt float32, in Input) {
	step := g.cfg.PaddleVelocity * dt
	var dx float32
	if in.Down(KeyLeft) {
		dx -= step
	}
	if in.Down(KeyRight) {
		dx += step
	}
	if dx == 0 {
		return
	}
	old := g.paddle.Position.X
	g.paddle.Position.X = clamp(old+dx, 0, g.cfg.Width-g.paddle.Size.X)
	if g.ball.Stuck {
		g.ball.Position.X += g.paddle.Position.X - old
	}
}

// Update advances the session by dt seconds: ball motion, collisions,
// particles, power-ups, then the loss and win checks. Only the shake timer
// runs outside the active state.
func (g *Game) Update(dt float32) {
	g.effects.update(dt)
	if g.state != StateActive {
		return
	}

	g.ball.Move(dt, g.cfg.Width)
	g.DoCollisions()

	r := g.ball.Radius / 2
	g.particles.Update(dt, &g.ball.Object, 2, V2(r, r))
	g.updatePowerUps(dt)

	if g.ball.Position.Y >= g.cfg.Height {
		g.loseBall()
	}
	if g.state == StateActive && g.levelWon() {
		g.ResetLevel()
		g.ResetPlayer()
		g.effects.Chaos = true
		g.setState(StateWin)
	}
}

// levelWon reports completion of a level that had something to destroy, so
// an empty or failed level never counts as a win.
func (g *Game) levelWon() bool {
	lvl := g.Level()
	return lvl.Destructible() > 0 && lvl.IsCompleted()
}

func (g *Game) loseBall() {
	g.lives--
	Logger().Info("ball lost", "lives", g.lives)
	if g.lives <= 0 {
		g.ResetLevel()
		g.setState(StateMenu)
	}
	g.ResetPlayer()
}

// DoCollisions resolves the ball against every live brick in storage order,
// catches power-ups with the paddle and finally bounces the ball off the paddle.
func (g *Game) DoCollisions() {
	ball := g.ball
	lvl := g.Level()
	for i := range lvl.Bricks {
		box := &lvl.Bricks[i]
		if box.Destroyed {
			continue
		}
		c, ok := CheckBall(ball, box)
		if !ok {
			continue
		}
		if box.Solid {
			g.effects.shake(g.cfg.ShakeTime)
			g.sound.Play(SoundSolid, false)
		} else {
			box.Destroyed = true
			g.powerUps = append(g.powerUps, spawnPowerUps(g.rng, &g.cfg, box.Position)...)
			g.sound.Play(SoundBleep, false)
		}
		if ball.PassThrough && !box.Solid {
			continue
		}
		g.resolve(c)
	}

	for _, p := range g.powerUps {
		if p.Destroyed {
			continue
		}
		if p.Position.Y >= g.cfg.Height {
			p.Destroyed = true
		}
		if CheckAABB(&g.paddle, &p.Object) {
			g.activate(p)
			p.Destroyed = true
			p.Activated = true
			g.sound.Play(SoundPowerUp, false)
		}
	}

	if _, ok := CheckBall(ball, &g.paddle); ok && !ball.Stuck {
		g.bouncePaddle()
	}
}

// resolve reflects the ball along the impact axis and pushes it out of the
// box by the penetration depth.
func (g *Game) resolve(c Contact) {
	ball := g.ball
	if c.Dir.Horizontal() {
		ball.Velocity.X = -ball.Velocity.X
		penetration := ball.Radius - math32.Abs(c.Diff.X)
		if c.Dir == Left {
			ball.Position.X += penetration
		} else {
			ball.Position.X -= penetration
		}
		return
	}
	ball.Velocity.Y = -ball.Velocity.Y
	penetration := ball.Radius - math32.Abs(c.Diff.Y)
	if c.Dir == Up {
		ball.Position.Y -= penetration
	} else {
		ball.Position.Y += penetration
	}
}

// bouncePaddle steers the ball by where it hit the paddle. The ball always
// leaves upward and keeps its speed; only its direction changes.
func (g *Game) bouncePaddle() {
	ball := g.ball
	half := g.paddle.Size.X / 2
	distance := ball.Position.X + ball.Radius - (g.paddle.Position.X + half)
	percentage := distance / half

	speed := ball.Velocity.Length()
	ball.Velocity.X = g.cfg.BallVelocityX * percentage * paddleStrength
	ball.Velocity.Y = -math32.Abs(ball.Velocity.Y)
	ball.Velocity = ball.Velocity.Normalize().Mul(speed)

	ball.Stuck = ball.Sticky
	g.sound.Play(SoundBleep, false)
}

func (g *Game) activate(p *PowerUp) {
	Logger().Info("power-up activated", "type", p.Type)
	switch p.Type {
	case Speed:
		g.ball.Velocity = g.ball.Velocity.Mul(1.2)
	case Sticky:
		g.ball.Sticky = true
		g.paddle.Color = Sticky.Color()
	case PassThrough:
		g.ball.PassThrough = true
		g.ball.Color = RGB(1, 0.5, 0.5)
	case PadSizeIncrease:
		g.paddle.Size.X += 50
		g.paddle.Position.X = clamp(g.paddle.Position.X, 0, g.cfg.Width-g.paddle.Size.X)
	case Confuse:
		if !g.effects.Chaos {
			g.effects.Confuse = true
		}
	case Chaos:
		if !g.effects.Confuse {
			g.effects.Chaos = true
		}
	}
}

func (g *Game) updatePowerUps(dt float32) {
	for _, p := range g.powerUps {
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		if !p.Activated {
			continue
		}
		p.Duration -= dt
		if p.Duration > 0 {
			continue
		}
		p.Activated = false
		if isOtherPowerUpActive(g.powerUps, p.Type) {
			continue
		}
		switch p.Type {
		case Sticky:
			g.ball.Sticky = false
			g.paddle.Color = White
		case PassThrough:
			g.ball.PassThrough = false
			g.ball.Color = White
		case Confuse:
			g.effects.Confuse = false
		case Chaos:
			g.effects.Chaos = false
		}
	}
	g.powerUps = slices.DeleteFunc(g.powerUps, func(p *PowerUp) bool {
		return p.Destroyed && !p.Activated
	})
}

// ResetLevel replaces the selected level with a fresh copy from disk,
// drops every power-up and restores the lives.
func (g *Game) ResetLevel() {
	lvl, _ := g.loadLevel(g.Level().Path)
	g.levels[g.level] = lvl
	g.powerUps = nil
	g.lives = g.cfg.Lives
}

// ReloadLevel replaces every level loaded from path with a fresh copy,
// keeping lives and the ball in play. It reports whether any level matched.
func (g *Game) ReloadLevel(path string) bool {
	path = filepath.Clean(path)
	found := false
	for i, lvl := range g.levels {
		if lvl.Path == "" || filepath.Clean(lvl.Path) != path {
			continue
		}
		fresh, _ := g.loadLevel(lvl.Path)
		g.levels[i] = fresh
		found = true
	}
	return found
}

// ResetPlayer puts the paddle back at the bottom center with its base size,
// sticks the ball on top of it and clears power-up tints and screen effects.
func (g *Game) ResetPlayer() {
	size := g.cfg.PaddleSize()
	g.paddle = NewObject(V2(g.cfg.Width/2-size.X/2, g.cfg.Height-size.Y), size, SpritePaddle)

	r := g.ball.Radius
	g.ball.Reset(g.paddle.Position.Add(V2(size.X/2-r, -2*r)), g.cfg.InitialBallVelocity())
	g.ball.Color = White
	g.effects.reset()
}

// Draw issues one sprite per visible entity, background first and ball last,
// followed by the HUD and any menu or win prompt.
func (g *Game) Draw(sprites SpriteRenderer, text TextRenderer, res Resources) {
	if res == nil {
		res = nopResources{}
	}
	w, h := g.cfg.Width, g.cfg.Height

	sprites.DrawSprite(res.Texture(SpriteBackground), Vec2{}, V2(w, h), 0, White)
	g.Level().Draw(sprites, res)
	g.paddle.Draw(sprites, res)
	for _, p := range g.powerUps {
		if !p.Destroyed {
			p.Draw(sprites, res)
		}
	}
	g.particles.Draw(sprites, res)
	g.ball.Draw(sprites, res)

	text.RenderText(fmt.Sprintf("Lives: %d", g.lives), 5, 5, 1, White)
	switch g.state {
	case StateMenu:
		text.RenderText("Press ENTER to start", w*0.3125, h/2, 1, White)
		text.RenderText("Press W or S to select level", w*0.306, h/2+20, 0.75, White)
	case StateWin:
		text.RenderText("You WON!!!", w*0.4, h/2-20, 1, Green)
		text.RenderText("Press ENTER to retry or ESC to quit", w*0.1625, h/2, 1, Yellow)
	}
}
