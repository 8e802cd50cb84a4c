package breakout

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playedSound struct {
	name string
	loop bool
}

type soundRecorder struct {
	played []playedSound
}

func (s *soundRecorder) Play(name string, loop bool) {
	s.played = append(s.played, playedSound{name, loop})
}

func (s *soundRecorder) names() []string {
	out := make([]string, len(s.played))
	for i, p := range s.played {
		out[i] = p.name
	}
	return out
}

type textRecorder struct {
	lines []string
}

func (r *textRecorder) RenderText(text string, _, _, _ float32, _ Color) {
	r.lines = append(r.lines, text)
}

// newTestGame builds an initialized 800x600 game over the given level grids
// with power-up drops disabled.
func newTestGame(t *testing.T, grids ...string) (*Game, *soundRecorder) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.GoodChance, cfg.BadChance = 0, 0
	cfg.Levels = nil
	dir := t.TempDir()
	for i, grid := range grids {
		path := filepath.Join(dir, string(rune('a'+i))+".lvl")
		require.NoError(t, os.WriteFile(path, []byte(grid), 0o600))
		cfg.Levels = append(cfg.Levels, path)
	}
	return newTestGameConfig(t, cfg)
}

func newTestGameConfig(t *testing.T, cfg Config) (*Game, *soundRecorder) {
	t.Helper()
	snd := &soundRecorder{}
	g := New(cfg, WithSound(snd), WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, g.Init())
	return g, snd
}

// start moves the game from the menu into play.
func start(t *testing.T, g *Game) {
	t.Helper()
	g.ProcessInput(0, Keys(KeyEnter))
	g.ProcessInput(0, Input{})
	require.Equal(t, StateActive, g.State())
}

// launchAt frees the ball at pos with velocity vel.
func launchAt(g *Game, pos, vel Vec2) {
	b := g.Ball()
	b.Stuck = false
	b.Position = pos
	b.Velocity = vel
}

func TestGameInit(t *testing.T) {
	g, snd := newTestGame(t, "2 2\n")

	assert.Equal(t, StateMenu, g.State())
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, V2(350, 580), g.Paddle().Position)
	assert.Equal(t, V2(100, 20), g.Paddle().Size)

	b := g.Ball()
	assert.Equal(t, V2(387.5, 555), b.Position)
	assert.Equal(t, V2(25, 25), b.Size)
	assert.Equal(t, V2(100, -350), b.Velocity)
	assert.True(t, b.Stuck)

	assert.Equal(t, []playedSound{{SoundMusic, true}}, snd.played)
}

func TestGameInitDegradedLevels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Levels = []string{filepath.Join(t.TempDir(), "missing.lvl")}
	g := New(cfg)

	err := g.Init()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, g.Level().Bricks)

	start(t, g)
	g.Update(0.01)
	assert.Equal(t, StateActive, g.State(), "an empty level is never won")
}

func TestGameInitWithoutLevels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Levels = nil
	g := New(cfg)

	require.NoError(t, g.Init())
	require.Len(t, g.Levels(), 1)
	assert.Empty(t, g.Level().Bricks)
}

func TestGameInputBeforeInit(t *testing.T) {
	g := New(DefaultConfig())

	for _, k := range []Key{KeyNext, KeyPrev, KeyEnter, KeyLaunch} {
		assert.NotPanics(t, func() {
			g.ProcessInput(0.01, Keys(k))
			g.ProcessInput(0.01, Input{})
		}, "key %v", k)
	}
	assert.Equal(t, StateMenu, g.State())
	assert.Zero(t, g.LevelIndex())
}

func TestGameMenuLevelSelection(t *testing.T) {
	g, _ := newTestGame(t, "2\n", "2 2\n", "2 2 2\n")
	require.Equal(t, 0, g.LevelIndex())

	g.ProcessInput(0, Keys(KeyNext))
	assert.Equal(t, 1, g.LevelIndex())

	g.ProcessInput(0, Keys(KeyNext))
	assert.Equal(t, 1, g.LevelIndex(), "a held key selects once")

	g.ProcessInput(0, Input{})
	g.ProcessInput(0, Keys(KeyNext))
	g.ProcessInput(0, Input{})
	g.ProcessInput(0, Keys(KeyNext))
	assert.Equal(t, 0, g.LevelIndex(), "selection wraps forward")

	g.ProcessInput(0, Keys(KeyPrev))
	assert.Equal(t, 2, g.LevelIndex(), "selection wraps backward")
	assert.Len(t, g.Level().Bricks, 3)
	assert.Equal(t, StateMenu, g.State())
}

func TestGameMenuIgnoresPhysics(t *testing.T) {
	g, _ := newTestGame(t, "2\n")
	launchAt(g, V2(100, 400), V2(0, 100))

	g.Update(1)
	assert.Equal(t, V2(100, 400), g.Ball().Position)
}

func TestGameLaunch(t *testing.T) {
	g, _ := newTestGame(t, "2 2\n")
	start(t, g)

	g.ProcessInput(0.01, Keys(KeyLaunch))
	require.False(t, g.Ball().Stuck)

	g.Update(0.01)
	got := g.Ball().Position
	assert.True(t, got.Approx(V2(388.5, 551.5), 1e-3), "ball at %v", got)
	assert.Equal(t, V2(100, -350), g.Ball().Velocity)
}

func TestGamePaddleMovement(t *testing.T) {
	g, _ := newTestGame(t, "2\n")
	start(t, g)

	g.ProcessInput(0.1, Keys(KeyLeft))
	assert.InDelta(t, 300, g.Paddle().Position.X, 1e-3)
	assert.InDelta(t, 337.5, g.Ball().Position.X, 1e-3, "a stuck ball rides the paddle")

	g.ProcessInput(1, Keys(KeyLeft))
	assert.Equal(t, float32(0), g.Paddle().Position.X)
	assert.InDelta(t, 37.5, g.Ball().Position.X, 1e-3)

	g.ProcessInput(10, Keys(KeyRight))
	assert.Equal(t, float32(700), g.Paddle().Position.X)
	assert.InDelta(t, 737.5, g.Ball().Position.X, 1e-3)

	g.ProcessInput(1, Keys(KeyLeft, KeyRight))
	assert.Equal(t, float32(700), g.Paddle().Position.X, "opposite keys cancel")

	g.Ball().Stuck = false
	g.ProcessInput(0.1, Keys(KeyLeft))
	assert.InDelta(t, 737.5, g.Ball().Position.X, 1e-3, "a free ball stays put")
}

func TestGameBrickCollision(t *testing.T) {
	t.Run("destructible", func(t *testing.T) {
		g, snd := newTestGame(t, "2\n")
		launchAt(g, V2(400, 295), V2(0, -350))

		g.DoCollisions()

		assert.True(t, g.Level().Bricks[0].Destroyed)
		assert.Equal(t, V2(0, 350), g.Ball().Velocity)
		assert.InDelta(t, 300, g.Ball().Position.Y, 1e-3, "pushed out below the brick")
		assert.Contains(t, snd.names(), SoundBleep)
	})

	t.Run("solid", func(t *testing.T) {
		g, snd := newTestGame(t, "1\n")
		launchAt(g, V2(400, 295), V2(0, -350))

		g.DoCollisions()

		assert.False(t, g.Level().Bricks[0].Destroyed)
		assert.Equal(t, V2(0, 350), g.Ball().Velocity)
		assert.True(t, g.Effects().Shake)
		assert.Contains(t, snd.names(), SoundSolid)

		g.Update(0.1)
		assert.False(t, g.Effects().Shake, "shake wears off")
	})

	t.Run("from the side", func(t *testing.T) {
		g, _ := newTestGame(t, "0 2\n")
		launchAt(g, V2(380, 100), V2(200, -100))

		g.DoCollisions()

		assert.True(t, g.Level().Bricks[0].Destroyed)
		assert.Equal(t, V2(-200, -100), g.Ball().Velocity)
		assert.InDelta(t, 375, g.Ball().Position.X, 1e-3)
	})

	t.Run("pass-through", func(t *testing.T) {
		g, _ := newTestGame(t, "2\n")
		launchAt(g, V2(400, 295), V2(0, -350))
		g.Ball().PassThrough = true

		g.DoCollisions()

		assert.True(t, g.Level().Bricks[0].Destroyed)
		assert.Equal(t, V2(0, -350), g.Ball().Velocity)
		assert.Equal(t, V2(400, 295), g.Ball().Position)
	})

	t.Run("pass-through still bounces off solid", func(t *testing.T) {
		g, _ := newTestGame(t, "1\n")
		launchAt(g, V2(400, 295), V2(0, -350))
		g.Ball().PassThrough = true

		g.DoCollisions()

		assert.Equal(t, V2(0, 350), g.Ball().Velocity)
	})
}

func TestGameSolidBrickSurvivesInsideHit(t *testing.T) {
	path := writeLevel(t, "small.lvl", "1 2\n0 1\n")
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 200
	cfg.BallRadius = 5
	cfg.Levels = []string{path}
	cfg.GoodChance, cfg.BadChance = 0, 0
	g, _ := newTestGameConfig(t, cfg)

	launchAt(g, V2(150, 50), V2(0, -350))
	c, ok := CheckBall(g.Ball(), &g.Level().Bricks[2])
	require.True(t, ok)
	assert.Contains(t, []Direction{Up, Down}, c.Dir)

	g.DoCollisions()

	bricks := g.Level().Bricks
	assert.False(t, bricks[2].Destroyed)
	assert.False(t, bricks[0].Destroyed)
	assert.True(t, bricks[1].Destroyed, "the brick above is clipped too")
	assert.True(t, g.Effects().Shake)
}

func TestGamePaddleBounce(t *testing.T) {
	tests := []struct {
		name   string
		x      float32
		wantVX float32
	}{
		{"right of center", 412.5, 96.1524},
		{"left of center", 362.5, -96.1524},
		{"dead center", 387.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, snd := newTestGame(t, "2\n")
			launchAt(g, V2(tt.x, 560), V2(0, 350))

			g.DoCollisions()

			v := g.Ball().Velocity
			assert.InDelta(t, 350, v.Length(), 1e-2, "speed is preserved")
			assert.Less(t, v.Y, float32(0), "ball leaves upward")
			assert.InDelta(t, tt.wantVX, v.X, 0.05)
			assert.False(t, g.Ball().Stuck)
			assert.Contains(t, snd.names(), SoundBleep)
		})
	}
}

func TestGamePaddleBounceSticky(t *testing.T) {
	g, _ := newTestGame(t, "2\n")
	launchAt(g, V2(412.5, 560), V2(0, 350))
	g.Ball().Sticky = true

	g.DoCollisions()

	assert.True(t, g.Ball().Stuck)
	assert.Less(t, g.Ball().Velocity.Y, float32(0))
}

func TestGameWin(t *testing.T) {
	g, _ := newTestGame(t, "2\n")
	start(t, g)

	launchAt(g, V2(400, 295), V2(0, -350))
	g.Update(0.001)

	require.Equal(t, StateWin, g.State())
	assert.True(t, g.Effects().Chaos)
	assert.False(t, g.Level().Bricks[0].Destroyed, "level is reset for the next run")
	assert.True(t, g.Ball().Stuck)

	g.Update(1)
	assert.Equal(t, StateWin, g.State(), "physics stays paused on the win screen")

	g.ProcessInput(0, Keys(KeyEnter))
	assert.Equal(t, StateMenu, g.State())
	assert.False(t, g.Effects().Chaos)
}

func TestGameLoseBall(t *testing.T) {
	g, _ := newTestGame(t, "2 2\n")
	start(t, g)
	g.Level().Bricks[0].Destroyed = true

	lose := func() {
		launchAt(g, V2(10, 590), V2(0, 350))
		g.Update(0.1)
	}

	lose()
	assert.Equal(t, 2, g.Lives())
	assert.Equal(t, StateActive, g.State())
	assert.True(t, g.Ball().Stuck)
	assert.Equal(t, V2(387.5, 555), g.Ball().Position)
	assert.True(t, g.Level().Bricks[0].Destroyed, "progress is kept while lives remain")

	lose()
	assert.Equal(t, 1, g.Lives())

	lose()
	assert.Equal(t, StateMenu, g.State())
	assert.Equal(t, 3, g.Lives())
	assert.False(t, g.Level().Bricks[0].Destroyed, "level is reset after the last life")
}

func TestGamePowerUpCatchAndExpire(t *testing.T) {
	g, snd := newTestGame(t, "2\n")
	p := NewPowerUp(Sticky, g.Paddle().Position, g.Config().PowerUpSize(), V2(0, 150))
	g.powerUps = append(g.powerUps, p)

	g.DoCollisions()

	assert.True(t, p.Activated)
	assert.True(t, p.Destroyed)
	assert.True(t, g.Ball().Sticky)
	assert.Equal(t, Sticky.Color(), g.Paddle().Color)
	assert.Contains(t, snd.names(), SoundPowerUp)

	g.updatePowerUps(19)
	assert.True(t, g.Ball().Sticky)
	require.Len(t, g.PowerUps(), 1)

	g.updatePowerUps(2)
	assert.False(t, g.Ball().Sticky)
	assert.Equal(t, White, g.Paddle().Color)
	assert.Empty(t, g.PowerUps())
}

func TestGamePowerUpOverlap(t *testing.T) {
	g, _ := newTestGame(t, "2\n")
	pos := g.Paddle().Position
	size := g.Config().PowerUpSize()
	first := NewPowerUp(PassThrough, pos, size, Vec2{})
	second := NewPowerUp(PassThrough, pos, size, Vec2{})
	g.powerUps = append(g.powerUps, first, second)

	g.DoCollisions()
	require.True(t, g.Ball().PassThrough)

	first.Duration = 1
	g.updatePowerUps(2)
	assert.True(t, g.Ball().PassThrough, "the second pass-through is still running")
	assert.Equal(t, RGB(1, 0.5, 0.5), g.Ball().Color)
	assert.Len(t, g.PowerUps(), 1)

	g.updatePowerUps(10)
	assert.False(t, g.Ball().PassThrough)
	assert.Equal(t, White, g.Ball().Color)
}

func TestGamePowerUpEffects(t *testing.T) {
	catch := func(g *Game, typ PowerUpType) {
		p := NewPowerUp(typ, g.Paddle().Position, g.Config().PowerUpSize(), Vec2{})
		g.powerUps = append(g.powerUps, p)
		g.DoCollisions()
	}

	t.Run("speed", func(t *testing.T) {
		g, _ := newTestGame(t, "2\n")
		catch(g, Speed)
		assert.True(t, g.Ball().Velocity.Approx(V2(120, -420), 1e-3))
	})

	t.Run("pad size", func(t *testing.T) {
		g, _ := newTestGame(t, "2\n")
		g.Paddle().Position.X = 700
		catch(g, PadSizeIncrease)
		assert.Equal(t, float32(150), g.Paddle().Size.X)
		assert.Equal(t, float32(650), g.Paddle().Position.X, "grown paddle stays in the field")
	})

	t.Run("confuse and chaos exclude each other", func(t *testing.T) {
		g, _ := newTestGame(t, "2\n")
		catch(g, Chaos)
		catch(g, Confuse)
		assert.True(t, g.Effects().Chaos)
		assert.False(t, g.Effects().Confuse)

		g.updatePowerUps(16)
		assert.False(t, g.Effects().Chaos)

		catch(g, Confuse)
		assert.True(t, g.Effects().Confuse)
	})
}

func TestGamePowerUpFallsOut(t *testing.T) {
	g, _ := newTestGame(t, "2\n")
	p := NewPowerUp(Speed, V2(0, 590), g.Config().PowerUpSize(), V2(0, 150))
	g.powerUps = append(g.powerUps, p)

	g.updatePowerUps(0.1)
	assert.InDelta(t, 605, p.Position.Y, 1e-3)

	g.DoCollisions()
	assert.True(t, p.Destroyed)
	assert.False(t, p.Activated)

	g.updatePowerUps(0.1)
	assert.Empty(t, g.PowerUps())
	assert.Equal(t, V2(100, -350), g.Ball().Velocity, "missed power-ups have no effect")
}

func TestGameBrickDropsPowerUps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Levels = []string{writeLevel(t, "one.lvl", "2\n")}
	cfg.GoodChance, cfg.BadChance = 1, 1
	g, _ := newTestGameConfig(t, cfg)
	launchAt(g, V2(400, 295), V2(0, -350))

	g.DoCollisions()

	require.Len(t, g.PowerUps(), len(powerUpSpecs))
	for _, p := range g.PowerUps() {
		assert.Equal(t, V2(0, 0), p.Position, "drops at the brick")
		assert.Equal(t, V2(0, 150), p.Velocity)
	}
}

func TestGameReloadLevel(t *testing.T) {
	path := writeLevel(t, "one.lvl", "2\n")
	cfg := DefaultConfig()
	cfg.Levels = []string{path}
	g, _ := newTestGameConfig(t, cfg)
	start(t, g)
	require.NoError(t, os.WriteFile(path, []byte("2 2 2\n1 1 1\n"), 0o600))

	assert.False(t, g.ReloadLevel(path+".other"))
	assert.True(t, g.ReloadLevel(path))
	assert.Len(t, g.Level().Bricks, 6)
	assert.Equal(t, StateActive, g.State())
	assert.Equal(t, 3, g.Lives())
}

func TestGameDraw(t *testing.T) {
	g, _ := newTestGame(t, "2 1\n")
	var sprites spriteRecorder
	var text textRecorder

	g.Draw(&sprites, &text, nil)

	require.Len(t, sprites.calls, 5, "background, two bricks, paddle, ball")
	assert.Equal(t, V2(800, 600), sprites.calls[0].size)
	last := sprites.calls[len(sprites.calls)-1]
	assert.Equal(t, g.Ball().Position, last.position)
	assert.Equal(t, g.Ball().Size, last.size)
	assert.Equal(t, []string{"Lives: 3", "Press ENTER to start", "Press W or S to select level"}, text.lines)

	g.Level().Bricks[0].Destroyed = true
	start(t, g)
	sprites.calls, text.lines = nil, nil
	g.Draw(&sprites, &text, nil)
	assert.Len(t, sprites.calls, 4)
	assert.Equal(t, []string{"Lives: 3"}, text.lines)
}
