package breakout

// Config holds the tunable constants of a game session. The zero value is not
// usable; start from DefaultConfig. Field tags drive internal/config, which
// layers a TOML file and environment variables over the defaults.
type Config struct {
	// Width and Height are the playing field in pixels. Levels occupy the top
	// half of the field.
	Width  float32 `toml:"width" env:"BREAKOUT_WIDTH"`
	Height float32 `toml:"height" env:"BREAKOUT_HEIGHT"`

	PaddleWidth    float32 `toml:"paddle_width" env:"BREAKOUT_PADDLE_WIDTH"`
	PaddleHeight   float32 `toml:"paddle_height" env:"BREAKOUT_PADDLE_HEIGHT"`
	PaddleVelocity float32 `toml:"paddle_velocity" env:"BREAKOUT_PADDLE_VELOCITY"`

	BallVelocityX float32 `toml:"ball_velocity_x" env:"BREAKOUT_BALL_VELOCITY_X"`
	BallVelocityY float32 `toml:"ball_velocity_y" env:"BREAKOUT_BALL_VELOCITY_Y"`
	BallRadius    float32 `toml:"ball_radius" env:"BREAKOUT_BALL_RADIUS"`

	Lives int `toml:"lives" env:"BREAKOUT_LIVES"`

	// Levels lists the level files selectable from the menu, in order.
	Levels []string `toml:"levels" env:"BREAKOUT_LEVELS" envSeparator:","`

	Particles int `toml:"particles" env:"BREAKOUT_PARTICLES"`

	PowerUpWidth    float32 `toml:"powerup_width" env:"BREAKOUT_POWERUP_WIDTH"`
	PowerUpHeight   float32 `toml:"powerup_height" env:"BREAKOUT_POWERUP_HEIGHT"`
	PowerUpVelocity float32 `toml:"powerup_velocity" env:"BREAKOUT_POWERUP_VELOCITY"`
	// GoodChance and BadChance are the 1-in-N odds of each positive and
	// negative power-up type dropping from a destroyed brick.
	GoodChance int `toml:"good_chance" env:"BREAKOUT_GOOD_CHANCE"`
	BadChance  int `toml:"bad_chance" env:"BREAKOUT_BAD_CHANCE"`

	// ShakeTime is how long the screen shakes after a solid brick hit, in seconds.
	ShakeTime float32 `toml:"shake_time" env:"BREAKOUT_SHAKE_TIME"`
}

// DefaultConfig returns the classic 800x600 setup with four levels under levels/.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		PaddleWidth:     100,
		PaddleHeight:    20,
		PaddleVelocity:  500,
		BallVelocityX:   100,
		BallVelocityY:   -350,
		BallRadius:      12.5,
		Lives:           3,
		Levels:          []string{"levels/one.lvl", "levels/two.lvl", "levels/three.lvl", "levels/four.lvl"},
		Particles:       500,
		PowerUpWidth:    60,
		PowerUpHeight:   20,
		PowerUpVelocity: 150,
		GoodChance:      75,
		BadChance:       15,
		ShakeTime:       0.05,
	}
}

// PaddleSize returns the paddle dimensions.
func (c Config) PaddleSize() Vec2 { return V2(c.PaddleWidth, c.PaddleHeight) }

// InitialBallVelocity returns the velocity the ball is launched with.
func (c Config) InitialBallVelocity() Vec2 { return V2(c.BallVelocityX, c.BallVelocityY) }

// PowerUpSize returns the power-up dimensions.
func (c Config) PowerUpSize() Vec2 { return V2(c.PowerUpWidth, c.PowerUpHeight) }
