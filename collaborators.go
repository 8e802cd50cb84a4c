package breakout

// Texture is an opaque handle to a sprite image owned by a Resources provider.
// The core never inspects pixels; it only hands textures back to a SpriteRenderer.
type Texture interface {
	Size() (width, height int)
}

// Resources resolves sprite names to textures.
// A nil Texture means the sprite has no image and is drawn as a flat tinted quad.
type Resources interface {
	Texture(name string) Texture
}

// SpriteRenderer draws one textured, tinted quad. Position is the top-left
// corner, rotation is in degrees around the quad center.
type SpriteRenderer interface {
	DrawSprite(tex Texture, position, size Vec2, rotation float32, tint Color)
}

// TextRenderer draws a line of text with its top-left corner at (x, y).
// Scale 1 is the renderer's base font size.
type TextRenderer interface {
	RenderText(text string, x, y, scale float32, tint Color)
}

// SoundPlayer plays a named sound effect. Loop repeats it until the player is
// cleared; it is used for background music.
type SoundPlayer interface {
	Play(name string, loop bool)
}

// Sprite and sound names the game asks its collaborators for.
const (
	SpriteBackground = "background"
	SpriteBall       = "face"
	SpritePaddle     = "paddle"
	SpriteBlock      = "block"
	SpriteBlockSolid = "block_solid"
	SpriteParticle   = "particle"

	SoundMusic   = "music"
	SoundBleep   = "bleep"
	SoundSolid   = "solid"
	SoundPowerUp = "powerup"
)

type nopResources struct{}

func (nopResources) Texture(string) Texture { return nil }

type nopSound struct{}

func (nopSound) Play(string, bool) {}
