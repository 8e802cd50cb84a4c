package breakout

import "fmt"

// Object is the state shared by every game entity: bricks, the paddle,
// the ball and power-ups. Position is the top-left corner of the bounding box.
type Object struct {
	Position Vec2
	Size     Vec2
	Velocity Vec2
	Color    Color
	Rotation float32 // degrees

	// Solid bricks are never destroyed.
	Solid bool
	// Destroyed objects stay in their container and are skipped.
	Destroyed bool

	// Sprite names the texture resolved through Resources when drawing.
	Sprite string
}

// NewObject returns a white, motionless object.
// It panics if size is not strictly positive: collision resolution divides
// by half extents and the paddle half width.
func NewObject(pos, size Vec2, sprite string) Object {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("breakout: object size must be positive, got %v", size))
	}
	return Object{
		Position: pos,
		Size:     size,
		Color:    White,
		Sprite:   sprite,
	}
}

// Center returns the center of the bounding box.
func (o *Object) Center() Vec2 {
	return o.Position.Add(o.Size.Div(2))
}

// Draw renders the object through r with its texture resolved from res.
func (o *Object) Draw(r SpriteRenderer, res Resources) {
	r.DrawSprite(res.Texture(o.Sprite), o.Position, o.Size, o.Rotation, o.Color)
}

// Ball is the bouncing ball. Its bounding box is a square of side 2*Radius.
type Ball struct {
	Object

	Radius float32
	// Stuck balls ride on the paddle and ignore their velocity.
	Stuck bool
	// Sticky balls become stuck again when they hit the paddle.
	Sticky bool
	// PassThrough balls destroy non-solid bricks without bouncing.
	PassThrough bool
}

// NewBall returns a stuck ball at pos. It panics if radius is not positive.
func NewBall(pos Vec2, radius float32, velocity Vec2) *Ball {
	if radius <= 0 {
		panic(fmt.Sprintf("breakout: ball radius must be positive, got %v", radius))
	}
	b := &Ball{
		Object: NewObject(pos, V2(radius*2, radius*2), SpriteBall),
		Radius: radius,
		Stuck:  true,
	}
	b.Velocity = velocity
	return b
}

// Move integrates the ball position over dt and reflects it off the left,
// right and top walls of a field boundaryWidth wide. There is no bottom wall;
// falling out of the field is handled by Game. A stuck ball does not move.
func (b *Ball) Move(dt, boundaryWidth float32) Vec2 {
	if b.Stuck {
		return b.Position
	}
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	switch {
	case b.Position.X <= 0:
		b.Velocity.X = -b.Velocity.X
		b.Position.X = 0
	case b.Position.X+b.Size.X >= boundaryWidth:
		b.Velocity.X = -b.Velocity.X
		b.Position.X = boundaryWidth - b.Size.X
	}
	if b.Position.Y <= 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = 0
	}
	return b.Position
}

// Reset places the ball at position with velocity, sticks it to the paddle
// and clears the sticky and pass-through power-ups. Inputs are not validated.
func (b *Ball) Reset(position, velocity Vec2) {
	b.Position = position
	b.Velocity = velocity
	b.Stuck = true
	b.Sticky = false
	b.PassThrough = false
}

// circleCenter returns the center of the ball's bounding circle.
func (b *Ball) circleCenter() Vec2 {
	return b.Position.AddScalar(b.Radius)
}
