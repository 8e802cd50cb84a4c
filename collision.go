package breakout

// Direction is the compass side of an impact, classified from the vector
// between the ball center and the closest point on the box.
type Direction uint8

// Compass directions in classification order.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Direction(?)"
	}
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

var compass = [...]Vec2{
	Up:    {0, 1},
	Right: {1, 0},
	Down:  {0, -1},
	Left:  {-1, 0},
}

// VectorDirection returns the compass direction best aligned with target.
// Directions are tried in the order Up, Right, Down, Left and a later one only
// wins with a strictly greater dot product, so exact ties resolve to the
// earlier direction. The zero vector classifies as Up.
func VectorDirection(target Vec2) Direction {
	n := target.Normalize()
	best := Up
	var bestDot float32
	for i, c := range compass {
		if dot := n.Dot(c); dot > bestDot {
			bestDot = dot
			best = Direction(i)
		}
	}
	return best
}

// Contact describes a ball/box overlap.
type Contact struct {
	// Dir is the side of the impact.
	Dir Direction
	// Diff points from the ball center to the closest point on the box.
	Diff Vec2
}

// CheckAABB reports whether two axis-aligned boxes overlap. Touching edges
// count as overlap.
func CheckAABB(one, two *Object) bool {
	collisionX := one.Position.X+one.Size.X >= two.Position.X &&
		two.Position.X+two.Size.X >= one.Position.X
	collisionY := one.Position.Y+one.Size.Y >= two.Position.Y &&
		two.Position.Y+two.Size.Y >= one.Position.Y
	return collisionX && collisionY
}

// CheckBall tests the ball's bounding circle against box. The Contact is only
// valid when ok is true.
func CheckBall(ball *Ball, box *Object) (c Contact, ok bool) {
	center := ball.circleCenter()

	half := box.Size.Div(2)
	boxCenter := box.Position.Add(half)

	clamped := center.Sub(boxCenter).Clamp(half.Neg(), half)
	closest := boxCenter.Add(clamped)

	diff := closest.Sub(center)
	if diff.Length() > ball.Radius {
		return Contact{}, false
	}
	return Contact{Dir: VectorDirection(diff), Diff: diff}, true
}
