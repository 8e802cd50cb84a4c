package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorDirection(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Direction
	}{
		{"up", V2(0, 1), Up},
		{"right", V2(1, 0), Right},
		{"down", V2(0, -1), Down},
		{"left", V2(-1, 0), Left},
		{"mostly down", V2(0.2, -5), Down},
		{"mostly left", V2(-3, 0.5), Left},
		{"tie up/right", V2(1, 1), Up},
		{"tie up/left", V2(-1, 1), Up},
		{"tie right/down", V2(1, -1), Right},
		{"tie down/left", V2(-2, -2), Down},
		{"zero", V2(0, 0), Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VectorDirection(tt.v))
		})
	}
}

func TestCheckAABB(t *testing.T) {
	box := NewObject(V2(100, 100), V2(50, 50), SpriteBlock)
	tests := []struct {
		name string
		pos  Vec2
		want bool
	}{
		{"overlap", V2(120, 120), true},
		{"contained", V2(110, 110), true},
		{"touching right edge", V2(150, 100), true},
		{"touching bottom edge", V2(100, 150), true},
		{"right of", V2(151, 100), false},
		{"above", V2(100, 69), false},
		{"diagonal apart", V2(40, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := NewObject(tt.pos, V2(30, 30), SpritePaddle)
			assert.Equal(t, tt.want, CheckAABB(&box, &other))
			assert.Equal(t, tt.want, CheckAABB(&other, &box), "overlap must be symmetric")
		})
	}
}

// ballAt returns a free ball of radius 10 whose circle is centered on c.
func ballAt(c Vec2) *Ball {
	return freeBall(c.Sub(V2(10, 10)), V2(0, 0))
}

func TestCheckBall(t *testing.T) {
	box := NewObject(V2(100, 100), V2(100, 20), SpriteBlock)

	tests := []struct {
		name     string
		center   Vec2
		wantHit  bool
		wantDir  Direction
		wantDiff Vec2
	}{
		{"from above", V2(150, 95), true, Up, V2(0, 5)},
		{"from below", V2(150, 125), true, Down, V2(0, -5)},
		{"from the left", V2(95, 110), true, Right, V2(5, 0)},
		{"from the right", V2(206, 110), true, Left, V2(-6, 0)},
		{"grazing at radius", V2(150, 90), true, Up, V2(0, 10)},
		{"inside", V2(150, 110), true, Up, V2(0, 0)},
		{"just above", V2(150, 85), false, Up, Vec2{}},
		{"corner miss", V2(92, 92), false, Up, Vec2{}},
		{"far away", V2(500, 500), false, Up, Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := CheckBall(ballAt(tt.center), &box)
			require.Equal(t, tt.wantHit, ok)
			if !ok {
				assert.Equal(t, Contact{}, c)
				return
			}
			assert.Equal(t, tt.wantDir, c.Dir)
			assert.True(t, c.Diff.Approx(tt.wantDiff, 1e-4), "diff = %v, want %v", c.Diff, tt.wantDiff)
		})
	}
}

func TestCheckBallInsideBrickAlwaysHits(t *testing.T) {
	box := NewObject(V2(0, 0), V2(200, 100), SpriteBlock)
	for x := float32(10); x < 190; x += 17 {
		for y := float32(10); y < 90; y += 13 {
			_, ok := CheckBall(ballAt(V2(x, y)), &box)
			assert.True(t, ok, "ball centered at (%v, %v) inside the brick must hit", x, y)
		}
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Up", Up.String())
	assert.Equal(t, "Left", Left.String())
	assert.True(t, Right.Horizontal())
	assert.False(t, Down.Horizontal())
}
