package main

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/breakout"
	"github.com/gogpu/breakout/resource"
)

// textureSize is the edge of generated square sprites; the renderer scales them.
const textureSize = 64

// addFallbackTextures draws simple stand-ins for the sprites that have no
// file in the assets directory, so a bare checkout still renders a readable
// game. Bricks and the paddle stay flat quads.
func addFallbackTextures(m *resource.Manager, width, height int) {
	gen := map[string]func() *gg.Context{
		breakout.SpriteBackground: func() *gg.Context { return drawBackground(width, height) },
		breakout.SpriteBall:       drawBall,
		breakout.SpriteParticle:   drawParticle,
	}
	for name, draw := range gen {
		if m.Has(name) {
			continue
		}
		dc := draw()
		m.AddTexture(name, dc.Image())
		_ = dc.Close()
	}
}

// drawBackground fills a vertical gradient in bands.
func drawBackground(w, h int) *gg.Context {
	dc := gg.NewContext(w, h)
	const steps = 100
	for i := range steps {
		t := float64(i) / steps
		dc.SetColor(gg.RGB(0.05+t*0.15, 0.05+t*0.1, 0.15+t*0.2))
		y := float64(h) * t
		dc.DrawRectangle(0, y, float64(w), float64(h)/steps+1)
		_ = dc.Fill()
	}
	return dc
}

func drawBall() *gg.Context {
	dc := gg.NewContext(textureSize, textureSize)
	r := float64(textureSize) / 2
	dc.SetRGB(1, 0.85, 0.2)
	dc.DrawCircle(r, r, r-1)
	_ = dc.Fill()

	// Eyes and a smile.
	dc.SetRGB(0.2, 0.1, 0)
	dc.DrawCircle(r-10, r-8, 4)
	dc.DrawCircle(r+10, r-8, 4)
	_ = dc.Fill()
	dc.SetLineWidth(3)
	dc.DrawArc(r, r+2, 14, 0.2, 2.94)
	_ = dc.Stroke()
	return dc
}

func drawParticle() *gg.Context {
	dc := gg.NewContext(textureSize, textureSize)
	r := float64(textureSize) / 2
	for i := 8; i > 0; i-- {
		t := float64(i) / 8
		dc.SetRGBA(1, 1, 1, 0.15)
		dc.DrawCircle(r, r, r*t)
		_ = dc.Fill()
	}
	return dc
}
