// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/breakout"
)

// imageTexture is a texture whose pixels can be drawn.
type imageTexture interface {
	Image() *gg.ImageBuf
}

// Frame is a CPU render target for one game frame. It implements
// breakout.SpriteRenderer and breakout.TextRenderer.
//
// A Frame is reused across frames: call Begin, draw, then read Image.
// It is not safe for concurrent use.
type Frame struct {
	dc    *gg.Context
	tints *tintCache
	fonts *fontSet
}

var (
	_ breakout.SpriteRenderer = (*Frame)(nil)
	_ breakout.TextRenderer   = (*Frame)(nil)
)

// NewFrame creates a width x height frame.
func NewFrame(width, height int) (*Frame, error) {
	fonts, err := newFontSet()
	if err != nil {
		return nil, err
	}
	return &Frame{
		dc:    gg.NewContext(width, height),
		tints: newTintCache(),
		fonts: fonts,
	}, nil
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.dc.Width() }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.dc.Height() }

// Context returns the underlying gg context for custom drawing.
func (f *Frame) Context() *gg.Context { return f.dc }

// Begin clears the frame to opaque black.
func (f *Frame) Begin() {
	f.dc.ClearWithColor(gg.Black)
}

// DrawSprite draws tex stretched over size at position, tinted.
// Rotation is in degrees about the sprite center and only applies to
// untextured quads; textured sprites are drawn axis-aligned.
func (f *Frame) DrawSprite(tex breakout.Texture, position, size breakout.Vec2, rotation float32, tint breakout.Color) {
	if it, ok := tex.(imageTexture); ok && it.Image() != nil {
		f.dc.DrawImageEx(f.tints.get(it.Image(), tint), gg.DrawImageOptions{
			X:         float64(position.X),
			Y:         float64(position.Y),
			DstWidth:  float64(size.X),
			DstHeight: float64(size.Y),
		})
		return
	}

	w, h := float64(size.X), float64(size.Y)
	f.dc.Push()
	defer f.dc.Pop()
	f.dc.Translate(float64(position.X)+w/2, float64(position.Y)+h/2)
	if rotation != 0 {
		f.dc.Rotate(float64(rotation) * math.Pi / 180)
	}
	f.dc.DrawRectangle(-w/2, -h/2, w, h)
	f.dc.SetColor(tint.NRGBA())
	if err := f.dc.Fill(); err != nil {
		breakout.Logger().Debug("sprite fill failed", "err", err)
	}
}

// RenderText draws s with its top-left corner at (x, y).
func (f *Frame) RenderText(s string, x, y, scale float32, tint breakout.Color) {
	if s == "" || scale <= 0 {
		return
	}
	f.dc.SetFont(f.fonts.face(scale))
	f.dc.SetColor(tint.NRGBA())
	f.dc.DrawStringAnchored(s, float64(x), float64(y), 0, 0)
}

// Image returns a copy of the frame pixels.
func (f *Frame) Image() *image.RGBA {
	src := f.dc.Image()
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	return dst
}

// Close releases the context.
func (f *Frame) Close() error {
	return f.dc.Close()
}
