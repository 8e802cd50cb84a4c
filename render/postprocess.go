// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/breakout"
)

// Effect tuning, as fractions of the frame size.
const (
	shakeStrength = 0.005
	chaosStrength = 0.3
)

// kernel is a normalized 3x3 convolution matrix in row-major order.
type kernel [9]float64

var (
	blurKernel = kernel{
		1.0 / 16, 2.0 / 16, 1.0 / 16,
		2.0 / 16, 4.0 / 16, 2.0 / 16,
		1.0 / 16, 2.0 / 16, 1.0 / 16,
	}
	edgeKernel = kernel{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}
)

// PostProcessor applies the game's full-screen effects to a rendered frame.
// It keeps a scratch buffer between calls and is not safe for concurrent use.
type PostProcessor struct {
	out *image.RGBA
}

// NewPostProcessor returns a PostProcessor.
func NewPostProcessor() *PostProcessor {
	return &PostProcessor{}
}

// Apply returns src with fx applied at time t seconds. With no effect set it
// returns src unchanged. Otherwise the result is written to a buffer owned by
// the PostProcessor that is reused by the next call.
//
// Chaos takes precedence over Confuse for both sampling and color; Shake
// offsets the frame in every mode and blurs only when neither is set.
func (p *PostProcessor) Apply(src *image.RGBA, fx breakout.Effects, t float64) *image.RGBA {
	if !fx.Shake && !fx.Confuse && !fx.Chaos {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return src
	}
	if p.out == nil || p.out.Bounds().Dx() != w || p.out.Bounds().Dy() != h {
		p.out = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	if b.Min != (image.Point{}) {
		norm := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Copy(norm, image.Point{}, src, b, draw.Src, nil)
		src = norm
	}

	var offX, offY float64
	if fx.Shake {
		offX = math.Cos(t*10) * shakeStrength * float64(w)
		offY = math.Cos(t*15) * shakeStrength * float64(h)
	}
	var scrollX, scrollY float64
	if fx.Chaos {
		scrollX = math.Sin(t) * chaosStrength * float64(w)
		scrollY = math.Cos(t) * chaosStrength * float64(h)
	}

	for y := range h {
		for x := range w {
			sx := x - int(math.Round(offX))
			sy := y - int(math.Round(offY))
			var c [4]float64
			switch {
			case fx.Chaos:
				sx = wrap(sx+int(math.Round(scrollX)), w)
				sy = wrap(sy+int(math.Round(scrollY)), h)
				c = convolve(src, sx, sy, &edgeKernel, wrap)
			case fx.Confuse:
				sx = clampInt(w-1-sx, w)
				sy = clampInt(h-1-sy, h)
				c = at(src, sx, sy)
				c[0], c[1], c[2] = 1-c[0], 1-c[1], 1-c[2]
			default:
				c = convolve(src, clampInt(sx, w), clampInt(sy, h), &blurKernel, clampInt)
			}
			i := p.out.PixOffset(x, y)
			p.out.Pix[i+0] = to8(c[0])
			p.out.Pix[i+1] = to8(c[1])
			p.out.Pix[i+2] = to8(c[2])
			p.out.Pix[i+3] = to8(c[3])
		}
	}
	return p.out
}

// convolve applies k to the RGB channels around (x, y). Alpha is taken from
// the center pixel. edge maps out-of-range coordinates back into the image.
func convolve(img *image.RGBA, x, y int, k *kernel, edge func(v, n int) int) [4]float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	var sum [4]float64
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			weight := k[(ky+1)*3+kx+1]
			c := at(img, edge(x+kx, w), edge(y+ky, h))
			sum[0] += c[0] * weight
			sum[1] += c[1] * weight
			sum[2] += c[2] * weight
		}
	}
	sum[3] = at(img, x, y)[3]
	return sum
}

// at returns the pixel at (x, y) as RGBA in [0, 1].
func at(img *image.RGBA, x, y int) [4]float64 {
	i := img.PixOffset(x, y)
	px := img.Pix[i : i+4 : i+4]
	return [4]float64{
		float64(px[0]) / 255,
		float64(px[1]) / 255,
		float64(px[2]) / 255,
		float64(px[3]) / 255,
	}
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func clampInt(v, n int) int {
	return max(0, min(v, n-1))
}
