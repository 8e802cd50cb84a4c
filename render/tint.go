// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/breakout"
)

// tintCacheSize bounds the number of tinted textures kept around.
const tintCacheSize = 256

type tintKey struct {
	src  *gg.ImageBuf
	tint color.NRGBA
}

// tintCache holds texture copies multiplied by a tint color.
type tintCache struct {
	cache *text.Cache[tintKey, *gg.ImageBuf]
}

func newTintCache() *tintCache {
	return &tintCache{cache: text.NewCache[tintKey, *gg.ImageBuf](tintCacheSize)}
}

// get returns src multiplied by tint. White returns src itself.
func (c *tintCache) get(src *gg.ImageBuf, tint breakout.Color) *gg.ImageBuf {
	if tint.IsWhite() {
		return src
	}
	key := tintKey{src: src, tint: tint.NRGBA()}
	return c.cache.GetOrCreate(key, func() *gg.ImageBuf {
		return tintImage(src, key.tint)
	})
}

// tintImage multiplies every channel of src by tint.
func tintImage(src *gg.ImageBuf, tint color.NRGBA) *gg.ImageBuf {
	w, h := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			r, g, b, a := src.GetRGBA(x, y)
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = mul8(r, tint.R)
			dst.Pix[i+1] = mul8(g, tint.G)
			dst.Pix[i+2] = mul8(b, tint.B)
			dst.Pix[i+3] = mul8(a, tint.A)
		}
	}
	return gg.ImageBufFromImage(dst)
}

// mul8 multiplies two 8-bit channels, rounding to nearest.
func mul8(a, b uint8) uint8 {
	v := uint16(a)*uint16(b) + 127
	return uint8(v / 255) //nolint:gosec // v/255 <= 255
}
