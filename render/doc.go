// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a breakout frame with gg.
//
// The game core only knows the SpriteRenderer and TextRenderer interfaces.
// This package implements both on top of a CPU gg.Context, applies the
// full-screen effects afterwards and writes the result out.
//
// # Pipeline
//
//	frame, _ := render.NewFrame(800, 600)
//	pp := render.NewPostProcessor()
//	out := render.NewSequence("frames")
//
//	frame.Begin()
//	game.Draw(frame, frame, resources)
//	img := pp.Apply(frame.Image(), game.Effects(), elapsed)
//	out.Write(img)
//
// # Sprites
//
// A texture handed to DrawSprite must expose its pixels through
// Image() *gg.ImageBuf (resource.Texture does). Tinted copies are cached per
// texture and tint, so a brick grid costs one multiply pass per color. A nil
// texture is drawn as a filled rectangle in the tint color, rotated about its
// center.
//
// # Text
//
// Text uses the Go Regular font at 24px times the requested scale. The
// anchor is the top-left corner of the line.
//
// # Effects
//
// PostProcessor reproduces the three screen effects on the finished image:
//   - Shake: the frame wobbles a few pixels and is softened by a 3x3 blur
//   - Confuse: colors are inverted and the frame is flipped on both axes
//   - Chaos: an edge detection kernel over a frame that circles around
package render
