// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// BaseFontSize is the pixel size of text drawn at scale 1.
const BaseFontSize = 24

// fontSet hands out faces of one font source, one per distinct size.
type fontSet struct {
	source *text.FontSource
	faces  map[float64]text.Face
}

func newFontSet() (*fontSet, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &fontSet{source: source, faces: make(map[float64]text.Face)}, nil
}

// face returns the face for scale times BaseFontSize.
func (s *fontSet) face(scale float32) text.Face {
	size := float64(BaseFontSize * scale)
	f, ok := s.faces[size]
	if !ok {
		f = s.source.Face(size)
		s.faces[size] = f
	}
	return f
}
