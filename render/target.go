// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// ErrNoDir is returned by NewSequence when no output directory is given.
var ErrNoDir = errors.New("render: output directory is required")

// Sequence writes frames as numbered PNG files into a directory.
//
// Example:
//
//	seq, err := render.NewSequence("frames")
//	path, err := seq.Write(img) // frames/frame_00000.png
type Sequence struct {
	dir  string
	next int
}

// NewSequence creates dir if needed and returns a Sequence writing into it.
func NewSequence(dir string) (*Sequence, error) {
	if dir == "" {
		return nil, ErrNoDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create output dir: %w", err)
	}
	return &Sequence{dir: dir}, nil
}

// Dir returns the output directory.
func (s *Sequence) Dir() string { return s.dir }

// Count returns the number of frames written so far.
func (s *Sequence) Count() int { return s.next }

// Write saves img as the next frame and returns its path.
func (s *Sequence) Write(img image.Image) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("frame_%05d.png", s.next))
	if err := gg.FromImage(img).SavePNG(path); err != nil {
		return "", fmt.Errorf("render: write frame %d: %w", s.next, err)
	}
	s.next++
	return path, nil
}
