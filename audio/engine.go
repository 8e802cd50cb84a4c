// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package audio plays breakout sound effects and music with beep.
//
// Sounds are decoded once, resampled to the engine rate and kept in memory,
// so Play never touches the disk. Engine implements breakout.SoundPlayer.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"

	"github.com/gogpu/breakout"
)

// DefaultSampleRate is the output rate used by NewSpeaker callers that do not
// care.
const DefaultSampleRate = beep.SampleRate(44100)

// resampleQuality is the beep resampling quality for loaded sounds.
const resampleQuality = 4

var (
	// ErrUnsupportedFormat is returned for files that are neither WAV nor MP3.
	ErrUnsupportedFormat = errors.New("audio: unsupported sound format")

	// ErrEmptySound is returned when a sound decodes to no samples.
	ErrEmptySound = errors.New("audio: sound has no samples")
)

// Output receives the streamers the engine starts. The speaker package
// satisfies it; tests use a recorder.
type Output interface {
	Play(s ...beep.Streamer)
}

// Engine holds decoded sounds and starts them on an Output.
// It is safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	out    Output
	sounds map[string]*beep.Buffer
	volume float64
	muted  bool
	warned map[string]bool
}

var _ breakout.SoundPlayer = (*Engine)(nil)

// New returns an engine that plays on out at the given sample rate.
func New(rate beep.SampleRate, out Output) *Engine {
	return &Engine{
		rate:   rate,
		out:    out,
		sounds: make(map[string]*beep.Buffer),
		warned: make(map[string]bool),
	}
}

// SampleRate returns the rate all sounds are resampled to.
func (e *Engine) SampleRate() beep.SampleRate { return e.rate }

// SetVolume sets the playback gain in powers of two: 0 is unchanged,
// -1 is half as loud. It applies to sounds started afterwards.
func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	e.volume = v
	e.mu.Unlock()
}

// SetMuted silences sounds started afterwards.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
}

// Load decodes the WAV or MP3 file at path and registers it as name.
func (e *Engine) Load(name, path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("audio: open %s: %w", name, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		_ = f.Close()
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("audio: decode %s: %w", name, err)
	}
	defer func() { _ = stream.Close() }()

	buf, err := e.buffer(stream, format)
	if err != nil {
		return fmt.Errorf("audio: %s: %w", name, err)
	}

	e.mu.Lock()
	e.sounds[name] = buf
	delete(e.warned, name)
	e.mu.Unlock()

	breakout.Logger().Debug("sound loaded", "name", name, "path", path, "samples", buf.Len())
	return nil
}

// Add registers the samples of s, recorded at format, as name.
func (e *Engine) Add(name string, s beep.Streamer, format beep.Format) error {
	buf, err := e.buffer(s, format)
	if err != nil {
		return fmt.Errorf("audio: %s: %w", name, err)
	}
	e.mu.Lock()
	e.sounds[name] = buf
	delete(e.warned, name)
	e.mu.Unlock()
	return nil
}

// buffer drains s into memory at the engine rate.
func (e *Engine) buffer(s beep.Streamer, format beep.Format) (*beep.Buffer, error) {
	if format.SampleRate != e.rate {
		s = beep.Resample(resampleQuality, format.SampleRate, e.rate, s)
		format.SampleRate = e.rate
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, ErrEmptySound
	}
	return buf, nil
}

// LoadDir registers every .wav and .mp3 file in dir under its base name
// without extension. It returns the number of sounds loaded; failures are
// joined into the error and do not stop the scan.
func (e *Engine) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("audio: read dir: %w", err)
	}
	var errs []error
	n := 0
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".wav" && ext != ".mp3") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if err := e.Load(name, filepath.Join(dir, entry.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

// Has reports whether a sound is registered as name.
func (e *Engine) Has(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.sounds[name]
	return ok
}

// Play starts the sound registered as name; loop repeats it forever.
// Unknown names are logged once and ignored.
func (e *Engine) Play(name string, loop bool) {
	e.mu.Lock()
	buf, ok := e.sounds[name]
	first := !ok && !e.warned[name]
	if !ok {
		e.warned[name] = true
	}
	volume, muted := e.volume, e.muted
	e.mu.Unlock()

	if !ok {
		if first {
			breakout.Logger().Warn("sound not loaded", "name", name)
		}
		return
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	if volume != 0 || muted {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: volume, Silent: muted}
	}
	e.out.Play(s)
}
