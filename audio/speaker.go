// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// speakerOutput plays on the system audio device.
type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

// NewSpeaker opens the system audio device at rate with a 100ms buffer and
// returns an engine playing on it. The device stays open for the process.
func NewSpeaker(rate beep.SampleRate) (*Engine, error) {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: open speaker: %w", err)
	}
	return New(rate, speakerOutput{}), nil
}

// Stop silences everything currently playing on the speaker.
func Stop() {
	speaker.Clear()
}
