// SPDX-License-Identifier: EPL-2.0

package timing

import (
	"fmt"
	"math"
)

const (
	DefaultBeatsPerBar  = 4
	DefaultTicksPerBeat = 96
	DefaultSampleRate   = 48000
)

// TempoMeter describes how musical time maps onto audio samples.
type TempoMeter struct {
	BPM          float64
	BeatsPerBar  int
	TicksPerBeat int // PPQ, also known as tick division
	SampleRate   int
}

// DefaultTempoMeter returns a 4/4, 96 PPQ, 48 kHz meter at bpm.
func DefaultTempoMeter(bpm float64) TempoMeter {
	return TempoMeter{
		BPM:          bpm,
		BeatsPerBar:  DefaultBeatsPerBar,
		TicksPerBeat: DefaultTicksPerBeat,
		SampleRate:   DefaultSampleRate,
	}
}

func (tm TempoMeter) Validate() error {
	switch {
	case !(tm.BPM > 0) || math.IsInf(tm.BPM, 1):
		return fmt.Errorf("%w: bpm must be positive, got %v", ErrInvalidTempo, tm.BPM)
	case tm.BeatsPerBar <= 0:
		return fmt.Errorf("%w: beats per bar must be positive, got %d", ErrInvalidTempo, tm.BeatsPerBar)
	case tm.TicksPerBeat <= 0:
		return fmt.Errorf("%w: ticks per beat must be positive, got %d", ErrInvalidTempo, tm.TicksPerBeat)
	case tm.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidTempo, tm.SampleRate)
	}
	return nil
}

// SamplesPerBeat is the exact (unrounded) length of one beat in samples.
func (tm TempoMeter) SamplesPerBeat() float64 {
	return 60 / tm.BPM * float64(tm.SampleRate)
}
