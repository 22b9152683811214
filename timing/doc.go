// SPDX-License-Identifier: EPL-2.0

// Package timing converts musical positions into sample indices.
//
// A position is written as bar:beat:tick. Bars and beats are 1-based and
// ticks are 0-based, so "1:1:0" is the very first sample of a track. Beat and
// tick may be omitted: "9" and "9:1" both mean "9:1:0".
//
// # Resolving
//
//	tm := timing.DefaultTempoMeter(120) // 4/4, 96 PPQ, 48 kHz
//	end, err := timing.Resolve("9:1:0", tm)
//	// end == 768000
//
// The conversion is
//
//	beats  = tick/ticksPerBeat + (beat-1) + (bar-1)*beatsPerBar
//	sample = round(beats * 60 / bpm * sampleRate)
//
// Rounding is half-to-even, so results are deterministic for ties.
//
// # Errors
//
// Malformed strings, and components that fall outside the meter (beat 5 in
// 4/4, tick 96 at 96 PPQ), wrap ErrFormat. A TempoMeter with non-positive
// fields wraps ErrInvalidTempo.
package timing
