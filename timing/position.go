// SPDX-License-Identifier: EPL-2.0

package timing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Position is a musical position. Bar and Beat are 1-based, Tick is 0-based.
type Position struct {
	Bar  int
	Beat int
	Tick int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Bar, p.Beat, p.Tick)
}

// ParsePosition parses "bar", "bar:beat" or "bar:beat:tick".
// Omitted components default to beat 1 and tick 0.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Position{}, fmt.Errorf("%w: %q has %d components", ErrFormat, s, len(parts))
	}

	vals := [3]int{1, 1, 0}
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return Position{}, fmt.Errorf("%w: %q: %w", ErrFormat, s, err)
		}
		vals[i] = n
	}

	p := Position{Bar: vals[0], Beat: vals[1], Tick: vals[2]}
	if p.Bar < 1 {
		return Position{}, fmt.Errorf("%w: %q: bar is 1-based", ErrFormat, s)
	}
	if p.Beat < 1 {
		return Position{}, fmt.Errorf("%w: %q: beat is 1-based", ErrFormat, s)
	}

	return p, nil
}

// parseComponent accepts plain decimal digits only, no sign or spaces.
func parseComponent(part string) (int, error) {
	if part == "" {
		return 0, errors.New("empty component")
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("component %q is not a non-negative integer", part)
		}
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("component %q: %w", part, err)
	}
	return n, nil
}

// Validate checks p against the meter: beat must fit in the bar and tick
// must fit in the beat.
func (p Position) Validate(tm TempoMeter) error {
	if p.Beat > tm.BeatsPerBar {
		return fmt.Errorf("%w: %s: beat %d exceeds %d beats per bar", ErrFormat, p, p.Beat, tm.BeatsPerBar)
	}
	if p.Tick >= tm.TicksPerBeat {
		return fmt.Errorf("%w: %s: tick %d exceeds %d ticks per beat", ErrFormat, p, p.Tick, tm.TicksPerBeat)
	}
	return nil
}

// Beats returns the number of beats elapsed from 1:1:0 to p.
func (p Position) Beats(tm TempoMeter) float64 {
	ticks := float64(p.Tick) / float64(tm.TicksPerBeat)
	return ticks + float64(p.Beat-1) + float64(p.Bar-1)*float64(tm.BeatsPerBar)
}

// Samples converts p to a sample index, rounding half to even.
// p and tm are assumed valid and the result must fit in an int64; Resolve
// checks both.
func (p Position) Samples(tm TempoMeter) int64 {
	return int64(p.samples(tm))
}

func (p Position) samples(tm TempoMeter) float64 {
	// Keep the evaluation order beats*60/bpm*rate; reordering changes
	// the last bit of some results and with it the rounding.
	return math.RoundToEven(p.Beats(tm) * 60 / tm.BPM * float64(tm.SampleRate))
}

// Resolve parses s and converts it to a sample index under tm.
func Resolve(s string, tm TempoMeter) (int64, error) {
	if err := tm.Validate(); err != nil {
		return 0, err
	}

	p, err := ParsePosition(s)
	if err != nil {
		return 0, err
	}

	if err := p.Validate(tm); err != nil {
		return 0, err
	}

	// float64(math.MaxInt64) is 2^63, the first value that does not convert.
	if n := p.samples(tm); math.IsNaN(n) || n >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("%w: %s at %v bpm is past the last addressable sample", ErrFormat, p, tm.BPM)
	}

	return p.Samples(tm), nil
}
