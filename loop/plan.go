// SPDX-License-Identifier: EPL-2.0

package loop

import "fmt"

// TailFilter holds the offsets of the "copy, delay and mix" step: samples
// [TrimStart, TrimEnd) of the source are delayed by Delay samples and mixed
// back over the source.
//
// The copied segment is the start of the loop body, not the rendered tail:
// mixed over the tail it becomes what plays just before the loop point.
type TailFilter struct {
	TrimStart int64
	TrimEnd   int64
	Delay     int64
}

// Len is the number of samples the filter copies.
func (f TailFilter) Len() int64 { return f.TrimEnd - f.TrimStart }

// Plan is the derived layout of a loop. All values are sample counts.
type Plan struct {
	Total       int64
	IntroLength int64
	BodyLength  int64
	TailLength  int64

	// LoopStart and LoopLength are in stitched-output coordinates and are
	// written to the LOOPSTART and LOOPLENGTH tags.
	LoopStart  int64
	LoopLength int64

	Tail TailFilter
}

// New plans a loop over a track of total samples whose musical loop runs
// from loopStart (inclusive) to loopEnd (exclusive).
func New(total, loopStart, loopEnd int64) (Plan, error) {
	switch {
	case loopStart < 0:
		return Plan{}, fmt.Errorf("%w: loop start %d is negative", ErrRange, loopStart)
	case loopStart > loopEnd:
		return Plan{}, fmt.Errorf("%w: loop start %d is after loop end %d", ErrRange, loopStart, loopEnd)
	case loopEnd > total:
		return Plan{}, fmt.Errorf("%w: loop end %d is past the end of the track (%d samples)", ErrRange, loopEnd, total)
	}

	intro := loopStart
	body := loopEnd - loopStart
	tail := total - loopEnd

	return Plan{
		Total:       total,
		IntroLength: intro,
		BodyLength:  body,
		TailLength:  tail,
		LoopStart:   intro + tail,
		LoopLength:  body,
		Tail: TailFilter{
			TrimStart: loopStart,
			TrimEnd:   loopStart + tail,
			Delay:     intro + body,
		},
	}, nil
}

// LoopEnd is the exclusive end of the loop in stitched-output coordinates.
func (p Plan) LoopEnd() int64 { return p.LoopStart + p.LoopLength }

// HasTail reports whether there is anything to stitch. A track rendered
// without a tail loops as-is.
func (p Plan) HasTail() bool { return p.TailLength > 0 }

// Overlapping reports whether the tail is longer than the body. The copied
// segment then runs past loopEnd into the tail itself and the seam is no
// longer clean.
func (p Plan) Overlapping() bool { return p.TailLength > p.BodyLength }

func (p Plan) String() string {
	return fmt.Sprintf("intro=%d body=%d tail=%d loopstart=%d looplength=%d",
		p.IntroLength, p.BodyLength, p.TailLength, p.LoopStart, p.LoopLength)
}
