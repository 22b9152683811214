// SPDX-License-Identifier: EPL-2.0

package probe

import (
	"context"
	"fmt"
	"io"
	"math"
)

// Stream describes one audio stream.
type Stream struct {
	Index      int
	CodecType  string
	CodecName  string
	SampleRate int
	Channels   int
	// Duration in seconds.
	Duration float64
	// Frames is the exact number of samples per channel when the prober
	// knows it, 0 otherwise.
	Frames int64
}

// Prober returns the audio streams of the file at path.
type Prober interface {
	Probe(ctx context.Context, path string) ([]Stream, error)
}

// FormatProber reads the stream description of one container format from
// an open file.
type FormatProber interface {
	ProbeReader(r io.ReadSeeker) (Stream, error)
}

// TotalSamples returns the length in samples of the only stream in streams.
// Exact frame counts are preferred; otherwise the length is
// floor(duration * sampleRate).
func TotalSamples(streams []Stream) (int64, error) {
	if len(streams) != 1 {
		return 0, fmt.Errorf("%w: expected a file with 1 audio stream, found %d streams", ErrMetadata, len(streams))
	}

	s := streams[0]
	if s.SampleRate <= 0 {
		return 0, fmt.Errorf("%w: missing sample rate", ErrMetadata)
	}

	if s.Frames > 0 {
		return s.Frames, nil
	}

	if s.Duration < 0 || math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) {
		return 0, fmt.Errorf("%w: invalid duration %v", ErrMetadata, s.Duration)
	}

	return int64(math.Floor(s.Duration * float64(s.SampleRate))), nil
}
