// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/loopster/probe"
)

// Prober reads the COMM chunk of an AIFF/AIFC file.
type Prober struct{}

func (Prober) ProbeReader(r io.ReadSeeker) (probe.Stream, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return probe.Stream{}, ErrNotAiffFile
	}

	dec.ReadInfo()

	return stream(dec.Format(), int64(dec.NumSampleFrames), int(dec.BitDepth))
}

func stream(format *goaudio.Format, frames int64, bitDepth int) (probe.Stream, error) {
	if format == nil || format.SampleRate <= 0 {
		return probe.Stream{}, ErrUnsupportedAiffLayout
	}

	return probe.Stream{
		CodecType:  "audio",
		CodecName:  fmt.Sprintf("pcm_s%dbe", bitDepth),
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		Duration:   float64(frames) / float64(format.SampleRate),
		Frames:     frames,
	}, nil
}
