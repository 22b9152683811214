// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/loopster/probe"
)

// go-mp3 always outputs 16-bit stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// mp3Reader is the part of gomp3.Decoder the prober needs, to allow testing.
type mp3Reader interface {
	SampleRate() int
	Length() int64
}

// Prober walks the MP3 frame headers to find the decoded length.
type Prober struct{}

func (Prober) ProbeReader(r io.ReadSeeker) (probe.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return probe.Stream{}, fmt.Errorf("%w", err)
	}

	return stream(dec)
}

func stream(dec mp3Reader) (probe.Stream, error) {
	length := dec.Length()
	if length < 0 {
		return probe.Stream{}, ErrUnknownLength
	}

	rate := dec.SampleRate()
	if rate <= 0 {
		return probe.Stream{}, fmt.Errorf("%w: sample rate %d", probe.ErrMetadata, rate)
	}

	frames := length / bytesPerFrame

	return probe.Stream{
		CodecType:  "audio",
		CodecName:  "mp3",
		SampleRate: rate,
		Channels:   channels,
		Duration:   float64(frames) / float64(rate),
		Frames:     frames,
	}, nil
}
