// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/loopster/probe"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
}

// Prober reads the identification header and the final granule position
// of an Ogg Vorbis stream.
type Prober struct{}

func (Prober) ProbeReader(r io.ReadSeeker) (probe.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return probe.Stream{}, fmt.Errorf("%w", err)
	}

	return stream(dec)
}

func stream(dec oggReader) (probe.Stream, error) {
	frames := dec.Length()
	if frames <= 0 {
		return probe.Stream{}, ErrUnknownLength
	}

	rate := dec.SampleRate()
	if rate <= 0 {
		return probe.Stream{}, fmt.Errorf("%w: sample rate %d", probe.ErrMetadata, rate)
	}

	return probe.Stream{
		CodecType:  "audio",
		CodecName:  "vorbis",
		SampleRate: rate,
		Channels:   dec.Channels(),
		Duration:   float64(frames) / float64(rate),
		Frames:     frames,
	}, nil
}
