// SPDX-License-Identifier: EPL-2.0

// Package formats wires the in-process probers into a probe.Registry.
package formats

import (
	"github.com/ik5/loopster/formats/aiff"
	"github.com/ik5/loopster/formats/mp3"
	"github.com/ik5/loopster/formats/vorbis"
	"github.com/ik5/loopster/formats/wav"
	"github.com/ik5/loopster/probe"
)

// Registry returns the probers whose lengths match what ffmpeg decodes
// sample for sample: WAV, AIFF and Ogg Vorbis.
func Registry() *probe.Registry {
	r := probe.NewRegistry()
	r.Register("wav", wav.Prober{})
	r.Register("wave", wav.Prober{})
	r.Register("aif", aiff.Prober{})
	r.Register("aiff", aiff.Prober{})
	r.Register("ogg", vorbis.Prober{})
	r.Register("oga", vorbis.Prober{})
	return r
}

// RegisterMP3 adds the MP3 prober to r. See package mp3 for why it is not
// part of Registry.
func RegisterMP3(r *probe.Registry) *probe.Registry {
	r.Register("mp3", mp3.Prober{})
	return r
}
