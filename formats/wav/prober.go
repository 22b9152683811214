// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/loopster/probe"
)

// Prober reads the fmt and data chunk headers of a RIFF/WAVE file.
// Sample data is skipped, not decoded.
type Prober struct{}

func (Prober) ProbeReader(r io.ReadSeeker) (probe.Stream, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return probe.Stream{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return probe.Stream{}, ErrNotWavFile
	}

	format := dec.Format()
	bitDepth := int(dec.BitDepth)

	if err := dec.FwdToPCM(); err != nil {
		return probe.Stream{}, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}

	frames, err := frameCount(dec.PCMLen(), format.NumChannels, bitDepth)
	if err != nil {
		return probe.Stream{}, err
	}

	return probe.Stream{
		CodecType:  "audio",
		CodecName:  codecName(dec.WavAudioFormat, bitDepth),
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		Duration:   float64(frames) / float64(format.SampleRate),
		Frames:     frames,
	}, nil
}

func frameCount(pcmLen int64, channels, bitDepth int) (int64, error) {
	if bitDepth <= 0 || bitDepth%8 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if channels <= 0 {
		return 0, fmt.Errorf("%w: %d channels", probe.ErrMetadata, channels)
	}
	return pcmLen / int64(channels*bitDepth/8), nil
}

// codecName follows ffprobe's naming so logs look the same whichever
// prober ran.
func codecName(audioFormat uint16, bitDepth int) string {
	switch audioFormat {
	case 3:
		return fmt.Sprintf("pcm_f%dle", bitDepth)
	case 1, 0xFFFE:
		if bitDepth == 8 {
			return "pcm_u8"
		}
		return fmt.Sprintf("pcm_s%dle", bitDepth)
	}
	return fmt.Sprintf("wav_0x%04x", audioFormat)
}
