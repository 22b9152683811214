// SPDX-License-Identifier: EPL-2.0

package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ik5/loopster/internal/command"
)

// FFprobe probes files with the ffprobe tool.
type FFprobe struct {
	// Path of the ffprobe binary.
	Path   string
	Runner command.Runner
}

func NewFFprobe() FFprobe {
	return FFprobe{Path: "ffprobe", Runner: command.Exec{}}
}

func (f FFprobe) Probe(ctx context.Context, path string) ([]Stream, error) {
	out, err := f.Runner.Run(ctx, f.Path,
		"-v", "quiet",
		"-of", "json",
		"-show_streams",
		"-select_streams", "a",
		"-i", path,
	)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return ParseStreams(out)
}

type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeStream struct {
	Index      int     `json:"index"`
	CodecName  string  `json:"codec_name"`
	CodecType  string  `json:"codec_type"`
	SampleRate *string `json:"sample_rate"`
	Channels   int     `json:"channels"`
	Duration   *string `json:"duration"`
}

// ParseStreams parses the JSON written by ffprobe -of json -show_streams.
func ParseStreams(data []byte) ([]Stream, error) {
	var out ffprobeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: decoding ffprobe output: %w", ErrMetadata, err)
	}

	streams := make([]Stream, 0, len(out.Streams))
	for _, raw := range out.Streams {
		if raw.SampleRate == nil {
			return nil, fmt.Errorf("%w: file missing required metadata: sample_rate", ErrMetadata)
		}
		if raw.Duration == nil {
			return nil, fmt.Errorf("%w: file missing required metadata: duration", ErrMetadata)
		}

		rate, err := strconv.Atoi(*raw.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("%w: sample_rate %q: %w", ErrMetadata, *raw.SampleRate, err)
		}
		dur, err := strconv.ParseFloat(*raw.Duration, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: duration %q: %w", ErrMetadata, *raw.Duration, err)
		}

		streams = append(streams, Stream{
			Index:      raw.Index,
			CodecType:  raw.CodecType,
			CodecName:  raw.CodecName,
			SampleRate: rate,
			Channels:   raw.Channels,
			Duration:   dur,
		})
	}

	return streams, nil
}
