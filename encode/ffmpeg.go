// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"context"
	"fmt"

	"github.com/ik5/loopster/internal/command"
)

// Encoder writes the stitched output described by a Request.
type Encoder interface {
	Encode(ctx context.Context, r Request) error
}

// FFmpeg encodes with the ffmpeg tool.
type FFmpeg struct {
	// Path of the ffmpeg binary.
	Path   string
	Runner command.Runner
}

func NewFFmpeg() FFmpeg {
	return FFmpeg{Path: "ffmpeg", Runner: command.Exec{}}
}

func (f FFmpeg) Encode(ctx context.Context, r Request) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if _, err := f.Runner.Run(ctx, f.Path, Args(r)...); err != nil {
		return fmt.Errorf("encoding %s: %w", r.Output, err)
	}

	return nil
}
