// SPDX-License-Identifier: EPL-2.0

// Package loopster turns rendered, non-looping music tracks into seamlessly
// looping Ogg Vorbis files tagged with LOOPSTART and LOOPLENGTH, the tags
// RPG Maker style audio players use to find the loop.
//
// A track is rendered from a DAW with its reverb and effect tail after the
// musical loop end. loopster copies the start of the loop body over that
// tail and moves the loop point forward by the tail length, so the decay
// plays into the repeat instead of being cut off.
//
// # Quick Start
//
//	pipe := loopster.Pipeline{
//	    Prober:  probe.Auto{Native: formats.Registry(), Fallback: probe.NewFFprobe()},
//	    Encoder: encode.NewFFmpeg(),
//	}
//
//	res, err := pipe.Run(ctx, loopster.Job{
//	    Input:   "town.wav",
//	    Output:  "town.ogg",
//	    Tempo:   timing.DefaultTempoMeter(120),
//	    LoopEnd: "9:1:0", // 8 bars
//	})
//
//	// res.Plan.LoopStart and res.Plan.LoopLength were written as tags.
//
// # Packages
//
//   - timing: bar:beat:tick positions to sample indices
//   - loop: intro/body/tail layout and the stitching offsets
//   - probe and formats: stream metadata via ffprobe or in-process probers
//   - encode: ffmpeg filter graph, arguments and invocation
//   - manifest: YAML batch files
//
// The timing and loop packages are pure and safe for concurrent use.
// Pipeline.RunBatch processes many tracks in parallel.
package loopster
