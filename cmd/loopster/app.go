// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/ik5/loopster"
	"github.com/ik5/loopster/encode"
	"github.com/ik5/loopster/formats"
	"github.com/ik5/loopster/internal/command"
	"github.com/ik5/loopster/internal/logging"
	"github.com/ik5/loopster/probe"
)

// app is what every command's Run receives.
type app struct {
	ctx      context.Context
	out      io.Writer
	pipeline loopster.Pipeline
}

func newApp(ctx context.Context, cli *CLI, out io.Writer, runner command.Runner) *app {
	a := &app{ctx: ctx, out: out}

	a.pipeline = loopster.Pipeline{
		Prober:  newProber(cli.Prober, probe.FFprobe{Path: cli.FFprobe, Runner: runner}),
		Encoder: encode.FFmpeg{Path: cli.FFmpeg, Runner: runner},
		Done:    a.written,
	}

	return a
}

func newProber(kind string, ffprobe probe.FFprobe) probe.Prober {
	switch kind {
	case "ffprobe":
		return ffprobe
	case "native":
		// Asked for explicitly, so MP3 is accepted despite its padding.
		return formats.RegisterMP3(formats.Registry())
	}
	return probe.Auto{Native: formats.Registry(), Fallback: ffprobe}
}

// inspect logs the probed streams and warns about a tail longer than the
// loop body.
func (a *app) inspect(res loopster.Result) {
	l := logging.FromContext(logging.WithTrack(a.ctx, filepath.Base(res.Job.Input)))

	for _, s := range res.Streams {
		l.Debug("stream",
			"index", s.Index,
			"codec", s.CodecName,
			"samplerate", s.SampleRate,
			"channels", s.Channels,
			"duration", s.Duration,
			"frames", s.Frames,
		)
	}
	l.Debug("plan", "plan", res.Plan.String())

	if res.Plan.Overlapping() {
		l.Warn("tail is longer than the loop body, the seam will not be clean",
			"tail", humanize.Comma(res.Plan.TailLength),
			"body", humanize.Comma(res.Plan.BodyLength),
		)
	}
}

// written is the pipeline's Done hook.
func (a *app) written(ctx context.Context, res loopster.Result) {
	a.inspect(res)

	attrs := []any{
		"output", res.Job.Output,
		"loopstart", humanize.Comma(res.Plan.LoopStart),
		"looplength", humanize.Comma(res.Plan.LoopLength),
	}
	if fi, err := os.Stat(res.Job.Output); err == nil {
		attrs = append(attrs, "size", humanize.Bytes(uint64(fi.Size())))
	}

	logging.FromContext(logging.WithTrack(ctx, filepath.Base(res.Job.Input))).Info("loop written", attrs...)
}

func printPlan(w io.Writer, res loopster.Result) {
	p := res.Plan
	rate := res.Job.Tempo.SampleRate

	fmt.Fprintf(w, "%-11s %s\n", "input", res.Job.Input)
	fmt.Fprintf(w, "%-11s %s samples (%.3fs at %d Hz)\n", "total",
		humanize.Comma(p.Total), float64(p.Total)/float64(rate), rate)
	fmt.Fprintf(w, "%-11s %s\n", "loop", fmt.Sprintf("%s..%s (%s..%s)",
		res.Job.LoopStart, res.Job.LoopEnd,
		humanize.Comma(res.LoopStartSample), humanize.Comma(res.LoopEndSample)))
	fmt.Fprintf(w, "%-11s %s\n", "intro", humanize.Comma(p.IntroLength))
	fmt.Fprintf(w, "%-11s %s\n", "body", humanize.Comma(p.BodyLength))
	fmt.Fprintf(w, "%-11s %s\n", "tail", humanize.Comma(p.TailLength))
	fmt.Fprintf(w, "%-11s %d\n", "LOOPSTART", p.LoopStart)
	fmt.Fprintf(w, "%-11s %d\n", "LOOPLENGTH", p.LoopLength)
	if graph := encode.FilterGraph(p.Tail); graph != "" {
		fmt.Fprintf(w, "%-11s %s\n", "filter", graph)
	}
}
