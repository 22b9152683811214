// SPDX-License-Identifier: EPL-2.0

package loopster

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/loopster/encode"
	"github.com/ik5/loopster/loop"
	"github.com/ik5/loopster/probe"
	"github.com/ik5/loopster/timing"
)

// DefaultLoopStart is the loop start used when a Job leaves it empty.
const DefaultLoopStart = "1"

// Job describes one track to turn into a loop.
type Job struct {
	Input  string
	Output string

	// Tempo.SampleRate 0 means "use the probed file's rate".
	Tempo timing.TempoMeter

	// LoopStart and LoopEnd are bar:beat:tick positions. LoopEnd marks the
	// end of the music without the tail.
	LoopStart string
	LoopEnd   string

	// Quality is the libvorbis -q:a value; nil uses encode.DefaultQuality.
	Quality *float64
	Tags    encode.Tags
}

func (j Job) quality() float64 {
	if j.Quality == nil {
		return encode.DefaultQuality
	}
	return *j.Quality
}

// Result is what a Job resolved to.
type Result struct {
	Job     Job
	Streams []probe.Stream

	// Source-coordinate loop points.
	LoopStartSample int64
	LoopEndSample   int64

	Plan loop.Plan
}

// Pipeline resolves, probes, plans and encodes Jobs.
type Pipeline struct {
	Prober  probe.Prober
	Encoder encode.Encoder

	// Done, when set, is called after each successful Run. It may be called
	// from several goroutines at once by RunBatch.
	Done func(ctx context.Context, res Result)
}

// Plan resolves the loop points of job against its probed input without
// encoding anything.
func (p Pipeline) Plan(ctx context.Context, job Job) (Result, error) {
	in, err := expandPath(job.Input)
	if err != nil {
		return Result{}, err
	}
	job.Input = in

	streams, err := p.Prober.Probe(ctx, job.Input)
	if err != nil {
		return Result{}, err
	}

	total, err := probe.TotalSamples(streams)
	if err != nil {
		return Result{}, err
	}

	rate := streams[0].SampleRate
	switch job.Tempo.SampleRate {
	case 0:
		job.Tempo.SampleRate = rate
	case rate:
	default:
		return Result{}, fmt.Errorf("%w: file is %d Hz, loop points computed for %d Hz",
			ErrSampleRateMismatch, rate, job.Tempo.SampleRate)
	}

	if job.LoopStart == "" {
		job.LoopStart = DefaultLoopStart
	}

	start, err := timing.Resolve(job.LoopStart, job.Tempo)
	if err != nil {
		return Result{}, fmt.Errorf("loop start: %w", err)
	}
	end, err := timing.Resolve(job.LoopEnd, job.Tempo)
	if err != nil {
		return Result{}, fmt.Errorf("loop end: %w", err)
	}

	plan, err := loop.New(total, start, end)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Job:             job,
		Streams:         streams,
		LoopStartSample: start,
		LoopEndSample:   end,
		Plan:            plan,
	}, nil
}

// Run plans job and encodes the stitched output.
func (p Pipeline) Run(ctx context.Context, job Job) (Result, error) {
	res, err := p.Plan(ctx, job)
	if err != nil {
		return Result{}, err
	}

	out, err := expandPath(res.Job.Output)
	if err != nil {
		return Result{}, err
	}
	res.Job.Output = out

	err = p.Encoder.Encode(ctx, encode.Request{
		Input:   res.Job.Input,
		Output:  res.Job.Output,
		Plan:    res.Plan,
		Quality: res.Job.quality(),
		Tags:    res.Job.Tags,
	})
	if err != nil {
		return Result{}, err
	}

	if p.Done != nil {
		p.Done(ctx, res)
	}

	return res, nil
}

// RunBatch runs jobs with at most limit running at once (no limit when
// limit <= 0). The first failure cancels the jobs that have not finished
// and is returned, prefixed with the failing job's input.
func (p Pipeline) RunBatch(ctx context.Context, jobs []Job, limit int) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	results := make([]Result, len(jobs))
	for i, job := range jobs {
		g.Go(func() error {
			res, err := p.Run(ctx, job)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Input, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// expandPath expands a leading ~ and makes path absolute, so external
// tools see the same file regardless of their working directory.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	return abs, nil
}
