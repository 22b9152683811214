// SPDX-License-Identifier: EPL-2.0

// Command loopster turns a rendered track into a seamlessly looping Ogg
// Vorbis file tagged with LOOPSTART and LOOPLENGTH.
//
//	loopster in.wav out.ogg 120 9:1:0
//	loopster make in.wav out.ogg 120 --loop-start 2 --loop-end 9
//	loopster plan in.wav 120 9
//	loopster samples 9:2:48 120
//	loopster batch loops.yaml -j 4
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ik5/loopster"
	"github.com/ik5/loopster/encode"
	"github.com/ik5/loopster/internal/command"
	"github.com/ik5/loopster/internal/logging"
	"github.com/ik5/loopster/manifest"
	"github.com/ik5/loopster/timing"
)

var errLoopEnd = errors.New("loop end")

// CLI defines the command-line interface for loopster.
type CLI struct {
	Verbose   bool   `short:"v" help:"Log debug output, including raw stream metadata. Overrides --log-level."`
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Log level (${enum})."`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log format (${enum})."`
	FFmpeg    string `name:"ffmpeg" env:"LOOPSTER_FFMPEG" default:"ffmpeg" help:"ffmpeg binary."`
	FFprobe   string `name:"ffprobe" env:"LOOPSTER_FFPROBE" default:"ffprobe" help:"ffprobe binary."`
	Prober    string `enum:"auto,ffprobe,native" default:"auto" help:"How input metadata is read (${enum})."`

	Make    MakeCmd    `cmd:"" default:"withargs" help:"Stitch the tail onto the loop and encode (default)."`
	Plan    PlanCmd    `cmd:"" help:"Print the loop regions without encoding."`
	Samples SamplesCmd `cmd:"" help:"Convert a bar:beat:tick position to a sample index."`
	Batch   BatchCmd   `cmd:"" help:"Run every track of a YAML manifest."`
}

type TempoFlags struct {
	BeatsPerBar int `short:"b" default:"${beats_per_bar}" help:"Beats per bar."`
	SampleRate  int `short:"r" name:"samplerate" default:"${samplerate}" help:"Sample rate positions are computed for. 0 uses the input's rate."`
	PPQ         int `name:"ppq" aliases:"tickdiv" default:"${ppq}" help:"Ticks per beat."`
}

func (f TempoFlags) tempo(bpm float64) timing.TempoMeter {
	return timing.TempoMeter{
		BPM:          bpm,
		BeatsPerBar:  f.BeatsPerBar,
		TicksPerBeat: f.PPQ,
		SampleRate:   f.SampleRate,
	}
}

type LoopFlags struct {
	LoopStart string `name:"loop-start" default:"${loop_start}" help:"Position where the loop begins."`
	LoopEnd   string `name:"loop-end" help:"Position where the music ends, before the tail."`

	TempoFlags `embed:""`
}

// end picks the loop end from the flag or the positional argument.
func (f LoopFlags) end(positional string) (string, error) {
	switch {
	case f.LoopEnd == "" && positional == "":
		return "", fmt.Errorf("%w is required", errLoopEnd)
	case f.LoopEnd != "" && positional != "" && f.LoopEnd != positional:
		return "", fmt.Errorf("%w given twice: %q and %q", errLoopEnd, positional, f.LoopEnd)
	case f.LoopEnd != "":
		return f.LoopEnd, nil
	}
	return positional, nil
}

// MakeCmd encodes one track.
type MakeCmd struct {
	Input  string  `arg:"" help:"Rendered track."`
	Output string  `arg:"" help:"Ogg Vorbis file to write."`
	BPM    float64 `arg:"" name:"bpm" help:"Tempo in beats per minute."`
	End    string  `arg:"" optional:"" help:"Loop end position, same as --loop-end."`

	Quality float64 `short:"q" default:"${quality}" help:"libvorbis quality, -1 to 10."`
	Title   string  `help:"TITLE tag."`
	Artist  string  `help:"ARTIST tag."`
	Album   string  `help:"ALBUM tag."`
	Year    string  `help:"DATE tag."`

	LoopFlags `embed:""`
}

func (c *MakeCmd) Run(a *app) error {
	end, err := c.end(c.End)
	if err != nil {
		return err
	}

	_, err = a.pipeline.Run(a.ctx, loopster.Job{
		Input:     c.Input,
		Output:    c.Output,
		Tempo:     c.tempo(c.BPM),
		LoopStart: c.LoopStart,
		LoopEnd:   end,
		Quality:   &c.Quality,
		Tags: encode.Tags{
			Title:  c.Title,
			Artist: c.Artist,
			Album:  c.Album,
			Year:   c.Year,
		},
	})
	return err
}

// PlanCmd is a dry run of MakeCmd.
type PlanCmd struct {
	Input string  `arg:"" help:"Rendered track."`
	BPM   float64 `arg:"" name:"bpm" help:"Tempo in beats per minute."`
	End   string  `arg:"" optional:"" help:"Loop end position, same as --loop-end."`

	LoopFlags `embed:""`
}

func (c *PlanCmd) Run(a *app) error {
	end, err := c.end(c.End)
	if err != nil {
		return err
	}

	res, err := a.pipeline.Plan(a.ctx, loopster.Job{
		Input:     c.Input,
		Tempo:     c.tempo(c.BPM),
		LoopStart: c.LoopStart,
		LoopEnd:   end,
	})
	if err != nil {
		return err
	}

	a.inspect(res)
	printPlan(a.out, res)
	return nil
}

// SamplesCmd prints the sample index of a position.
type SamplesCmd struct {
	Position string  `arg:"" help:"bar[:beat[:tick]]"`
	BPM      float64 `arg:"" name:"bpm" help:"Tempo in beats per minute."`

	TempoFlags `embed:""`
}

func (c *SamplesCmd) Run(a *app) error {
	n, err := timing.Resolve(c.Position, c.tempo(c.BPM))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, n)
	return nil
}

// BatchCmd runs a manifest.
type BatchCmd struct {
	Manifest string `arg:"" help:"YAML manifest."`
	Jobs     int    `short:"j" default:"0" help:"Tracks encoded at once. 0 uses one per CPU."`
}

func (c *BatchCmd) Run(a *app) error {
	m, err := manifest.Load(c.Manifest)
	if err != nil {
		return err
	}

	jobs, err := m.Jobs()
	if err != nil {
		return err
	}

	limit := c.Jobs
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	logging.Info("batch started", "manifest", c.Manifest, "tracks", len(jobs), "parallel", limit)
	for _, job := range jobs {
		logging.Debug("queued", "input", job.Input, "output", job.Output, "bpm", job.Tempo.BPM, "loop_end", job.LoopEnd)
	}

	results, err := a.pipeline.RunBatch(a.ctx, jobs, limit)
	if err != nil {
		return err
	}

	logging.Info("batch done", "written", len(results))
	return nil
}

func vars() kong.Vars {
	return kong.Vars{
		"beats_per_bar": strconv.Itoa(timing.DefaultBeatsPerBar),
		"samplerate":    strconv.Itoa(timing.DefaultSampleRate),
		"ppq":           strconv.Itoa(timing.DefaultTicksPerBeat),
		"quality":       strconv.Itoa(encode.DefaultQuality),
		"loop_start":    loopster.DefaultLoopStart,
	}
}

// run parses args, executes the selected command and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, runner command.Runner) int {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("loopster"),
		kong.Description("Make seamlessly looping Ogg Vorbis files from rendered tracks."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(stdout, stderr),
		vars(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "loopster: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "loopster: %v\n", err)
		return 2
	}

	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "loopster: %v\n", err)
		return 2
	}
	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "loopster: %v\n", err)
		return 2
	}
	logging.Init(stderr, logging.LevelFor(level, cli.Verbose), format)

	a := newApp(ctx, &cli, stdout, runner)
	if err := kctx.Run(a); err != nil {
		logging.Error("failed", "command", kctx.Command(), "error", err)
		return 1
	}

	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, command.Exec{})
	stop()
	os.Exit(code)
}
