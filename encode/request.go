// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ik5/loopster/loop"
)

// DefaultQuality is the libvorbis -q:a value used when none is given.
const DefaultQuality = 7

// Tags are the optional descriptive tags written next to the loop tags.
type Tags struct {
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
	Album  string `yaml:"album"`
	Year   string `yaml:"year"`
}

// Request is one encoder invocation.
type Request struct {
	Input   string
	Output  string
	Plan    loop.Plan
	Quality float64
	Tags    Tags
}

func (r Request) Validate() error {
	if r.Input == "" || r.Output == "" {
		return fmt.Errorf("%w: input and output are required", ErrPaths)
	}
	if filepath.Clean(r.Input) == filepath.Clean(r.Output) {
		return fmt.Errorf("%w: output would overwrite input %s", ErrPaths, r.Input)
	}
	if r.Quality < -1 || r.Quality > 10 {
		return fmt.Errorf("%w: got %v", ErrQuality, r.Quality)
	}
	return nil
}

// Args returns the ffmpeg arguments for r, without the program name.
func Args(r Request) []string {
	args := []string{
		"-y",
		"-i", r.Input,
		"-q:a", strconv.FormatFloat(r.Quality, 'f', -1, 64),
	}

	if graph := FilterGraph(r.Plan.Tail); graph != "" {
		args = append(args, "-filter_complex", graph)
	}

	args = append(args,
		"-metadata", fmt.Sprintf("LOOPSTART=%d", r.Plan.LoopStart),
		"-metadata", fmt.Sprintf("LOOPLENGTH=%d", r.Plan.LoopLength),
	)

	for _, tag := range []struct{ key, value string }{
		{"TITLE", r.Tags.Title},
		{"ARTIST", r.Tags.Artist},
		{"ALBUM", r.Tags.Album},
		{"DATE", r.Tags.Year},
	} {
		if tag.value != "" {
			args = append(args, "-metadata", tag.key+"="+tag.value)
		}
	}

	return append(args, r.Output)
}
