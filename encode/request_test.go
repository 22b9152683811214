// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/loopster/loop"
)

func mustPlan(t *testing.T, total, start, end int64) loop.Plan {
	t.Helper()

	p, err := loop.New(total, start, end)
	if err != nil {
		t.Fatalf("loop.New(%d, %d, %d) error = %v", total, start, end, err)
	}
	return p
}

func TestArgs(t *testing.T) {
	t.Parallel()

	r := Request{
		Input:   "/music/field.wav",
		Output:  "/music/field.ogg",
		Plan:    mustPlan(t, 108000, 0, 96000),
		Quality: 7,
		Tags: Tags{
			Title:  "Field",
			Artist: "Phana",
			Album:  "Overworld",
			Year:   "2024",
		},
	}

	want := []string{
		"-y",
		"-i", "/music/field.wav",
		"-q:a", "7",
		"-filter_complex", "[0]atrim=start_sample=0:end_sample=12000,asetpts=PTS-STARTPTS,adelay=delays=96000S:all=1[tail];[0][tail]amix=inputs=2:duration=longest:normalize=0",
		"-metadata", "LOOPSTART=12000",
		"-metadata", "LOOPLENGTH=96000",
		"-metadata", "TITLE=Field",
		"-metadata", "ARTIST=Phana",
		"-metadata", "ALBUM=Overworld",
		"-metadata", "DATE=2024",
		"/music/field.ogg",
	}

	if got := Args(r); !slices.Equal(got, want) {
		t.Errorf("Args() =\n  %q\nwant\n  %q", got, want)
	}
}

func TestArgs_NoTailNoTags(t *testing.T) {
	t.Parallel()

	r := Request{
		Input:   "in.wav",
		Output:  "out.ogg",
		Plan:    mustPlan(t, 96000, 24000, 96000),
		Quality: 4.5,
	}

	want := []string{
		"-y",
		"-i", "in.wav",
		"-q:a", "4.5",
		"-metadata", "LOOPSTART=24000",
		"-metadata", "LOOPLENGTH=72000",
		"out.ogg",
	}

	if got := Args(r); !slices.Equal(got, want) {
		t.Errorf("Args() =\n  %q\nwant\n  %q", got, want)
	}
}

func TestArgs_PartialTags(t *testing.T) {
	t.Parallel()

	r := Request{
		Input:   "in.wav",
		Output:  "out.ogg",
		Plan:    mustPlan(t, 100, 0, 100),
		Quality: DefaultQuality,
		Tags:    Tags{Year: "1999"},
	}

	got := Args(r)
	if !slices.Contains(got, "DATE=1999") {
		t.Errorf("Args() = %q, want DATE tag", got)
	}
	for _, unwanted := range []string{"TITLE=", "ARTIST=", "ALBUM="} {
		if slices.Contains(got, unwanted) {
			t.Errorf("Args() = %q, want no empty %s tag", got, unwanted)
		}
	}
	if got[len(got)-1] != "out.ogg" {
		t.Errorf("last arg = %q, want output path", got[len(got)-1])
	}
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	ok := Request{Input: "a.wav", Output: "a.ogg", Quality: 7}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	tests := []struct {
		name string
		r    Request
		want error
	}{
		{name: "no input", r: Request{Output: "a.ogg"}, want: ErrPaths},
		{name: "no output", r: Request{Input: "a.wav"}, want: ErrPaths},
		{name: "same file", r: Request{Input: "dir/a.ogg", Output: "dir/./a.ogg"}, want: ErrPaths},
		{name: "quality too high", r: Request{Input: "a.wav", Output: "a.ogg", Quality: 11}, want: ErrQuality},
		{name: "quality too low", r: Request{Input: "a.wav", Output: "a.ogg", Quality: -2}, want: ErrQuality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.r.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}
