// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/loopster/internal/audiotest"
)

// These tests replace the global logger, so none of them run in parallel.

func ffprobeJSON(sampleRate int, duration string) []byte {
	return fmt.Appendf(nil, `{"streams": [{"index": 0, "codec_name": "pcm_s16le", "codec_type": "audio", "sample_rate": "%d", "channels": 2, "duration": "%s"}]}`,
		sampleRate, duration)
}

func fakeTools(stdout []byte) *audiotest.Runner {
	return &audiotest.Runner{
		OnRun: func(name string, args []string) ([]byte, error) {
			if strings.HasSuffix(name, "ffprobe") {
				return stdout, nil
			}
			return nil, nil
		},
	}
}

func runCLI(t *testing.T, runner *audiotest.Runner, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut, runner)
	return code, out.String(), errOut.String()
}

// planValue returns the value printed for key by the plan command.
func planValue(out, key string) string {
	for line := range strings.Lines(out) {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == key {
			return fields[1]
		}
	}
	return ""
}

func ffmpegArgs(t *testing.T, runner *audiotest.Runner) []string {
	t.Helper()

	for _, c := range runner.Calls {
		if strings.HasSuffix(c.Name, "ffmpeg") {
			return c.Args
		}
	}
	t.Fatalf("ffmpeg was not run, calls: %+v", runner.Calls)
	return nil
}

func TestSamples(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"samples", "9:1:0", "120"}, "768000"},
		{[]string{"samples", "9", "120"}, "768000"},
		{[]string{"samples", "1:1:48", "120"}, "12000"},
		{[]string{"samples", "2", "120", "-b", "3", "-r", "44100"}, "66150"},
		{[]string{"samples", "1:1:240", "120", "--tickdiv", "480"}, "12000"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, out, stderr := runCLI(t, nil, tt.args...)
			if code != 0 {
				t.Fatalf("exit code = %d, stderr: %s", code, stderr)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSamples_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"samples", "1:x", "120"},
		{"samples", "1:5", "120"},
		{"samples", "1", "0"},
		{"samples", "1000000000000000", "120"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, _, stderr := runCLI(t, nil, args...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if stderr == "" {
				t.Error("nothing written to stderr")
			}
		})
	}
}

func TestPlan(t *testing.T) {
	runner := fakeTools(ffprobeJSON(48000, "20.000000"))

	code, out, stderr := runCLI(t, runner, "--prober=ffprobe", "plan", "/music/town.wav", "120", "9")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	want := map[string]string{
		"intro":      "0",
		"body":       "768,000",
		"tail":       "192,000",
		"LOOPSTART":  "192000",
		"LOOPLENGTH": "768000",
	}
	for key, v := range want {
		if got := planValue(out, key); got != v {
			t.Errorf("%s = %q, want %q\n%s", key, got, v, out)
		}
	}
	if !strings.Contains(out, "atrim=start_sample=0:end_sample=192000") {
		t.Errorf("filter missing from plan:\n%s", out)
	}

	for _, c := range runner.Calls {
		if strings.HasSuffix(c.Name, "ffmpeg") {
			t.Error("plan ran ffmpeg")
		}
	}
}

func TestPlan_NativeProber(t *testing.T) {
	// 2.5 s at 48 kHz, no ffprobe needed.
	path := audiotest.WriteWAV(t, t.TempDir(), 48000, 2, 16, 120000)

	code, out, stderr := runCLI(t, nil, "--prober=native", "plan", path, "120", "--loop-end=2")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if got := planValue(out, "LOOPSTART"); got != "24000" {
		t.Errorf("LOOPSTART = %q, want 24000\n%s", got, out)
	}
}

func TestPlan_WarnsOnLongTail(t *testing.T) {
	// Body of one beat (24000), tail of 48000.
	runner := fakeTools(ffprobeJSON(48000, "3.000000"))

	code, _, stderr := runCLI(t, runner, "--prober=ffprobe", "plan", "/music/a.wav", "120",
		"--loop-start=1:4", "--loop-end=2")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stderr, "tail is longer than the loop body") {
		t.Errorf("no overlap warning, stderr: %s", stderr)
	}
}

func TestMake_Positional(t *testing.T) {
	runner := fakeTools(ffprobeJSON(48000, "20.000000"))

	code, _, stderr := runCLI(t, runner, "--prober=ffprobe",
		"/music/town.wav", "/music/town.ogg", "120", "9:1:0", "--title=Town", "-q", "5")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	args := ffmpegArgs(t, runner)
	for _, want := range []string{"LOOPSTART=192000", "LOOPLENGTH=768000", "TITLE=Town", "/music/town.ogg"} {
		if !slices.Contains(args, want) {
			t.Errorf("ffmpeg args %q missing %q", args, want)
		}
	}
	if i := slices.Index(args, "-q:a"); i < 0 || args[i+1] != "5" {
		t.Errorf("ffmpeg args %q, want -q:a 5", args)
	}
	if !strings.Contains(stderr, "loop written") {
		t.Errorf("no completion log, stderr: %s", stderr)
	}
}

func TestMake_ToolPathsFromEnv(t *testing.T) {
	t.Setenv("LOOPSTER_FFMPEG", "/opt/ff/ffmpeg")
	t.Setenv("LOOPSTER_FFPROBE", "/opt/ff/ffprobe")

	runner := fakeTools(ffprobeJSON(48000, "20.000000"))

	code, _, stderr := runCLI(t, runner, "--prober=ffprobe", "make", "/music/town.wav", "/music/town.ogg", "120", "--loop-end=9")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	var names []string
	for _, c := range runner.Calls {
		names = append(names, c.Name)
	}
	if !slices.Equal(names, []string{"/opt/ff/ffprobe", "/opt/ff/ffmpeg"}) {
		t.Errorf("tools run = %q", names)
	}
}

func TestMake_LoopEndErrors(t *testing.T) {
	tests := map[string][]string{
		"missing":     {"make", "/music/a.wav", "/music/a.ogg", "120"},
		"conflicting": {"make", "/music/a.wav", "/music/a.ogg", "120", "9", "--loop-end=8"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			runner := fakeTools(ffprobeJSON(48000, "20.000000"))

			code, _, stderr := runCLI(t, runner, append([]string{"--prober=ffprobe"}, args...)...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr, "loop end") {
				t.Errorf("stderr = %q, want loop end error", stderr)
			}
			if runner.CallCount() != 0 {
				t.Errorf("tools were run: %+v", runner.Calls)
			}
		})
	}
}

func TestMake_TooShort(t *testing.T) {
	runner := fakeTools(ffprobeJSON(48000, "10.000000"))

	code, _, _ := runCLI(t, runner, "--prober=ffprobe", "/music/a.wav", "/music/a.ogg", "120", "9")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loops.yaml")
	data := `
defaults:
  bpm: 120
  album: Overworld
tracks:
  - input: town.wav
    loop_end: "9"
  - input: field.wav
    loop_end: "5"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	runner := fakeTools(ffprobeJSON(48000, "20.000000"))

	code, _, stderr := runCLI(t, runner, "--prober=ffprobe", "batch", path, "-j", "2")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if got := runner.CallCount(); got != 4 {
		t.Errorf("tool calls = %d, want 4", got)
	}
}

func TestBatch_MissingManifest(t *testing.T) {
	code, _, _ := runCLI(t, nil, "batch", filepath.Join(t.TempDir(), "none.yaml"))
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestUsageError(t *testing.T) {
	code, _, stderr := runCLI(t, nil, "samples", "9", "120", "--no-such-flag")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr, "no-such-flag") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestLogFormatJSON(t *testing.T) {
	runner := fakeTools(ffprobeJSON(48000, "20.000000"))

	code, _, stderr := runCLI(t, runner, "--log-format=json", "--prober=ffprobe", "/music/a.wav", "/music/a.ogg", "120", "9")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if !strings.HasPrefix(strings.TrimSpace(stderr), "{") {
		t.Errorf("stderr is not JSON: %s", stderr)
	}
}

func TestLogLevel(t *testing.T) {
	runner := fakeTools(ffprobeJSON(48000, "20.000000"))

	code, _, stderr := runCLI(t, runner, "--log-level=error", "--prober=ffprobe", "/music/a.wav", "/music/a.ogg", "120", "9")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want nothing below error level", stderr)
	}
}

func TestBatch_VerboseListsJobs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loops.yaml")
	data := "defaults:\n  bpm: 120\ntracks:\n  - input: town.wav\n    loop_end: \"9\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	runner := fakeTools(ffprobeJSON(48000, "20.000000"))

	code, _, stderr := runCLI(t, runner, "-v", "--log-level=warn", "--prober=ffprobe", "batch", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stderr, "queued") || !strings.Contains(stderr, "town.wav") {
		t.Errorf("stderr = %q, want queued job at debug level", stderr)
	}
}
