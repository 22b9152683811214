// SPDX-License-Identifier: EPL-2.0

package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/loopster"
	"github.com/ik5/loopster/encode"
	"github.com/ik5/loopster/timing"
)

// Settings can be given in defaults and overridden per track.
type Settings struct {
	BPM          float64  `yaml:"bpm"`
	BeatsPerBar  int      `yaml:"beats_per_bar"`
	TicksPerBeat int      `yaml:"ppq"`
	SampleRate   *int     `yaml:"samplerate"` // 0 uses the file's rate
	Quality      *float64 `yaml:"quality"`
	LoopStart    string   `yaml:"loop_start"`

	encode.Tags `yaml:",inline"`
}

type Track struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	LoopEnd string `yaml:"loop_end"`

	Settings `yaml:",inline"`
}

type Manifest struct {
	Defaults Settings `yaml:"defaults"`
	Tracks   []Track  `yaml:"tracks"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Dir = filepath.Dir(path)

	return m, nil
}

// Parse decodes a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if len(m.Tracks) == 0 {
		return nil, fmt.Errorf("%w: no tracks", ErrInvalid)
	}

	return &m, nil
}

// Jobs merges defaults into every track and returns one Job per track.
func (m *Manifest) Jobs() ([]loopster.Job, error) {
	jobs := make([]loopster.Job, 0, len(m.Tracks))

	for i, tr := range m.Tracks {
		if tr.Input == "" {
			return nil, fmt.Errorf("%w: track %d: input is required", ErrInvalid, i+1)
		}
		if tr.LoopEnd == "" {
			return nil, fmt.Errorf("%w: track %d (%s): loop_end is required", ErrInvalid, i+1, tr.Input)
		}

		s := merge(m.Defaults, tr.Settings)
		if s.BPM <= 0 {
			return nil, fmt.Errorf("%w: track %d (%s): bpm is required", ErrInvalid, i+1, tr.Input)
		}

		output := tr.Output
		if output == "" {
			output = strings.TrimSuffix(tr.Input, filepath.Ext(tr.Input)) + ".ogg"
		}

		jobs = append(jobs, loopster.Job{
			Input:  m.resolve(tr.Input),
			Output: m.resolve(output),
			Tempo: timing.TempoMeter{
				BPM:          s.BPM,
				BeatsPerBar:  s.BeatsPerBar,
				TicksPerBeat: s.TicksPerBeat,
				SampleRate:   *s.SampleRate,
			},
			LoopStart: s.LoopStart,
			LoopEnd:   tr.LoopEnd,
			Quality:   s.Quality,
			Tags:      s.Tags,
		})
	}

	return jobs, nil
}

func (m *Manifest) resolve(path string) string {
	if m.Dir == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "~") {
		return path
	}
	return filepath.Join(m.Dir, path)
}

// merge overlays track settings on defaults and fills what is still unset.
func merge(def, tr Settings) Settings {
	s := def

	if tr.BPM != 0 {
		s.BPM = tr.BPM
	}
	if tr.BeatsPerBar != 0 {
		s.BeatsPerBar = tr.BeatsPerBar
	}
	if tr.TicksPerBeat != 0 {
		s.TicksPerBeat = tr.TicksPerBeat
	}
	if tr.SampleRate != nil {
		s.SampleRate = tr.SampleRate
	}
	if tr.Quality != nil {
		s.Quality = tr.Quality
	}
	if tr.LoopStart != "" {
		s.LoopStart = tr.LoopStart
	}
	if tr.Title != "" {
		s.Title = tr.Title
	}
	if tr.Artist != "" {
		s.Artist = tr.Artist
	}
	if tr.Album != "" {
		s.Album = tr.Album
	}
	if tr.Year != "" {
		s.Year = tr.Year
	}

	if s.BeatsPerBar == 0 {
		s.BeatsPerBar = timing.DefaultBeatsPerBar
	}
	if s.TicksPerBeat == 0 {
		s.TicksPerBeat = timing.DefaultTicksPerBeat
	}
	if s.SampleRate == nil {
		rate := timing.DefaultSampleRate
		s.SampleRate = &rate
	}

	return s
}
