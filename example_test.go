// SPDX-License-Identifier: EPL-2.0

package loopster_test

import (
	"context"
	"fmt"

	"github.com/ik5/loopster"
	"github.com/ik5/loopster/probe"
	"github.com/ik5/loopster/timing"
)

// fixedProber reports a 2.25 second, 48 kHz stream for every path.
type fixedProber struct{}

func (fixedProber) Probe(ctx context.Context, path string) ([]probe.Stream, error) {
	return []probe.Stream{{SampleRate: 48000, Duration: 2.25}}, nil
}

// ExamplePipeline_Plan plans a two bar loop with a quarter second tail.
func ExamplePipeline_Plan() {
	pipe := loopster.Pipeline{Prober: fixedProber{}}

	res, err := pipe.Plan(context.Background(), loopster.Job{
		Input:   "town.wav",
		Tempo:   timing.DefaultTempoMeter(120),
		LoopEnd: "2:1:0",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.Plan)
	// Output: intro=0 body=96000 tail=12000 loopstart=12000 looplength=96000
}
