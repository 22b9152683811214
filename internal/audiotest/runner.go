// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds test helpers: a fake command runner and audio
// file fixtures.
package audiotest

import (
	"context"
	"slices"
	"sync"
)

// Call is one recorded Runner invocation.
type Call struct {
	Name string
	Args []string
}

// Runner is a fake command.Runner. It records every call and answers with
// Stdout and Err, or with OnRun when set.
type Runner struct {
	Stdout []byte
	Err    error
	OnRun  func(name string, args []string) ([]byte, error)

	mu    sync.Mutex
	Calls []Call
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	r.Calls = append(r.Calls, Call{Name: name, Args: slices.Clone(args)})
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.OnRun != nil {
		return r.OnRun(name, args)
	}
	return r.Stdout, r.Err
}

// CallCount is safe to use while other goroutines run commands.
func (r *Runner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.Calls)
}
