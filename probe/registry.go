// SPDX-License-Identifier: EPL-2.0

package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Registry maps file extensions (without the dot, lower case) to format
// probers. It implements Prober for registered extensions.
type Registry struct {
	probers map[string]FormatProber

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]FormatProber),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, p FormatProber) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[normalizeExt(ext)] = p
}

func (r *Registry) Get(ext string) (FormatProber, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[normalizeExt(ext)]
	return p, ok
}

// Supports reports whether a prober is registered for path's extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.Get(filepath.Ext(path))
	return ok
}

func (r *Registry) Probe(ctx context.Context, path string) ([]Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := filepath.Ext(path)
	p, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	s, err := p.ProbeReader(f)
	if err != nil {
		return nil, fmt.Errorf("probing %s: %w", path, err)
	}

	return []Stream{s}, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Auto probes with Native when it supports the file and with Fallback
// otherwise.
type Auto struct {
	Native   *Registry
	Fallback Prober
}

func (a Auto) Probe(ctx context.Context, path string) ([]Stream, error) {
	if a.Native != nil && a.Native.Supports(path) {
		return a.Native.Probe(ctx, path)
	}
	if a.Fallback == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return a.Fallback.Probe(ctx, path)
}
