// SPDX-License-Identifier: EPL-2.0

// Package aiff probes AIFF files for their sample rate and exact length.
//
// The COMM chunk is parsed with github.com/go-audio/aiff; it carries the
// number of sample frames directly, so no audio data is read.
//
//	f, _ := os.Open("dungeon.aiff")
//	stream, err := aiff.Prober{}.ProbeReader(f)
//
// ErrNotAiffFile is returned for anything that is not a FORM/AIFF container.
package aiff
