// SPDX-License-Identifier: EPL-2.0

// Package probe reads the stream metadata a loop plan needs: the sample rate
// and length of the single audio stream of a file.
//
// # Probers
//
// A Prober turns a path into stream descriptors. Two implementations exist:
//
//   - FFprobe runs the ffprobe tool and parses its JSON output.
//   - Registry dispatches on the file extension to in-process format
//     probers (see the formats subpackages) that only read headers.
//
// Auto combines both, preferring the in-process probers:
//
//	p := probe.Auto{Native: formats.Registry(), Fallback: probe.NewFFprobe()}
//	streams, err := p.Probe(ctx, "track.wav")
//	total, err := probe.TotalSamples(streams)
//
// # Errors
//
// TotalSamples and FFprobe wrap ErrMetadata when a file has zero or several
// audio streams or lacks a sample rate or duration. Registry wraps
// ErrUnsupportedFormat for unknown extensions.
package probe
