// SPDX-License-Identifier: EPL-2.0

// Package mp3 probes MP3 files for their sample rate and decoded length.
//
// The length comes from github.com/hajimehoshi/go-mp3, which scans every
// frame header of a seekable input. go-mp3 does not apply LAME gapless
// trimming, so for encoder-delayed files its count can differ by about a
// thousand samples from what ffmpeg decodes. For that reason the default
// registry leaves mp3 to ffprobe and this prober is only registered when
// native probing is requested explicitly.
package mp3
