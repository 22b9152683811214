// SPDX-License-Identifier: EPL-2.0

// Package vorbis probes Ogg Vorbis files for their sample rate and length.
//
// github.com/jfreymuth/oggvorbis reads the identification header and seeks
// to the last page, whose granule position is the exact sample count. No
// audio packets are decoded.
//
// Rendering to Ogg before looping is unusual but happens when a DAW export
// is already compressed; the loop is then re-encoded by ffmpeg.
package vorbis
