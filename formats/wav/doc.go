// SPDX-License-Identifier: EPL-2.0

// Package wav probes WAV files for their sample rate and exact length.
//
// It uses github.com/go-audio/wav to walk the RIFF chunks. Only the fmt
// chunk and the data chunk header are read; the PCM payload is never
// decoded. Any PCM or IEEE float bit depth that is a whole number of bytes
// is supported, and extra chunks (LIST, bext, smpl) are skipped.
//
//	f, _ := os.Open("town.wav")
//	stream, err := wav.Prober{}.ProbeReader(f)
//	// stream.Frames is the exact sample count per channel
//
// # Errors
//
//   - ErrNotWavFile: the input is not RIFF/WAVE
//   - ErrNoPCMData: no data chunk was found
//   - ErrUnsupportedBitDepth: bit depth is not a multiple of 8
package wav
