// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/aiff"
	"github.com/go-audio/wav"
)

// WAV16 returns a canonical 44-byte-header PCM 16-bit WAV file holding
// frames frames of a ramp signal.
func WAV16(sampleRate, channels, frames int) []byte {
	blockAlign := channels * 2
	dataSize := frames * blockAlign

	out := make([]byte, 44+dataSize)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+dataSize))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(out[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], 16)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataSize))

	for i := range frames * channels {
		binary.LittleEndian.PutUint16(out[44+i*2:], uint16(int16(i%200-100)))
	}

	return out
}

func ramp(sampleRate, channels, bitDepth, frames int) *goaudio.IntBuffer {
	data := make([]int, frames*channels)
	for i := range data {
		data[i] = i%200 - 100
	}
	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// WriteWAV encodes a PCM WAV file with go-audio/wav into dir and returns
// its path.
func WriteWAV(t testing.TB, dir string, sampleRate, channels, bitDepth, frames int) string {
	t.Helper()

	path := filepath.Join(dir, "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	if err := enc.Write(ramp(sampleRate, channels, bitDepth, frames)); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close wav encoder: %v", err)
	}

	return path
}

// WriteAIFF encodes a PCM AIFF file with go-audio/aiff into dir and returns
// its path.
func WriteAIFF(t testing.TB, dir string, sampleRate, channels, bitDepth, frames int) string {
	t.Helper()

	path := filepath.Join(dir, "fixture.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := aiff.NewEncoder(f, sampleRate, bitDepth, channels)
	if err := enc.Write(ramp(sampleRate, channels, bitDepth, frames)); err != nil {
		t.Fatalf("encode aiff: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close aiff encoder: %v", err)
	}

	return path
}
