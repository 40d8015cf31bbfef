// This file is part of Lantern.
//
// Lantern is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Lantern is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Lantern.  If not, see <https://www.gnu.org/licenses/>.

// Package loader decodes WAV and MP3 files into audio buffers. Decoding is
// whole-file; the mixer works on in-memory recordings only.
//
// Stereo source files are reduced to mono by taking the left channel.
package loader

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/lanternengine/lantern/audio"
	"github.com/lanternengine/lantern/fault"
	"github.com/lanternengine/lantern/logger"
)

const logTag = "loader"

// Load decodes the file at path into a buffer. The format is chosen by file
// extension (.wav or .mp3) and the buffer is named after the file, extension
// stripped.
func Load(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fault.Errorf("loader: %v", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	switch strings.ToLower(ext) {
	case ".wav":
		return LoadWAV(name, f)
	case ".mp3":
		return LoadMP3(name, f)
	}

	return nil, fault.Errorf("loader: unsupported file type: %s", base)
}

// LoadWAV decodes a WAV stream into a buffer with the given name.
func LoadWAV(name string, r io.ReadSeeker) (*audio.Buffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fault.Errorf("loader: wav: not a valid wav file")
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fault.Errorf("loader: wav: %v", err)
	}

	samples := monoSamples(pcm.AsFloat32Buffer(), int(dec.NumChans), int(dec.BitDepth))

	logger.Logf(logTag, "%s: wav: %dHz, %d samples", name, dec.SampleRate, len(samples))

	return audio.NewBuffer(name, int(dec.SampleRate), samples)
}

// LoadMP3 decodes an MP3 stream into a buffer with the given name.
func LoadMP3(name string, r io.Reader) (*audio.Buffer, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fault.Errorf("loader: mp3: %v", err)
	}

	// the decoded stream is always 16bit little-endian stereo, four bytes
	// per frame. only the left channel is kept
	var samples []float32
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			s := int(int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8))
			samples = append(samples, float32(s)/32768)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fault.Errorf("loader: mp3: %v", err)
		}
	}

	logger.Logf(logTag, "%s: mp3: %dHz, %d samples", name, dec.SampleRate(), len(samples))

	return audio.NewBuffer(name, int(dec.SampleRate()), samples)
}

// monoSamples extracts the first channel of an interleaved buffer and
// normalizes it to [-1, 1] according to the source bit depth.
func monoSamples(buf *gaudio.Float32Buffer, numChans int, bitDepth int) []float32 {
	if numChans < 1 {
		numChans = 1
	}
	if bitDepth < 1 {
		bitDepth = 16
	}
	scale := float32(int(1) << (bitDepth - 1))

	samples := make([]float32, 0, len(buf.Data)/numChans)
	for i := 0; i < len(buf.Data); i += numChans {
		samples = append(samples, buf.Data[i]/scale)
	}
	return samples
}
