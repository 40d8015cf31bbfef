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

package loader_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/lanternengine/lantern/audio/loader"
	"github.com/lanternengine/lantern/test"
)

// wavFile builds a minimal 16bit PCM WAV file in memory.
func wavFile(sampleRate int, numChans int, samples []int16) []byte {
	var buf bytes.Buffer
	dataLen := len(samples) * 2

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(numChans))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*numChans*2))
	binary.Write(&buf, binary.LittleEndian, uint16(numChans*2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

func TestLoadWAV(t *testing.T) {
	w := wavFile(48000, 1, []int16{0, 16384, -16384, 32767})

	buf, err := loader.LoadWAV("blip", bytes.NewReader(w))
	test.ExpectedSuccess(t, err)

	test.Equate(t, buf.Name, "blip")
	test.Equate(t, buf.SampleRate, 48000)
	test.Equate(t, len(buf.Samples), 4)
	test.ApproxEquate(t, buf.Samples[0], 0, 1e-6)
	test.ApproxEquate(t, buf.Samples[1], 0.5, 1e-6)
	test.ApproxEquate(t, buf.Samples[2], -0.5, 1e-6)
	test.ApproxEquate(t, buf.Samples[3], 1, 1e-3)
}

func TestLoadWAVStereoTakesLeftChannel(t *testing.T) {
	// interleaved L/R pairs; the right channel is ignored
	w := wavFile(44100, 2, []int16{16384, 0, -16384, 0})

	buf, err := loader.LoadWAV("blip", bytes.NewReader(w))
	test.ExpectedSuccess(t, err)

	test.Equate(t, buf.SampleRate, 44100)
	test.Equate(t, len(buf.Samples), 2)
	test.ApproxEquate(t, buf.Samples[0], 0.5, 1e-6)
	test.ApproxEquate(t, buf.Samples[1], -0.5, 1e-6)
}

func TestLoadWAVInvalid(t *testing.T) {
	_, err := loader.LoadWAV("bad", bytes.NewReader([]byte("not a wav file")))
	test.ExpectedFailure(t, err)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blip.ogg")
	if err := os.WriteFile(path, []byte{0}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := loader.Load(path)
	test.ExpectedFailure(t, err)
}

func TestLoadNamesBufferAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explosion.wav")
	if err := os.WriteFile(path, wavFile(48000, 1, []int16{1, 2, 3}), 0644); err != nil {
		t.Fatal(err)
	}

	buf, err := loader.Load(path)
	test.ExpectedSuccess(t, err)
	test.Equate(t, buf.Name, "explosion")
}
