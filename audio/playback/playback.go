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

// Package playback feeds mixed chunks to an SDL audio device.
//
// The game thread pushes chunks into a single-producer single-consumer frame
// ring with QueueChunk; a pump goroutine drains the ring into the SDL audio
// queue, keeping the device queue short so that latency stays bounded. The
// two sides share nothing but the ring and its atomic cursors.
package playback

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/lanternengine/lantern/audio"
	"github.com/lanternengine/lantern/fault"
	"github.com/lanternengine/lantern/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const logTag = "playback"

// the pump keeps this many chunks queued on the device. two chunks at
// 48000Hz is around 21ms of device-side latency
const deviceQueueChunks = 2

// 2 channels * 4 bytes per sample
const bytesPerFrame = 8

// Playback owns the SDL audio device and the frame ring in front of it.
type Playback struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	ring frameRing

	// pump-side copy of the most recent frame, the starting point of the
	// underrun fade
	lastFrame audio.Frame

	quit chan struct{}
	done chan struct{}
}

// NewPlayback is the preferred method of initialisation for the Playback
// type. The device is opened at the mixer's sample rate and starts
// immediately; until the first chunk is queued it plays silence.
func NewPlayback(sampleRate int) (*Playback, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fault.Errorf("playback: %v", err)
	}

	pb := &Playback{
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 2,
		Samples:  uint16(audio.ChunkFrames),
	}

	var err error
	pb.id, err = sdl.OpenAudioDevice("", false, spec, &pb.spec, 0)
	if err != nil {
		return nil, fault.Errorf("playback: %v", err)
	}

	logger.Logf(logTag, "device open: %dHz %d channels", pb.spec.Freq, pb.spec.Channels)

	sdl.PauseAudioDevice(pb.id, false)

	go pb.pump(sampleRate)

	return pb, nil
}

// FreeFrames returns the space left in the ring. The game loop mixes another
// chunk whenever this is at least ChunkFrames.
func (pb *Playback) FreeFrames() int {
	return pb.ring.free()
}

// QueueChunk copies a mixed chunk into the ring. Returns false without
// queueing anything when the ring has no room for a whole chunk.
func (pb *Playback) QueueChunk(chunk *audio.Chunk) bool {
	return pb.ring.pushChunk(chunk)
}

// PlayheadFrameIndex returns the number of frames handed to the device so
// far. Comparing against the mixer's FrameIndex gives the amount of audio
// still buffered.
func (pb *Playback) PlayheadFrameIndex() uint64 {
	return pb.ring.tail.Load()
}

// Close stops the pump and closes the device. Frames still in the ring are
// dropped.
func (pb *Playback) Close() {
	close(pb.quit)
	<-pb.done
	sdl.CloseAudioDevice(pb.id)
}

// pump runs on its own goroutine, moving frames from the ring to the SDL
// audio queue. It wakes at half-chunk intervals; the device queue target of
// deviceQueueChunks gives it a full chunk of slack either way.
func (pb *Playback) pump(sampleRate int) {
	defer close(pb.done)

	interval := time.Duration(audio.ChunkFrames) * time.Second / time.Duration(2*sampleRate)
	tck := time.NewTicker(interval)
	defer tck.Stop()

	target := uint32(deviceQueueChunks * audio.ChunkFrames * bytesPerFrame)

	frames := make([]audio.Frame, audio.ChunkFrames)
	buf := make([]byte, audio.ChunkFrames*bytesPerFrame)

	for {
		select {
		case <-pb.quit:
			return
		case <-tck.C:
		}

		for sdl.GetQueuedAudioSize(pb.id) < target {
			n := pb.ring.pop(frames)
			if n == 0 {
				break
			}
			for i := 0; i < n; i++ {
				putFrame(buf[i*bytesPerFrame:], frames[i])
			}
			pb.lastFrame = frames[n-1]

			if err := sdl.QueueAudio(pb.id, buf[:n*bytesPerFrame]); err != nil {
				logger.Logf(logTag, "queue: %v", err)
			}
		}

		// ring empty and device queue drained: the device is about to flip
		// to hard silence. queue a short fade from the last frame so the
		// transition doesn't click
		if pb.ring.empty() && sdl.GetQueuedAudioSize(pb.id) == 0 && pb.lastFrame != (audio.Frame{}) {
			logger.Log(logTag, "underrun: fading to silence")
			pb.queueFade(buf)
		}
	}
}

func putFrame(b []byte, f audio.Frame) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f.Left))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f.Right))
}

// queueFade writes a one-chunk linear fade from lastFrame to zero.
func (pb *Playback) queueFade(buf []byte) {
	start := pb.lastFrame
	for i := 0; i < audio.ChunkFrames; i++ {
		g := 1 - float32(i+1)/audio.ChunkFrames
		putFrame(buf[i*bytesPerFrame:], audio.Frame{Left: start.Left * g, Right: start.Right * g})
	}
	pb.lastFrame = audio.Frame{}

	if err := sdl.QueueAudio(pb.id, buf[:audio.ChunkFrames*bytesPerFrame]); err != nil {
		logger.Logf(logTag, "queue: %v", err)
	}
}
