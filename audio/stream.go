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

package audio

// scheduledMono is the bottom layer of every stream: a source behind a
// resampler, gated by a frame-accurate start delay.
type scheduledMono struct {
	src Source
	rs  resampler

	// frames of silence still to emit before the source starts. counted
	// down chunk by chunk
	framesLeftTillStart int

	// configured playback speed, always > 0. per-chunk factors (doppler,
	// global speed) multiply on top
	speed float32

	finished bool
}

func newScheduledMono(src Source, outputRate int, startDelayFrames int, speed float32) scheduledMono {
	return scheduledMono{
		src:                 src,
		rs:                  newResampler(src, outputRate),
		framesLeftTillStart: startDelayFrames,
		speed:               speed,
	}
}

// renderChunk fills out with the next chunk of samples. A chunk that lies
// entirely before the scheduled start is flagged silent without touching the
// source, which is what makes scheduling hundreds of future-dated streams
// cheap. A chunk straddling the start gets a silent prefix.
func (sm *scheduledMono) renderChunk(out *MonoChunk, speedFactor float32) {
	if sm.finished {
		out.Volume = 0
		return
	}

	if sm.framesLeftTillStart >= ChunkFrames {
		sm.framesLeftTillStart -= ChunkFrames
		out.Volume = 0
		return
	}

	start := sm.framesLeftTillStart
	sm.framesLeftTillStart = 0

	for i := 0; i < start; i++ {
		out.Samples[i] = 0
	}

	speed := sm.speed * speedFactor
	for i := start; i < ChunkFrames; i++ {
		out.Samples[i] = sm.rs.nextSample(speed)
	}

	if sm.rs.finished() {
		sm.finished = true
	}
	out.Volume = 1
}

// stereoStream is a scheduled mono stream with volume and pan adapters on
// top. This is the layer the mixer renders; spatial streams drive it with
// per-chunk factors.
type stereoStream struct {
	mono   scheduledMono
	volume volumeAdapter
	pan    panAdapter
}

func newStereoStream(src Source, outputRate int, startDelayFrames int, volume float32, speed float32, pan float32) stereoStream {
	return stereoStream{
		mono:   newScheduledMono(src, outputRate, startDelayFrames, speed),
		volume: volumeAdapter{current: volume, target: volume},
		pan:    panAdapter{current: pan, target: pan},
	}
}

func (s *stereoStream) renderChunk(out *Chunk, volumeFactor float32, speedFactor float32) {
	var mc MonoChunk
	s.mono.renderChunk(&mc, speedFactor)
	s.volume.apply(&mc, volumeFactor)
	s.pan.apply(&mc, out)
}

func (s *stereoStream) hasFinished() bool {
	return s.mono.finished
}
