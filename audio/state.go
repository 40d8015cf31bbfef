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

// Package audio is the deterministic chunked mixer. Streams render in fixed
// 512 frame chunks against a frame-accurate clock; the same sequence of
// calls always produces the same samples.
//
// The State is single-threaded. When the playback backend runs the mixer on
// its own callback thread, that thread must be the only accessor; see the
// playback sub-package.
package audio

import (
	"fmt"

	"github.com/lanternengine/lantern/fault"
	"github.com/lanternengine/lantern/geom"
)

// StreamId identifies an active stream. Ids are non-zero, monotonically
// increasing and never reused within a session.
type StreamId uint64

// Spec is the constructor specification for the audio State.
type Spec struct {
	// output sample rate. DefaultSampleRate when zero
	SampleRate int

	// horizontal distance at which a spatial stream reaches full pan.
	// DefaultDistanceForMaxPan when zero
	DistanceForMaxPan float32

	// the velocity producing the maximum doppler shift.
	// DefaultMediumVelocityMax when zero
	MediumVelocityMax float32
}

const (
	DefaultSampleRate        = 48000
	DefaultDistanceForMaxPan = 100
	DefaultMediumVelocityMax = 343
)

// stream is one table entry. The spatial field is nil for plain stereo
// streams; the two variants share the stereoStream internals.
type stream struct {
	id      StreamId
	stereo  stereoStream
	spatial *Spatial

	looping   bool
	forgotten bool
}

// State owns the stream table, the recording table and the audio clock. One
// State per game; it is not safe for concurrent use.
type State struct {
	spec Spec

	recordings map[string]*Buffer

	// streams in creation order. mixing order is deterministic because of it
	streams []*stream
	byId    map[StreamId]*stream

	nextStreamId StreamId

	// the authoritative audio clock: the index of the first frame of the
	// next chunk to be rendered
	nextFrameIndex uint64

	listenerPos geom.Vec2
	listenerVel geom.Vec2

	globalSpeed float32
}

// NewState is the preferred method of initialisation for the State type.
func NewState(spec Spec) (*State, error) {
	if spec.SampleRate == 0 {
		spec.SampleRate = DefaultSampleRate
	}
	if spec.SampleRate < 0 {
		return nil, fault.Errorf("audio: bad sample rate: %d", spec.SampleRate)
	}
	if spec.DistanceForMaxPan == 0 {
		spec.DistanceForMaxPan = DefaultDistanceForMaxPan
	}
	if spec.MediumVelocityMax == 0 {
		spec.MediumVelocityMax = DefaultMediumVelocityMax
	}

	return &State{
		spec:         spec,
		recordings:   make(map[string]*Buffer),
		byId:         make(map[StreamId]*stream),
		nextStreamId: 1,
		globalSpeed:  1,
	}, nil
}

// SampleRate returns the output sample rate.
func (st *State) SampleRate() int {
	return st.spec.SampleRate
}

// AddRecording registers a buffer under its name for use with Play.
func (st *State) AddRecording(buf *Buffer) error {
	if _, ok := st.recordings[buf.Name]; ok {
		return fault.Errorf("audio: duplicate recording: %s", buf.Name)
	}
	st.recordings[buf.Name] = buf
	return nil
}

// HasRecording tests for the presence of a named recording.
func (st *State) HasRecording(name string) bool {
	_, ok := st.recordings[name]
	return ok
}

// recording returns the named buffer. An unknown name is a programmer error
// and panics.
func (st *State) recording(name string) *Buffer {
	buf, ok := st.recordings[name]
	if !ok {
		panic(fmt.Sprintf("audio: unknown recording: %s", name))
	}
	return buf
}

// stream returns the identified stream. An unknown id is a programmer error
// and panics.
func (st *State) stream(id StreamId) *stream {
	s, ok := st.byId[id]
	if !ok {
		panic(fmt.Sprintf("audio: unknown stream: %d", id))
	}
	return s
}

// startDelayFrames converts an absolute schedule time in seconds to the
// number of frames between the current clock and the scheduled start,
// clamped at zero.
func (st *State) startDelayFrames(scheduleTime float64) int {
	abs := int64(scheduleTime * float64(st.spec.SampleRate))
	delay := abs - int64(st.nextFrameIndex)
	if delay < 0 {
		delay = 0
	}
	return int(delay)
}

func (st *State) addStream(s *stream) StreamId {
	s.id = st.nextStreamId
	st.nextStreamId++
	st.streams = append(st.streams, s)
	st.byId[s.id] = s
	return s.id
}

// Play starts a stream of the named recording. scheduleTime is an absolute
// time in seconds on the audio clock; a time in the past starts immediately.
// Speed must be greater than zero.
func (st *State) Play(name string, scheduleTime float64, looping bool, volume float32, speed float32, pan float32) StreamId {
	src := NewBufferSource(st.recording(name), looping)
	return st.PlaySource(src, scheduleTime, volume, speed, pan)
}

// PlaySource starts a stream of an arbitrary source, procedural sources
// included. Looping behavior follows the source.
func (st *State) PlaySource(src Source, scheduleTime float64, volume float32, speed float32, pan float32) StreamId {
	if speed <= 0 {
		panic(fmt.Sprintf("audio: bad playback speed: %f", speed))
	}

	return st.addStream(&stream{
		stereo:  newStereoStream(src, st.spec.SampleRate, st.startDelayFrames(scheduleTime), volume, speed, pan),
		looping: src.Looping(),
	})
}

// PlayOneshot is Play with the stream marked forgotten, so that it is
// removed automatically when it finishes.
func (st *State) PlayOneshot(name string, scheduleTime float64, volume float32, speed float32, pan float32) StreamId {
	id := st.Play(name, scheduleTime, false, volume, speed, pan)
	st.byId[id].forgotten = true
	return id
}

// PlaySpatial starts a positional stream of the named recording. Volume,
// pan and playback speed are recomputed every chunk from the stream and
// listener poses.
func (st *State) PlaySpatial(name string, scheduleTime float64, looping bool, volume float32, speed float32, sp Spatial) StreamId {
	if speed <= 0 {
		panic(fmt.Sprintf("audio: bad playback speed: %f", speed))
	}

	src := NewBufferSource(st.recording(name), looping)
	return st.addStream(&stream{
		stereo:  newStereoStream(src, st.spec.SampleRate, st.startDelayFrames(scheduleTime), volume, speed, 0),
		spatial: &sp,
		looping: looping,
	})
}

// Forget marks a stream for removal when it finishes. Forgetting a looping
// stream is a programmer error and panics: a looping stream never finishes,
// so the mark could never take effect.
func (st *State) Forget(id StreamId) {
	s := st.stream(id)
	if s.looping {
		panic(fmt.Sprintf("audio: cannot forget looping stream: %d", id))
	}
	s.forgotten = true
}

// StreamExists tests whether the stream is still in the table without
// panicking.
func (st *State) StreamExists(id StreamId) bool {
	_, ok := st.byId[id]
	return ok
}

// StreamFinished reports whether the stream's source has been exhausted.
func (st *State) StreamFinished(id StreamId) bool {
	return st.stream(id).stereo.hasFinished()
}

// SetVolume sets the stream's target volume. The change ramps over the next
// chunk.
func (st *State) SetVolume(id StreamId, volume float32) {
	st.stream(id).stereo.volume.setTarget(volume)
}

// SetPan sets the stream's target pan in [-1, 1]. The change ramps over the
// next chunk. Spatial streams overwrite pan every chunk so the call only has
// lasting effect on plain streams.
func (st *State) SetPan(id StreamId, pan float32) {
	st.stream(id).stereo.pan.setTarget(pan)
}

// SetPlaybackSpeed sets the stream's playback speed. Takes effect at the
// next chunk.
func (st *State) SetPlaybackSpeed(id StreamId, speed float32) {
	if speed <= 0 {
		panic(fmt.Sprintf("audio: bad playback speed: %f", speed))
	}
	st.stream(id).stereo.mono.speed = speed
}

// SpatialSetPos moves a spatial stream. Calling on a non-spatial stream is a
// programmer error and panics.
func (st *State) SpatialSetPos(id StreamId, pos geom.Vec2) {
	s := st.stream(id)
	if s.spatial == nil {
		panic(fmt.Sprintf("audio: stream %d is not spatial", id))
	}
	s.spatial.Pos = pos
}

// SpatialSetVel sets a spatial stream's velocity, used for the doppler
// shift. Calling on a non-spatial stream is a programmer error and panics.
func (st *State) SpatialSetVel(id StreamId, vel geom.Vec2) {
	s := st.stream(id)
	if s.spatial == nil {
		panic(fmt.Sprintf("audio: stream %d is not spatial", id))
	}
	s.spatial.Vel = vel
}

// SetListener sets the listener pose used by all spatial streams.
func (st *State) SetListener(pos geom.Vec2, vel geom.Vec2) {
	st.listenerPos = pos
	st.listenerVel = vel
}

// SetGlobalPlaybackSpeed scales the playback speed of every stream. Used for
// slow-motion effects.
func (st *State) SetGlobalPlaybackSpeed(speed float32) {
	if speed <= 0 {
		panic(fmt.Sprintf("audio: bad playback speed: %f", speed))
	}
	st.globalSpeed = speed
}

// FrameIndex returns the audio clock: the index of the first frame of the
// next chunk to be rendered.
func (st *State) FrameIndex() uint64 {
	return st.nextFrameIndex
}

// NumStreams returns the number of streams in the table, finished or not.
func (st *State) NumStreams() int {
	return len(st.streams)
}

// Reset drops every stream and recording and rewinds the clock to zero.
// Stream ids keep increasing across a reset.
func (st *State) Reset() {
	st.streams = st.streams[:0]
	clear(st.byId)
	clear(st.recordings)
	st.nextFrameIndex = 0
	st.globalSpeed = 1
	st.listenerPos = geom.Vec2{}
	st.listenerVel = geom.Vec2{}
}

// RenderChunk mixes the next chunk of every stream into out. The caller is
// responsible for pre-clearing out; RenderChunk only accumulates, and sets
// out's Volume header when anything audible was added.
//
// The clock advances by exactly ChunkFrames per call regardless of stream
// activity.
func (st *State) RenderChunk(out *Chunk) {
	// drop streams that have both finished and been forgotten
	keep := st.streams[:0]
	for _, s := range st.streams {
		if s.forgotten && s.stereo.hasFinished() {
			delete(st.byId, s.id)
			continue
		}
		keep = append(keep, s)
	}
	st.streams = keep

	var chunk Chunk
	for _, s := range st.streams {
		volumeFactor := float32(1)
		speedFactor := st.globalSpeed

		if s.spatial != nil {
			v, pan, spd := s.spatial.factors(st.listenerPos, st.listenerVel,
				st.spec.DistanceForMaxPan, st.spec.MediumVelocityMax)
			volumeFactor = v
			s.stereo.pan.setTarget(pan)
			speedFactor *= spd
		}

		s.stereo.renderChunk(&chunk, volumeFactor, speedFactor)
		if chunk.Volume == 0 {
			continue
		}

		for i := range out.Frames {
			out.Frames[i].Left += chunk.Frames[i].Left
			out.Frames[i].Right += chunk.Frames[i].Right
		}
		out.Volume = 1
	}

	st.nextFrameIndex += ChunkFrames
}
