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

package audio_test

import (
	"testing"

	"github.com/lanternengine/lantern/audio"
	"github.com/lanternengine/lantern/geom"
	"github.com/lanternengine/lantern/test"
)

const epsilon = 1e-4

// root of one half: the equal-power center gain
const centerGain = 0.70710678

func constantSamples(n int, v float32) []float32 {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = v
	}
	return samples
}

// newTestState returns a state at 48000Hz with a constant 1.0 recording
// named "tone".
func newTestState(t *testing.T) *audio.State {
	t.Helper()

	st, err := audio.NewState(audio.Spec{SampleRate: 48000})
	if err != nil {
		t.Fatal(err)
	}

	buf, err := audio.NewBuffer("tone", 48000, constantSamples(48000, 1))
	if err != nil {
		t.Fatal(err)
	}
	test.ExpectedSuccess(t, st.AddRecording(buf))

	return st
}

func renderChunk(st *audio.State) *audio.Chunk {
	var out audio.Chunk
	st.RenderChunk(&out)
	return &out
}

func TestBufferConstruction(t *testing.T) {
	_, err := audio.NewBuffer("", 48000, constantSamples(10, 0))
	test.ExpectedFailure(t, err)

	_, err = audio.NewBuffer("tone", 0, constantSamples(10, 0))
	test.ExpectedFailure(t, err)

	_, err = audio.NewBuffer("tone", 48000, nil)
	test.ExpectedFailure(t, err)

	buf, err := audio.NewBuffer("tone", 48000, constantSamples(100, 0))
	test.ExpectedSuccess(t, err)

	// loop section defaults to the whole buffer
	test.Equate(t, buf.LoopStart, 0)
	test.Equate(t, buf.LoopLength, 100)

	test.ExpectedFailure(t, buf.SetLoopSection(50, 60))
	test.ExpectedFailure(t, buf.SetLoopSection(-1, 10))
	test.ExpectedSuccess(t, buf.SetLoopSection(25, 50))
	test.Equate(t, buf.LoopStart, 25)
}

func TestScheduledPlayback(t *testing.T) {
	st := newTestState(t)

	// 0.01s at 48000Hz is 480 frames: the first chunk is 480 silent frames
	// followed by 32 frames of source
	st.Play("tone", 0.01, false, 1, 1, 0)

	out := renderChunk(st)
	test.Equate(t, out.Frames[0].Left, 0)
	test.Equate(t, out.Frames[479].Left, 0)
	test.ApproxEquate(t, out.Frames[480].Left, centerGain, epsilon)
	test.ApproxEquate(t, out.Frames[511].Right, centerGain, epsilon)

	// the second chunk is entirely from the source
	out = renderChunk(st)
	test.ApproxEquate(t, out.Frames[0].Left, centerGain, epsilon)
	test.ApproxEquate(t, out.Frames[511].Left, centerGain, epsilon)
}

func TestFarScheduledStreamIsSilent(t *testing.T) {
	st := newTestState(t)
	st.Play("tone", 10, false, 1, 1, 0)

	// a chunk entirely before the scheduled start is flagged silent and not
	// accumulated
	out := renderChunk(st)
	test.Equate(t, out.Volume, 0)
	test.Equate(t, out.Frames[0].Left, 0)
	test.Equate(t, out.Frames[511].Left, 0)
}

func TestMixerClock(t *testing.T) {
	st := newTestState(t)

	for i := 0; i < 5; i++ {
		renderChunk(st)
	}
	test.Equate(t, st.FrameIndex(), 5*audio.ChunkFrames)
}

func TestStreamIdsMonotone(t *testing.T) {
	st := newTestState(t)

	var last audio.StreamId
	for i := 0; i < 10; i++ {
		id := st.Play("tone", 0, false, 1, 1, 0)
		if uint64(id) == 0 {
			t.Fatal("zero stream id")
		}
		if id <= last {
			t.Fatalf("stream id %d not greater than %d", id, last)
		}
		last = id
	}
}

func TestPanRamp(t *testing.T) {
	st := newTestState(t)

	id := st.Play("tone", 0, false, 1, 1, -1)
	st.SetPan(id, 1)

	out := renderChunk(st)

	// the ramp starts at the old pan and reaches the new pan at chunk end
	test.ApproxEquate(t, out.Frames[0].Left, 1, epsilon)
	test.ApproxEquate(t, out.Frames[0].Right, 0, epsilon)
	test.ApproxEquate(t, out.Frames[256].Left, centerGain, 0.01)
	test.ApproxEquate(t, out.Frames[256].Right, centerGain, 0.01)
	test.ApproxEquate(t, out.Frames[511].Left, 0, 0.05)
	test.ApproxEquate(t, out.Frames[511].Right, 1, 0.05)

	// the next chunk sits at the target
	out = renderChunk(st)
	test.ApproxEquate(t, out.Frames[0].Left, 0, epsilon)
	test.ApproxEquate(t, out.Frames[0].Right, 1, epsilon)
}

func TestVolumeRamp(t *testing.T) {
	st := newTestState(t)

	// pan hard left so the left channel carries the full volume
	id := st.Play("tone", 0, false, 1, 1, -1)
	st.SetVolume(id, 0.25)

	out := renderChunk(st)
	test.ApproxEquate(t, out.Frames[0].Left, 1, 0.01)

	// second chunk is at the target volume throughout
	out = renderChunk(st)
	test.ApproxEquate(t, out.Frames[0].Left, 0.25, epsilon)
	test.ApproxEquate(t, out.Frames[511].Left, 0.25, epsilon)
}

func TestZeroVolumeStreamSkipped(t *testing.T) {
	st := newTestState(t)
	st.Play("tone", 0, false, 0, 1, 0)

	out := renderChunk(st)
	test.Equate(t, out.Volume, 0)
	test.Equate(t, out.Frames[100].Left, 0)
}

func TestOneshotRemoval(t *testing.T) {
	st, err := audio.NewState(audio.Spec{SampleRate: 48000})
	test.ExpectedSuccess(t, err)

	buf, err := audio.NewBuffer("blip", 48000, constantSamples(100, 1))
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, st.AddRecording(buf))

	id := st.PlayOneshot("blip", 0, 1, 1, 0)
	test.Equate(t, st.StreamExists(id), true)

	// the source exhausts within the first chunk; removal is observed by
	// the following mix call
	renderChunk(st)
	test.Equate(t, st.StreamFinished(id), true)

	renderChunk(st)
	test.Equate(t, st.StreamExists(id), false)
}

func TestLoopingStreamNeverFinishes(t *testing.T) {
	st, err := audio.NewState(audio.Spec{SampleRate: 48000})
	test.ExpectedSuccess(t, err)

	buf, err := audio.NewBuffer("blip", 48000, constantSamples(100, 1))
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, st.AddRecording(buf))

	id := st.Play("blip", 0, true, 1, 1, 0)
	for i := 0; i < 10; i++ {
		out := renderChunk(st)
		test.ApproxEquate(t, out.Frames[500].Left, centerGain, epsilon)
	}
	test.Equate(t, st.StreamFinished(id), false)

	// forgetting a looping stream is a contract violation
	test.ExpectedPanic(t, func() { st.Forget(id) })
}

func TestUnknownLookupsPanic(t *testing.T) {
	st := newTestState(t)

	test.ExpectedPanic(t, func() { st.Play("no-such-recording", 0, false, 1, 1, 0) })
	test.ExpectedPanic(t, func() { st.SetVolume(audio.StreamId(999), 1) })
	test.ExpectedPanic(t, func() { st.Play("tone", 0, false, 1, 0, 0) })

	id := st.Play("tone", 0, false, 1, 1, 0)
	test.ExpectedPanic(t, func() { st.SpatialSetPos(id, geom.Vec2{}) })
}

func TestSpatialPan(t *testing.T) {
	st := newTestState(t)

	// falloff starting beyond the source keeps the volume factor at 1, so
	// the frames show the pan gains directly
	sp := audio.Spatial{
		Pos:     geom.Vec2{X: 50, Y: 0},
		Falloff: audio.Falloff{Kind: audio.FalloffLinear, Start: 1000, End: 2000},
	}
	id := st.PlaySpatial("tone", 0, true, 1, 1, sp)

	// second chunk: the pan has finished ramping to +0.5
	renderChunk(st)
	out := renderChunk(st)
	test.ApproxEquate(t, out.Frames[0].Left, 0.5, epsilon)        // sqrt(1-0.75)
	test.ApproxEquate(t, out.Frames[0].Right, 0.8660254, epsilon) // sqrt(0.75)

	// beyond the max-pan distance the pan clamps to full right
	st.SpatialSetPos(id, geom.Vec2{X: 200, Y: 0})
	renderChunk(st)
	out = renderChunk(st)
	test.ApproxEquate(t, out.Frames[0].Left, 0, epsilon)
	test.ApproxEquate(t, out.Frames[0].Right, 1, epsilon)
}

func TestSpatialFalloffSilence(t *testing.T) {
	st := newTestState(t)

	sp := audio.Spatial{
		Pos:     geom.Vec2{X: 500, Y: 0},
		Falloff: audio.Falloff{Kind: audio.FalloffLinear, Start: 10, End: 100},
	}
	st.PlaySpatial("tone", 0, true, 1, 1, sp)

	// source beyond the falloff end contributes nothing
	out := renderChunk(st)
	test.Equate(t, out.Volume, 0)
}

func TestReset(t *testing.T) {
	st := newTestState(t)
	st.Play("tone", 0, true, 1, 1, 0)
	renderChunk(st)

	st.Reset()
	test.Equate(t, st.NumStreams(), 0)
	test.Equate(t, st.FrameIndex(), 0)
	test.Equate(t, st.HasRecording("tone"), false)
}

func TestCompletionThroughSource(t *testing.T) {
	buf, err := audio.NewBuffer("blip", 48000, constantSamples(200, 1))
	test.ExpectedSuccess(t, err)

	src := audio.NewBufferSource(buf, false)
	for i := 0; i < 100; i++ {
		src.NextSample()
	}
	ratio, ok := src.CompletionRatio()
	test.Equate(t, ok, true)
	test.ApproxEquate(t, ratio, 0.5, epsilon)
}
