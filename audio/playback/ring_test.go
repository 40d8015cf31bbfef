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

package playback

import (
	"testing"

	"github.com/lanternengine/lantern/audio"
	"github.com/lanternengine/lantern/test"
)

func markedChunk(v float32) *audio.Chunk {
	chunk := &audio.Chunk{Volume: 1}
	for i := range chunk.Frames {
		chunk.Frames[i] = audio.Frame{Left: v, Right: -v}
	}
	return chunk
}

func TestRingPushPop(t *testing.T) {
	var rng frameRing

	test.Equate(t, rng.free(), ringFrames)
	test.Equate(t, rng.empty(), true)

	test.Equate(t, rng.pushChunk(markedChunk(1)), true)
	test.Equate(t, rng.free(), ringFrames-audio.ChunkFrames)
	test.Equate(t, rng.empty(), false)

	dst := make([]audio.Frame, 100)
	test.Equate(t, rng.pop(dst), 100)
	test.Equate(t, dst[0].Left, 1)
	test.Equate(t, dst[99].Right, -1)

	// the remainder of the chunk is still queued
	test.Equate(t, rng.free(), ringFrames-audio.ChunkFrames+100)
}

func TestRingFullRejectsChunk(t *testing.T) {
	var rng frameRing

	for i := 0; i < ringChunks; i++ {
		test.Equate(t, rng.pushChunk(markedChunk(float32(i))), true)
	}
	test.Equate(t, rng.free(), 0)
	test.Equate(t, rng.pushChunk(markedChunk(99)), false)

	// draining one chunk makes room again
	dst := make([]audio.Frame, audio.ChunkFrames)
	test.Equate(t, rng.pop(dst), audio.ChunkFrames)
	test.Equate(t, rng.pushChunk(markedChunk(99)), true)
}

func TestRingWrapAround(t *testing.T) {
	var rng frameRing
	dst := make([]audio.Frame, audio.ChunkFrames)

	// push/pop more than the capacity so the cursors wrap the backing array
	for i := 0; i < ringChunks*3; i++ {
		if !rng.pushChunk(markedChunk(float32(i))) {
			t.Fatalf("push %d rejected", i)
		}
		n := rng.pop(dst)
		test.Equate(t, n, audio.ChunkFrames)
		test.Equate(t, dst[0].Left, float32(i))
		test.Equate(t, dst[audio.ChunkFrames-1].Left, float32(i))
	}
	test.Equate(t, rng.empty(), true)
}

func TestRingSilentChunk(t *testing.T) {
	var rng frameRing

	// a zero volume header pushes silence whatever the sample data says
	chunk := markedChunk(1)
	chunk.Volume = 0
	rng.pushChunk(chunk)

	dst := make([]audio.Frame, audio.ChunkFrames)
	rng.pop(dst)
	test.Equate(t, dst[0].Left, 0)
	test.Equate(t, dst[audio.ChunkFrames-1].Right, 0)
}

func TestRingPopEmpty(t *testing.T) {
	var rng frameRing
	dst := make([]audio.Frame, 10)
	test.Equate(t, rng.pop(dst), 0)
}
