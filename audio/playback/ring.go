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
	"sync/atomic"

	"github.com/lanternengine/lantern/audio"
)

// capacity of the frame ring in chunks. enough to absorb a slow frame on the
// game thread without the pump running dry
const ringChunks = 8

const ringFrames = ringChunks * audio.ChunkFrames

// frameRing is a single-producer single-consumer ring of stereo frames. The
// producer (game thread) pushes whole chunks, the consumer (pump goroutine)
// pops arbitrary runs. The cursors are monotonically increasing frame counts;
// ring indices are taken modulo ringFrames.
type frameRing struct {
	frames [ringFrames]audio.Frame

	// head is the next frame to be written, tail the next frame to be
	// played
	head atomic.Uint64
	tail atomic.Uint64
}

// free returns the number of frames that can be pushed without overrunning
// the consumer.
func (rng *frameRing) free() int {
	return ringFrames - int(rng.head.Load()-rng.tail.Load())
}

// empty is true when the consumer has caught up with the producer.
func (rng *frameRing) empty() bool {
	return rng.head.Load() == rng.tail.Load()
}

// pushChunk copies a mixed chunk into the ring. Returns false without writing
// anything when there is no room for a whole chunk.
//
// A chunk with a zero volume header is pushed as silence; its samples are not
// inspected.
func (rng *frameRing) pushChunk(chunk *audio.Chunk) bool {
	head := rng.head.Load()
	if ringFrames-int(head-rng.tail.Load()) < audio.ChunkFrames {
		return false
	}

	if chunk.Volume == 0 {
		for i := 0; i < audio.ChunkFrames; i++ {
			rng.frames[(head+uint64(i))%ringFrames] = audio.Frame{}
		}
	} else {
		for i := 0; i < audio.ChunkFrames; i++ {
			rng.frames[(head+uint64(i))%ringFrames] = chunk.Frames[i]
		}
	}

	rng.head.Store(head + audio.ChunkFrames)
	return true
}

// pop moves up to len(dst) frames from the ring into dst, returning the
// number moved.
func (rng *frameRing) pop(dst []audio.Frame) int {
	tail := rng.tail.Load()
	avail := int(rng.head.Load() - tail)
	if avail == 0 {
		return 0
	}
	if avail > len(dst) {
		avail = len(dst)
	}

	for i := 0; i < avail; i++ {
		dst[i] = rng.frames[(tail+uint64(i))%ringFrames]
	}

	rng.tail.Store(tail + uint64(avail))
	return avail
}
