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

// ChunkFrames is the fixed mixing quantum. All streams render in blocks of
// this many frames.
const ChunkFrames = 512

// Frame is one left+right sample pair. Samples are floats in [-1, 1].
type Frame struct {
	Left  float32
	Right float32
}

// Chunk is one fixed-length block of stereo frames. The Volume header is the
// silence fast-path: when it is zero the frame contents are silence
// regardless of the sample values, and consumers skip the block entirely.
type Chunk struct {
	Volume float32
	Frames [ChunkFrames]Frame
}

// MonoChunk is the single-channel equivalent of Chunk, used between a
// stream's source and its stereo adapters.
type MonoChunk struct {
	Volume  float32
	Samples [ChunkFrames]float32
}
