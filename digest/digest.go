// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package digest contains implementations of the gui.FrameRenderer and
// audio.Mixer interfaces that produce a hash of the output instead of
// presenting it. The hash can be compared with the hash from a later run of
// the same program. If the hashes differ then something about the
// interpretation of the program has changed.
//
// The hash of each frame is chained into the next frame, so the final value
// of Hash() depends on every frame seen since the last call to ResetDigest().
package digest

// Digest implementations return a hash of everything seen since the digest was
// last reset.
type Digest interface {
	Hash() string
	ResetDigest()
}
