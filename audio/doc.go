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

// Package audio generates the sound of the interpreter's beeper.
//
// The beeper is either on or off. When it is on the samples are taken from a
// Source, either a square wave Tone or a Sample loaded from a WAV or MP3 file.
// The Beeper type produces one frame's worth of samples at a time and hands
// them to every attached Mixer. Mixers include the SDL audio device and the
// WAV file writer.
//
// All samples are mono float32 values in the range -1.0 to 1.0, at a rate of
// SampleFreq.
package audio
