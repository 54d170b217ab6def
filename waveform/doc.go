// This file is part of Gopherscope.
//
// Gopherscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherscope.  If not, see <https://www.gnu.org/licenses/>.

// Package waveform loads arbitrary waveforms for the function generator and
// exports signals as audio files.
//
// A waveform is loaded from a WAV or MP3 file. The entire file is treated as
// one period of the waveform and the samples are normalised so that full
// scale is one. The result is a table signal that the generator stretches to
// the selected frequency and scales to the selected amplitude and offset.
//
// Only the first channel of multichannel files is used.
package waveform
