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

//go:build !unix

package terminal

import (
	"errors"
	"os"
)

// Terminal is not supported on this platform.
type Terminal struct {
	Output *os.File
}

// Open always fails on this platform.
func Open(_ string) (*Terminal, error) {
	return nil, errors.New("terminal: raw mode is not supported on this platform")
}

// Close does nothing on this platform.
func (t *Terminal) Close() error {
	return nil
}

// Geometry always fails on this platform.
func (t *Terminal) Geometry() (int, int, error) {
	return 0, 0, errors.New("terminal: geometry is not supported on this platform")
}

// Keys returns a closed channel.
func (t *Terminal) Keys(_ <-chan struct{}) <-chan byte {
	keys := make(chan byte)
	close(keys)
	return keys
}
