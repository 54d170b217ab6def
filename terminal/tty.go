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

//go:build unix

package terminal

import (
	"errors"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/pkg/term"
	"golang.org/x/sys/unix"
)

// how long a read waits for a key press before checking whether the key
// goroutine should end
const readTimeout = 100 * time.Millisecond

// Terminal is a raw mode terminal. It is used for key input only. Output is
// written to the Output file.
type Terminal struct {
	tty    *term.Term
	Output *os.File
}

// Open the named terminal device in raw mode. The device is usually
// "/dev/tty".
func Open(device string) (*Terminal, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, err
	}
	if err := tty.SetReadTimeout(readTimeout); err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, err
	}
	return &Terminal{tty: tty, Output: os.Stdout}, nil
}

// Close restores the original terminal mode and closes the device.
func (t *Terminal) Close() error {
	if err := t.tty.Restore(); err != nil {
		_ = t.tty.Close()
		return err
	}
	return t.tty.Close()
}

// Geometry returns the size of the output terminal in character cells.
func (t *Terminal) Geometry() (cols int, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(t.Output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Keys starts a goroutine that sends key presses to the returned channel. The
// channel is closed when the quit channel is closed or when the terminal
// can no longer be read.
func (t *Terminal) Keys(quit <-chan struct{}) <-chan byte {
	keys := make(chan byte)

	go func() {
		defer close(keys)
		b := make([]byte, 1)
		for {
			select {
			case <-quit:
				return
			default:
			}

			n, err := t.tty.Read(b)
			if err != nil {
				// a read timeout can be reported as EOF or as EAGAIN
				if errors.Is(err, io.EOF) || errors.Is(err, syscall.EAGAIN) {
					continue
				}
				return
			}
			if n == 0 {
				continue
			}

			select {
			case keys <- b[0]:
			case <-quit:
				return
			}
		}
	}()

	return keys
}
