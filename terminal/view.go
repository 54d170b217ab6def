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

package terminal

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/scope"
)

// View draws the scope screen to a terminal whenever the scope reports a
// change, and applies key presses to the scope controls.
type View struct {
	sc      *scope.Scope
	notices *notifications.Channel
	output  io.Writer

	// size of the screen area in character cells. the status line is
	// drawn below the screen area
	cols int
	rows int
}

// NewView is the preferred method of initialisation for the View type. The
// notices channel should be the one the scope was created with. The rows
// argument is the height of the terminal, one row of which is used for the
// status line.
func NewView(sc *scope.Scope, notices *notifications.Channel, output io.Writer, cols int, rows int) (*View, error) {
	if cols < 1 || rows < 2 {
		return nil, fmt.Errorf("terminal: view of %dx%d is too small", cols, rows)
	}
	return &View{
		sc:      sc,
		notices: notices,
		output:  output,
		cols:    cols,
		rows:    rows - 1,
	}, nil
}

// Draw the screen and the status line.
func (v *View) Draw() error {
	if err := Render(v.output, v.sc.Screen().Snapshot(), v.cols, v.rows); err != nil {
		return err
	}
	status := fmt.Sprintf("%s  %s  %s  [%s]", v.sc, v.sc.Ch1, v.sc.Ch2, Help)
	if len(status) > v.cols {
		status = status[:v.cols]
	}
	_, err := fmt.Fprintf(v.output, "%s%s", status, clearLine)
	return err
}

// Run the view until a quit key is pressed or the keys channel is closed.
//
// Errors from key presses are logged and do not end the view. Errors writing
// to the output are returned.
func (v *View) Run(keys <-chan byte) error {
	fmt.Fprint(v.output, hideCursor, clearTerm)
	defer fmt.Fprint(v.output, resetPen, showCursor, "\r\n")

	if err := v.Draw(); err != nil {
		return err
	}

	for {
		select {
		case k, ok := <-keys:
			if !ok {
				return nil
			}
			quit, err := Key(v.sc, k)
			if err != nil {
				logger.Log(logger.Allow, "terminal", err)
			}
			if quit {
				return nil
			}
			if err := v.Draw(); err != nil {
				return err
			}

		case n := <-v.notices.C:
			v.notices.Received(n)
			switch n {
			case notifications.NotifyScreenUpdated, notifications.NotifyPowerOff, notifications.NotifyTraceModelChanged:
				if err := v.Draw(); err != nil {
					return err
				}
			}
		}
	}
}
