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

package notifications

// Notice describes events that somehow change the presentation of the
// simulation.
type Notice string

// List of defined notifications.
const (
	// the screen buffer has been updated by the most recent render tick
	NotifyScreenUpdated Notice = "NotifyScreenUpdated"

	// the trace model has changed. for example, the timebase has been turned
	// from the real-time region into the calculated region
	NotifyTraceModelChanged Notice = "NotifyTraceModelChanged"

	// scope power has been switched
	NotifyPowerOn  Notice = "NotifyPowerOn"
	NotifyPowerOff Notice = "NotifyPowerOff"

	// a wire has been connected or disconnected
	NotifyWiringChanged Notice = "NotifyWiringChanged"

	// a circuit model has finished recomputing its outputs
	NotifyRecomputed Notice = "NotifyRecomputed"

	// a snapshot of the screen has been saved
	NotifySnapshot Notice = "NotifySnapshot"
)

// Notify is used for communication between the simulation and the shell.
type Notify interface {
	Notify(notice Notice) error
}

// Discard is an implementation of Notify that ignores every notice.
var Discard Notify = discard{}

type discard struct{}

func (_ discard) Notify(_ Notice) error {
	return nil
}
