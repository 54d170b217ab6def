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

import "sync"

// Channel is an implementation of Notify that delivers notices on a Go
// channel. Delivery never blocks the sender. A notice that is already
// pending is not queued a second time so a slow shell sees one
// NotifyScreenUpdated however many ticks have passed.
type Channel struct {
	C chan Notice

	crit    sync.Mutex
	pending map[Notice]bool
}

// NewChannel is the preferred method of initialisation for the Channel type.
// The size argument is the capacity of the underlying channel.
func NewChannel(size int) *Channel {
	return &Channel{
		C:       make(chan Notice, size),
		pending: make(map[Notice]bool),
	}
}

// Notify implements the Notify interface. Notices that arrive when the
// channel is full are dropped.
func (ch *Channel) Notify(notice Notice) error {
	ch.crit.Lock()
	defer ch.crit.Unlock()

	if ch.pending[notice] {
		return nil
	}

	select {
	case ch.C <- notice:
		ch.pending[notice] = true
	default:
	}

	return nil
}

// Received must be called by the receiver of a notice from the channel. It
// allows the same notice to be sent again.
func (ch *Channel) Received(notice Notice) {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	delete(ch.pending, notice)
}

// Multi sends notices to more than one Notify implementation. Errors from
// individual receivers do not stop delivery to the others. The first error is
// returned.
type Multi []Notify

// Notify implements the Notify interface.
func (m Multi) Notify(notice Notice) error {
	var err error
	for _, n := range m {
		if e := n.Notify(notice); e != nil && err == nil {
			err = e
		}
	}
	return err
}
