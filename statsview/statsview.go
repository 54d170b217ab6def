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


//go:build statsview

package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gopherscope/logger"
)

// DefaultAddress of the stats server.
const DefaultAddress = "localhost:12800"

const url = "/debug/statsview"

// chart interval in milliseconds. the number of points covers one minute
const (
	interval  = 100
	maxPoints = 600
)

// Launch the stats server at the address. An empty address is the same as
// DefaultAddress. The returned function stops the server.
func Launch(output io.Writer, addr string) (stop func()) {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(
		viewer.WithAddr(addr),
		viewer.WithInterval(interval),
		viewer.WithMaxPoints(maxPoints),
	)
	mgr := statsview.New()

	go func() {
		logger.Logf(logger.Allow, "statsview", "serving at %s%s", addr, url)
		if err := mgr.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logf(logger.Allow, "statsview", "%v", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", addr, url)

	return func() {
		mgr.Stop()
		logger.Log(logger.Allow, "statsview", "stopped")
	}
}

// Available returns true if the stats server has been compiled in.
func Available() bool {
	return true
}
