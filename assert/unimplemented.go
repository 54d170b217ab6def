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

// Package assert contains checks that should never fail in a correctly
// working program. They are cheap enough to leave in release builds.
package assert

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherscope/logger"
)

// Unimplemented flags the use of a feature that has not been implemented.
// When running under "go test" it panics so that the use cannot go
// unnoticed. Otherwise the use is logged and the caller is expected to
// degrade gracefully.
func Unimplemented(feature string) {
	if testing.Testing() {
		panic(fmt.Sprintf("unimplemented: %s", feature))
	}
	logger.Logf(logger.Allow, "unimplemented", "%s", feature)
}
