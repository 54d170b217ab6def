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

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/jetsetilly/gopherscope/paths"
	"github.com/jetsetilly/gopherscope/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopherscope", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherscope/foo/bar/baz")

	_, err = os.Stat(".gopherscope/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherscope/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherscope")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("snapshot", "Resonant Circuit")
	test.ExpectSuccess(t, regexp.MustCompile(`^snapshot_Resonant_Circuit_\d{8}_\d{6}$`).MatchString(fn))

	fn = paths.UniqueFilename("wave", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^wave_\d{8}_\d{6}$`).MatchString(fn))
}
