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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are first given to NewArgs() and then Parse() is called with no
// arguments. For example:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VIEW", "LIST")
//	_, _ = md.Parse()
//
// After Parse(), the Mode() function returns the selected mode. The first
// sub-mode in the list is the default. Sub-mode comparisons are case
// insensitive.
//
// Each mode can then add its own flags before calling Parse() again. Calling
// NewMode() discards the flags of the previous mode:
//
//	md.NewMode()
//	duration := md.AddDuration("duration", time.Second, "how long to run for")
//	p, err := md.Parse()
//
// The Parse() function returns ParseHelp if the user asked for help. The help
// message will already have been written to the Output writer.
package modalflag
