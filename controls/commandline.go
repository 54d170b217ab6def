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

package controls

import (
	"fmt"
	"sort"
	"strings"
)

// Assignment is a single "key::value" pair from an assignment string.
type Assignment struct {
	Key   string
	Value string
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s::%s", a.Key, a.Value)
}

// ParseAssignments divides an assignment string into key/value pairs. Pairs
// are separated by semi-colons and the key and value are separated by a
// double colon:
//
//	ch1.volts::2; timebase::8; trigger.source::EXT
//
// Malformed pairs are ignored. If a key appears more than once, the last
// value wins. The returned list is in the order the keys first appeared.
func ParseAssignments(s string) []Assignment {
	var a []Assignment
	idx := make(map[string]int)

	for _, p := range strings.Split(s, ";") {
		kv := strings.Split(p, "::")
		if len(kv) != 2 {
			continue
		}

		k := strings.TrimSpace(kv[0])
		v := strings.TrimSpace(kv[1])
		if k == "" {
			continue
		}

		if i, ok := idx[k]; ok {
			a[i].Value = v
			continue
		}
		idx[k] = len(a)
		a = append(a, Assignment{Key: k, Value: v})
	}

	return a
}

// FormatAssignments is the inverse of ParseAssignments. Keys are sorted.
func FormatAssignments(a []Assignment) string {
	c := append([]Assignment{}, a...)
	sort.Slice(c, func(i, j int) bool {
		return c[i].Key < c[j].Key
	})

	s := make([]string, 0, len(c))
	for _, v := range c {
		s = append(s, v.String())
	}
	return strings.Join(s, "; ")
}
