// This file is part of romraster.
//
// romraster is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romraster is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romraster.  If not, see <https://www.gnu.org/licenses/>.

package field

import (
	"fmt"
	"strings"
)

// Addressing selects how the vectors of a segment are turned into ROM
// addresses.
type Addressing int

// List of valid Addressing values.
const (
	// every vector in the segment is the address of one sample
	PerVector Addressing = iota

	// the segment is the run of addresses from its first vector to its last
	// vector inclusive. the run must be exactly as long as the segment
	Span
)

func (a Addressing) String() string {
	switch a {
	case PerVector:
		return "vector"
	case Span:
		return "span"
	}
	return fmt.Sprintf("addressing(%d)", int(a))
}

// ParseAddressing converts the name of an addressing mode to an Addressing
// value.
func ParseAddressing(s string) (Addressing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vector", "pervector":
		return PerVector, nil
	case "span":
		return Span, nil
	}
	return PerVector, fmt.Errorf("field: unknown addressing mode (%s)", s)
}
