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

package rom

import (
	"fmt"
	"strings"
)

// Group identifies one of the three channel groups.
type Group int

// List of valid Group values.
const (
	Luma Group = iota
	RminusY
	BminusY
)

// Groups is the list of all groups in processing order.
var Groups = []Group{Luma, RminusY, BminusY}

func (g Group) String() string {
	switch g {
	case Luma:
		return "luma"
	case RminusY:
		return "R-Y"
	case BminusY:
		return "B-Y"
	}
	return fmt.Sprintf("group(%d)", int(g))
}

// Channels returns the number of ROM devices in the group.
func (g Group) Channels() int {
	switch g {
	case Luma:
		return 4
	case RminusY, BminusY:
		return 2
	}
	return 0
}

// IsChroma returns true for the R-Y and B-Y groups.
func (g Group) IsChroma() bool {
	return g == RminusY || g == BminusY
}

// ParseGroup converts a group name to a Group. Names are case insensitive
// and the chroma groups can be named with or without the minus sign.
func ParseGroup(s string) (Group, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LUMA", "Y":
		return Luma, nil
	case "R-Y", "RY", "RMINUSY", "CR":
		return RminusY, nil
	case "B-Y", "BY", "BMINUSY", "CB":
		return BminusY, nil
	}
	return Luma, fmt.Errorf("rom: unknown channel group (%s)", s)
}
