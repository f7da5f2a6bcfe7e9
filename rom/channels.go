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
	"github.com/pm5644/romraster/curated"
)

// MalformedInput is the sentinel pattern for errors caused by ROM or vector
// data that cannot be used. The values are the component reporting the
// problem and a description of it.
const MalformedInput = "malformed input: %s: %v"

// ChannelSet holds the contents of every ROM device.
type ChannelSet struct {
	Luma    [4][]byte
	RminusY [2][]byte
	BminusY [2][]byte
}

// Channels returns the ROM contents of the group in channel order.
func (set *ChannelSet) Channels(g Group) [][]byte {
	switch g {
	case Luma:
		return set.Luma[:]
	case RminusY:
		return set.RminusY[:]
	case BminusY:
		return set.BminusY[:]
	}
	return nil
}

// Validate checks that every channel of a group has the same nonzero
// length. The lengths of different groups need not match.
func (set *ChannelSet) Validate() error {
	for _, g := range Groups {
		if err := set.ValidateGroup(g); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGroup checks the channels of a single group.
func (set *ChannelSet) ValidateGroup(g Group) error {
	ch := set.Channels(g)
	if len(ch) != g.Channels() {
		return curated.Errorf(MalformedInput, "rom", curated.Errorf("unknown group %v", g))
	}

	l := len(ch[0])
	if l == 0 {
		return curated.Errorf(MalformedInput, "rom", curated.Errorf("%v channel 1 is empty", g))
	}
	for i := 1; i < len(ch); i++ {
		if len(ch[i]) != l {
			return curated.Errorf(MalformedInput, "rom",
				curated.Errorf("%v channel %d length (%d) differs from channel 1 (%d)", g, i+1, len(ch[i]), l))
		}
	}

	return nil
}

// Size returns the length of the channels in a group. The group should be
// validated first.
func (set *ChannelSet) Size(g Group) int {
	ch := set.Channels(g)
	if len(ch) == 0 {
		return 0
	}
	return len(ch[0])
}
