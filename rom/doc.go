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

// Package rom is the sample store. It holds the contents of the eight ROM
// devices of the pattern generator, grouped into the luma, R-Y and B-Y
// channel groups, and the recorded sequence of ROM addresses.
//
// The ROM contents are read from binary dumps, one file per device. The
// address sequence is read from the text dump of the logic analyser used to
// record it. See ParseVectors() for the format of that file.
package rom
