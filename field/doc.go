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

// Package field reconstructs the raster of a channel group from the ROM
// contents and the recorded vector table.
//
// The vector table holds two fields. Each field is a sequence of lines and
// each line is the list of segments described by the geometry (back sprite,
// raster, front sprite for the PM5644). For every address in a segment one
// sample is taken from every channel of the group, in channel order, and
// written to the next pixels of the row. Lines from the first field are
// written to the even rows of the plane and lines from the second field to
// the odd rows. The result is a single de-interlaced plane.
//
// The relationship between a pixel and the vector it came from is a pure
// mapping, available through the Locate() and Source() functions.
package field
