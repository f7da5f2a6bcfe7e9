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

// Package specification describes the PM5644 pattern generator: the
// geometry of the recorded vector table, the calibration of the ROM sample
// levels, the alignment of the luma and chroma planes and the names of the
// files that hold the ROM dumps.
//
// The calibration values were found by inspection of the ROM contents and
// are approximations. They are exposed as preferences (see Preferences) so
// that they can be adjusted without changing the program.
package specification
