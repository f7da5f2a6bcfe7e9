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

// Package conversion runs the stages that turn the ROM dumps into the test
// pattern image.
//
// Generate() renders the raw plane of every channel group from the ROM
// dumps and the vector dump and saves them. Recompose() loads the raw planes
// saved by an earlier Generate() and produces the aligned planes and the
// composite image. Convert() does both in a single run.
//
// The three channel groups are processed in parallel. A failure in any group
// stops the run and the images of the failed stage are not written. Images
// from an earlier stage that completed are kept.
package conversion
