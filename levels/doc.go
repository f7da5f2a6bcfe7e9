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

// Package levels maps the raw sample values of the ROM planes to the full
// display range.
//
// Luma samples occupy a narrow window of the byte range and are inverted.
// SaturateY() inverts the window and stretches it to 0 to 255. Samples
// brighter than the window are clipped to black. Samples darker than the
// window would need more than 255 and are an error.
//
// Chroma samples deviate from the neutral value of 128 by an amount that
// differs for each group. SaturateChroma() inverts the deviation and scales
// it so that the largest deviation leaves a fixed amount of headroom at
// either end of the byte range. Any deviation that would eat into the
// headroom is an error.
//
// Errors from both functions can be tested for with curated.Has() and the
// CalibrationOvershoot pattern. The Normaliser type applies the functions to
// a whole plane and fails on the first overshoot.
package levels
