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

// Package composite aligns the normalised planes and combines them into the
// final RGB image.
//
// The luma plane is cropped to the visible picture. The chroma planes have
// half the horizontal resolution of the luma plane so they are expanded
// before being cropped. The chroma crop is offset slightly from the luma
// crop.
//
// Compose() combines three aligned planes using the ITU-R BT.601 conversion.
// The R-Y plane is used as Cr and the B-Y plane as Cb.
package composite
