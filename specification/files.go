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

package specification

// Files names the ROM dumps, the vector dump and the output images. Names
// are relative to the working directory of the conversion.
type Files struct {
	Luma    [4]string
	RminusY [2]string
	BminusY [2]string
	Vectors string

	// raw per-group images
	LumaRaw    string
	RminusYRaw string
	BminusYRaw string

	// normalised and aligned per-group images
	LumaAligned    string
	RminusYAligned string
	BminusYAligned string

	Composite string
}

// DefaultFiles are the names of the PM5644 dumps and the images derived from
// them. The vector ROM (4008_102_56231.bin) is not needed because the vector
// table was recorded directly with a logic analyser.
var DefaultFiles = Files{
	Luma: [4]string{
		"4008_102_56191.bin",
		"4008_102_56201.bin",
		"4008_102_56211.bin",
		"4008_102_56221.bin",
	},
	RminusY: [2]string{
		"4008_102_56241.bin",
		"4008_102_56251.bin",
	},
	BminusY: [2]string{
		"4008_102_56261.bin",
		"4008_102_56271.bin",
	},
	Vectors: "pm5644_vectors.txt",

	LumaRaw:    "PM5644_Luma_Original.png",
	RminusYRaw: "PM5644_RminusY_Original.png",
	BminusYRaw: "PM5644_BminusY_Original.png",

	LumaAligned:    "PM5644_Luma_Inverted_Saturated_Cropped.png",
	RminusYAligned: "PM5644_RminusY_Inverted_Saturated_Expanded_Cropped.png",
	BminusYAligned: "PM5644_BminusY_Inverted_Saturated_Expanded_Cropped.png",

	Composite: "PM5644_Composite.png",
}

// the markers around the header of the logic analyser dump
const (
	HeaderBegin = "16505_Data_Header_Begin"
	HeaderEnd   = "16505_Data_Header_End"
)
