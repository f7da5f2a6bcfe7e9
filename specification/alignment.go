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

import (
	"fmt"
	"image"
	"strings"
)

// the crop applied to the luma plane
const (
	CropLeft   = 144
	CropTop    = 41
	CropWidth  = 707
	CropHeight = 574
)

// ChromaOffset is applied to the horizontal crop position of the chroma
// planes. Without it the chroma does not line up with the luma. The reason
// for the offset is not known.
const ChromaOffset = -2

// ChromaExpansion is the horizontal scaling of the chroma planes. There are
// four luma channels for every two chroma channels.
const ChromaExpansion = 2

// list of scaler names that can be used for the chroma expansion
const (
	ScalerNearest        = "nearest"
	ScalerApproxBiLinear = "approxbilinear"
	ScalerBiLinear       = "bilinear"
	ScalerCatmullRom     = "catmullrom"
)

// ScalerList is the list of valid scaler names.
var ScalerList = []string{ScalerNearest, ScalerApproxBiLinear, ScalerBiLinear, ScalerCatmullRom}

// Alignment of the normalised planes before composition.
type Alignment struct {
	Crop            image.Rectangle
	ChromaOffset    int
	ChromaExpansion int
	Scaler          string
}

// DefaultAlignment for the PM5644 planes.
var DefaultAlignment = Alignment{
	Crop:            image.Rect(CropLeft, CropTop, CropLeft+CropWidth, CropTop+CropHeight),
	ChromaOffset:    ChromaOffset,
	ChromaExpansion: ChromaExpansion,
	Scaler:          ScalerBiLinear,
}

// ChromaCrop returns the crop rectangle for the expanded chroma planes.
func (a Alignment) ChromaCrop() image.Rectangle {
	return a.Crop.Add(image.Pt(a.ChromaOffset, 0))
}

// Validate checks that the alignment values can be used.
func (a Alignment) Validate() error {
	if a.Crop.Empty() {
		return fmt.Errorf("alignment: crop is empty (%v)", a.Crop)
	}
	if a.ChromaExpansion < 1 {
		return fmt.Errorf("alignment: chroma expansion must be at least 1 (%d)", a.ChromaExpansion)
	}
	for _, s := range ScalerList {
		if strings.ToLower(a.Scaler) == s {
			return nil
		}
	}
	return fmt.Errorf("alignment: unknown scaler (%s)", a.Scaler)
}

func (a Alignment) String() string {
	return fmt.Sprintf("crop %v, chroma offset %d, chroma expansion x%d (%s)",
		a.Crop, a.ChromaOffset, a.ChromaExpansion, a.Scaler)
}
