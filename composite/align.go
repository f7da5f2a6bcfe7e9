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

package composite

import (
	"image"
	"strings"

	"golang.org/x/image/draw"

	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/logger"
	"github.com/pm5644/romraster/rom"
	"github.com/pm5644/romraster/specification"
)

const logTag = "composite"

var scalers = map[string]draw.Interpolator{
	specification.ScalerNearest:        draw.NearestNeighbor,
	specification.ScalerApproxBiLinear: draw.ApproxBiLinear,
	specification.ScalerBiLinear:       draw.BiLinear,
	specification.ScalerCatmullRom:     draw.CatmullRom,
}

// Aligner crops and expands normalised planes so that they line up with one
// another.
type Aligner struct {
	perm   logger.Permission
	align  specification.Alignment
	scaler draw.Interpolator
}

// NewAligner is the preferred method of initialisation for the Aligner type.
func NewAligner(perm logger.Permission, align specification.Alignment) (*Aligner, error) {
	if err := align.Validate(); err != nil {
		return nil, curated.Errorf("composite: %v", err)
	}
	return &Aligner{
		perm:   perm,
		align:  align,
		scaler: scalers[strings.ToLower(align.Scaler)],
	}, nil
}

// Align the plane of a group. The luma plane is cropped. The chroma planes
// are expanded and then cropped.
func (a *Aligner) Align(g rom.Group, plane *image.Gray) (*image.Gray, error) {
	var img *image.Gray
	var err error

	if g.IsChroma() {
		img, err = crop(a.expand(plane), a.align.ChromaCrop())
	} else {
		img, err = crop(plane, a.align.Crop)
	}
	if err != nil {
		return nil, curated.Errorf("composite: %v: %v", g, err)
	}

	logger.Logf(a.perm, logTag, "%v: aligned %dx%d plane to %dx%d", g,
		plane.Rect.Dx(), plane.Rect.Dy(), img.Rect.Dx(), img.Rect.Dy())

	return img, nil
}

// expand the plane horizontally by the chroma expansion factor.
func (a *Aligner) expand(plane *image.Gray) *image.Gray {
	b := plane.Bounds()
	img := image.NewGray(image.Rect(0, 0, b.Dx()*a.align.ChromaExpansion, b.Dy()))
	a.scaler.Scale(img, img.Bounds(), plane, b, draw.Src, nil)
	return img
}

// crop returns a copy of the area of the plane. The returned plane has an
// origin of (0, 0).
func crop(plane *image.Gray, r image.Rectangle) (*image.Gray, error) {
	if !r.In(plane.Bounds()) {
		return nil, curated.Errorf(GeometryMismatch, "crop",
			curated.Errorf("%v is outside of the plane %v", r, plane.Bounds()))
	}
	img := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(img, img.Bounds(), plane, r.Min, draw.Src)
	return img, nil
}
