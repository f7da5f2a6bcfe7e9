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

// Package imagefile reads and writes the PNG images produced by a
// conversion.
package imagefile

import (
	"image"
	"image/png"
	"os"

	"github.com/pm5644/romraster/curated"
)

// SavePNG encodes the image to the named file. An existing file is
// replaced.
func SavePNG(filename string, img image.Image) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("imagefile: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("imagefile: %v", err)
		}
	}()

	err = png.Encode(f, img)
	if err != nil {
		return curated.Errorf("imagefile: %s: %v", filename, err)
	}

	return nil
}

// LoadPlane decodes the named PNG file into a plane. The red channel is used
// for images that are not greyscale. The returned plane has an origin of
// (0, 0).
func LoadPlane(filename string) (*image.Gray, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("imagefile: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, curated.Errorf("imagefile: %s: %v", filename, err)
	}

	return Plane(img), nil
}

// Plane converts any image to a plane by taking its red channel.
func Plane(img image.Image) *image.Gray {
	b := img.Bounds()
	plane := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < b.Dy(); y++ {
			copy(plane.Pix[plane.PixOffset(0, y):], g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):g.PixOffset(b.Max.X, b.Min.Y+y)])
		}
		return plane
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			plane.Pix[plane.PixOffset(x, y)] = uint8(r >> 8)
		}
	}

	return plane
}
