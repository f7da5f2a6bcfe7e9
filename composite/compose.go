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
	"image/color"

	"github.com/pm5644/romraster/curated"
)

// GeometryMismatch is the sentinel pattern for planes that cannot be
// combined or cropped because of their dimensions. The values are the
// operation and a description of the problem.
const GeometryMismatch = "geometry mismatch: %s: %v"

// BT.601 coefficients
const (
	crToR = 1.402
	cbToB = 1.772
	cbToG = cbToB * (0.114 / 0.587)
	crToG = crToR * (0.299 / 0.587)
)

// clamp the value to the range of a byte. the fractional part is truncated.
func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RGB converts a single YCbCr sample to RGB. Each channel is clamped
// separately.
func RGB(y, cb, cr uint8) color.NRGBA {
	Y := float64(y)
	Cb := float64(cb) - 128
	Cr := float64(cr) - 128
	return color.NRGBA{
		R: clamp(Y + crToR*Cr),
		G: clamp(Y - cbToG*Cb - crToG*Cr),
		B: clamp(Y + cbToB*Cb),
		A: 255,
	}
}

// Compose combines the luma and chroma planes into an RGB image. All three
// planes must have the same bounds. The returned image has the bounds of
// the luma plane.
func Compose(y, cb, cr *image.Gray) (*image.NRGBA, error) {
	if !cb.Rect.Eq(y.Rect) {
		return nil, curated.Errorf(GeometryMismatch, "compose",
			curated.Errorf("Cb plane %v does not match luma plane %v", cb.Rect, y.Rect))
	}
	if !cr.Rect.Eq(y.Rect) {
		return nil, curated.Errorf(GeometryMismatch, "compose",
			curated.Errorf("Cr plane %v does not match luma plane %v", cr.Rect, y.Rect))
	}

	b := y.Rect
	img := image.NewNRGBA(b)

	for yy := b.Min.Y; yy < b.Max.Y; yy++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := RGB(y.Pix[y.PixOffset(x, yy)], cb.Pix[cb.PixOffset(x, yy)], cr.Pix[cr.PixOffset(x, yy)])
			o := img.PixOffset(x, yy)
			img.Pix[o] = c.R
			img.Pix[o+1] = c.G
			img.Pix[o+2] = c.B
			img.Pix[o+3] = c.A
		}
	}

	return img, nil
}
