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

package composite_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-test/deep"

	"github.com/pm5644/romraster/composite"
	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/levels"
	"github.com/pm5644/romraster/logger"
	"github.com/pm5644/romraster/rom"
	"github.com/pm5644/romraster/specification"
	"github.com/pm5644/romraster/test"
)

func uniformPlane(r image.Rectangle, v uint8) *image.Gray {
	img := image.NewGray(r)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

func TestRGB(t *testing.T) {
	test.ExpectEquality(t, composite.RGB(255, 128, 128), white)
	test.ExpectEquality(t, composite.RGB(0, 128, 128), black)
	test.ExpectEquality(t, composite.RGB(100, 128, 128), color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	// 100 + 1.402 is truncated
	test.ExpectEquality(t, composite.RGB(100, 128, 129).R, uint8(101))
}

func TestRGBClamping(t *testing.T) {
	// red and blue are negative and clamped. green is positive
	c := composite.RGB(0, 0, 0)
	test.ExpectEquality(t, c.R, uint8(0))
	test.ExpectEquality(t, c.B, uint8(0))
	test.ExpectEquality(t, c.G, uint8(135))

	c = composite.RGB(255, 255, 255)
	test.ExpectEquality(t, c.R, uint8(255))
	test.ExpectEquality(t, c.B, uint8(255))
	test.ExpectEquality(t, c.G, uint8(120))
}

func TestComposeWhite(t *testing.T) {
	// the top of the luma window with neutral chroma is white
	y, err := levels.SaturateY(specification.LumaLow, specification.DefaultCalibration)
	test.DemandSuccess(t, err)
	cb, err := levels.SaturateChroma(128, specification.RangeBminusY, specification.ChromaHeadroom)
	test.DemandSuccess(t, err)
	cr, err := levels.SaturateChroma(128, specification.RangeRminusY, specification.ChromaHeadroom)
	test.DemandSuccess(t, err)

	r := image.Rect(0, 0, 5, 3)
	img, err := composite.Compose(uniformPlane(r, y), uniformPlane(r, cb), uniformPlane(r, cr))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Rect, r)

	for yy := 0; yy < r.Dy(); yy++ {
		for x := 0; x < r.Dx(); x++ {
			test.ExpectEquality(t, img.NRGBAAt(x, yy), white, x, yy)
		}
	}
}

func TestComposePlanes(t *testing.T) {
	r := image.Rect(0, 0, 2, 1)
	y := uniformPlane(r, 100)
	cb := uniformPlane(r, 128)
	cr := uniformPlane(r, 128)

	// Cr only affects the second pixel
	cr.Pix[1] = 228

	img, err := composite.Compose(y, cb, cr)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.NRGBAAt(0, 0), composite.RGB(100, 128, 128))
	test.ExpectEquality(t, img.NRGBAAt(1, 0), composite.RGB(100, 128, 228))
	test.ExpectEquality(t, img.NRGBAAt(1, 0).R, uint8(240))
}

func TestComposeMismatch(t *testing.T) {
	a := uniformPlane(image.Rect(0, 0, 4, 4), 128)
	b := uniformPlane(image.Rect(0, 0, 4, 3), 128)

	_, err := composite.Compose(a, a, b)
	test.ExpectSuccess(t, curated.Is(err, composite.GeometryMismatch))
	_, err = composite.Compose(a, b, a)
	test.ExpectSuccess(t, curated.Is(err, composite.GeometryMismatch))
	_, err = composite.Compose(b, a, a)
	test.ExpectSuccess(t, curated.Is(err, composite.GeometryMismatch))
}

func TestAlignDefault(t *testing.T) {
	a, err := composite.NewAligner(logger.Deny, specification.DefaultAlignment)
	test.DemandSuccess(t, err)

	luma := uniformPlane(image.Rect(0, 0, 864, 624), 10)
	luma.Pix[luma.PixOffset(specification.CropLeft, specification.CropTop)] = 77

	img, err := a.Align(rom.Luma, luma)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Rect, image.Rect(0, 0, specification.CropWidth, specification.CropHeight))
	test.ExpectEquality(t, img.GrayAt(0, 0).Y, uint8(77))
	test.ExpectEquality(t, img.GrayAt(1, 0).Y, uint8(10))

	chroma := uniformPlane(image.Rect(0, 0, 432, 624), 128)
	img, err = a.Align(rom.RminusY, chroma)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Rect, image.Rect(0, 0, specification.CropWidth, specification.CropHeight))

	// expanding a uniform plane leaves it uniform to within rounding
	for i, v := range img.Pix {
		if v < 127 || v > 129 {
			t.Fatalf("expanded chroma at offset %d is %d", i, v)
		}
	}
}

func TestAlignChromaNearest(t *testing.T) {
	a, err := composite.NewAligner(logger.Deny, specification.Alignment{
		Crop:            image.Rect(2, 1, 6, 3),
		ChromaOffset:    -2,
		ChromaExpansion: 2,
		Scaler:          specification.ScalerNearest,
	})
	test.DemandSuccess(t, err)

	chroma := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			chroma.Pix[chroma.PixOffset(x, y)] = uint8(10*x + y)
		}
	}

	img, err := a.Align(rom.BminusY, chroma)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Rect, image.Rect(0, 0, 4, 2))

	// every column is doubled and the crop starts two expanded columns to
	// the left of the luma crop
	expected := []uint8{
		1, 1, 11, 11,
		2, 2, 12, 12,
	}
	if diff := deep.Equal(img.Pix, expected); diff != nil {
		t.Error(diff)
	}
}

func TestAlignOutside(t *testing.T) {
	a, err := composite.NewAligner(logger.Deny, specification.DefaultAlignment)
	test.DemandSuccess(t, err)

	_, err = a.Align(rom.Luma, uniformPlane(image.Rect(0, 0, 100, 100), 0))
	test.ExpectSuccess(t, curated.Has(err, composite.GeometryMismatch))

	// the chroma crop is offset to the left and cannot start before the
	// first column
	al := specification.DefaultAlignment
	al.Crop = image.Rect(1, 0, 10, 10)
	a, err = composite.NewAligner(logger.Deny, al)
	test.DemandSuccess(t, err)

	_, err = a.Align(rom.Luma, uniformPlane(image.Rect(0, 0, 20, 20), 0))
	test.ExpectSuccess(t, err)
	_, err = a.Align(rom.RminusY, uniformPlane(image.Rect(0, 0, 10, 20), 0))
	test.ExpectSuccess(t, curated.Has(err, composite.GeometryMismatch))
}

func TestInvalidScaler(t *testing.T) {
	al := specification.DefaultAlignment
	al.Scaler = "lanczos"
	_, err := composite.NewAligner(logger.Deny, al)
	test.ExpectFailure(t, err)

	al.Scaler = "CatmullRom"
	_, err = composite.NewAligner(logger.Deny, al)
	test.ExpectSuccess(t, err)
}
