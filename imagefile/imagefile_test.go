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

package imagefile_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"

	"github.com/pm5644/romraster/imagefile"
	"github.com/pm5644/romraster/test"
)

func TestPlaneRoundTrip(t *testing.T) {
	plane := image.NewGray(image.Rect(0, 0, 7, 3))
	for i := range plane.Pix {
		plane.Pix[i] = uint8(i * 11)
	}

	fn := filepath.Join(t.TempDir(), "plane.png")
	test.DemandSuccess(t, imagefile.SavePNG(fn, plane))

	loaded, err := imagefile.LoadPlane(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, loaded.Rect, plane.Rect)
	if diff := deep.Equal(loaded.Pix, plane.Pix); diff != nil {
		t.Error(diff)
	}
}

func TestPlaneFromColour(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 2, 4, 3))
	img.SetNRGBA(2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(3, 2, color.NRGBA{R: 200, G: 0, B: 0, A: 255})

	fn := filepath.Join(t.TempDir(), "colour.png")
	test.DemandSuccess(t, imagefile.SavePNG(fn, img))

	plane, err := imagefile.LoadPlane(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plane.Rect, image.Rect(0, 0, 2, 1))
	test.ExpectEquality(t, plane.GrayAt(0, 0).Y, uint8(10))
	test.ExpectEquality(t, plane.GrayAt(1, 0).Y, uint8(200))
}

func TestPlaneSubImage(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range g.Pix {
		g.Pix[i] = uint8(i)
	}
	plane := imagefile.Plane(g.SubImage(image.Rect(1, 1, 3, 3)))
	if diff := deep.Equal(plane.Pix, []uint8{5, 6, 9, 10}); diff != nil {
		t.Error(diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := imagefile.LoadPlane(filepath.Join(dir, "missing.png"))
	test.ExpectFailure(t, err)

	fn := filepath.Join(dir, "notpng.png")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a png"), 0o644))
	_, err = imagefile.LoadPlane(fn)
	test.ExpectFailure(t, err)
}
