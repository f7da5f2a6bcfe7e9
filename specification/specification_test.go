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

package specification_test

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pm5644/romraster/specification"
	"github.com/pm5644/romraster/test"
)

func TestGeometry(t *testing.T) {
	g := specification.PM5644
	test.ExpectSuccess(t, g.Validate())
	test.ExpectEquality(t, g.LineWidth(), 216)
	test.ExpectEquality(t, g.FieldLength(), 216*313)
	test.ExpectEquality(t, g.MinVectors(), 2*216*313)
	test.ExpectEquality(t, g.DrawnLines(), 312)
	test.ExpectEquality(t, g.Rows(), 624)
	test.ExpectEquality(t, g.String(), "313 lines of 216 (back sprite 64, raster 120, front sprite 32)")

	test.ExpectFailure(t, specification.NewGeometry(64, 0, 32, 313).Validate())
	test.ExpectFailure(t, specification.NewGeometry(64, 120, 32, 1).Validate())
	test.ExpectFailure(t, specification.Geometry{NumLines: 10}.Validate())
}

func TestCalibration(t *testing.T) {
	c := specification.DefaultCalibration
	test.ExpectSuccess(t, c.Validate())
	test.ExpectApproximate(t, c.Gain(), 255.0/140.0, 0.0001)

	c.LumaGain = 1.82
	test.ExpectEquality(t, c.Gain(), 1.82)

	c = specification.DefaultCalibration
	c.ChromaHeadroom = 128
	test.ExpectFailure(t, c.Validate())

	c = specification.DefaultCalibration
	c.LumaHigh = 256
	test.ExpectFailure(t, c.Validate())
}

func TestAlignment(t *testing.T) {
	a := specification.DefaultAlignment
	test.ExpectSuccess(t, a.Validate())
	test.ExpectEquality(t, a.Crop, image.Rect(144, 41, 851, 615))
	test.ExpectEquality(t, a.ChromaCrop(), image.Rect(142, 41, 849, 615))

	// the crop fits inside the PM5644 planes
	luma := image.Rect(0, 0, specification.PM5644.LineWidth()*4, specification.PM5644.Rows())
	chroma := image.Rect(0, 0, specification.PM5644.LineWidth()*2*a.ChromaExpansion, specification.PM5644.Rows())
	test.ExpectSuccess(t, a.Crop.In(luma))
	test.ExpectSuccess(t, a.ChromaCrop().In(chroma))

	a.Scaler = "BiLinear"
	test.ExpectSuccess(t, a.Validate())
	a.Scaler = "box"
	test.ExpectFailure(t, a.Validate())
}

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), specification.DefaultPrefsFile)

	p, err := specification.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Calibration(), specification.DefaultCalibration)
	test.ExpectEquality(t, p.Alignment(), specification.DefaultAlignment)

	test.ExpectSuccess(t, p.Override("calibration.luma.gain::1.82; alignment.chroma.scaler::nearest"))
	test.ExpectEquality(t, p.Calibration().LumaGain, 1.82)
	test.ExpectEquality(t, p.Alignment().Scaler, specification.ScalerNearest)

	test.ExpectFailure(t, p.Override("calibration.luma.contrast::1"))
	test.ExpectFailure(t, p.Override("alignment.crop.left::left"))

	test.DemandSuccess(t, p.Save())
	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "calibration.luma.gain :: 1.82\n"))

	// the saved values are loaded by a new Preferences
	p, err = specification.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Calibration().LumaGain, 1.82)
	test.ExpectEquality(t, p.Alignment().Crop, specification.DefaultAlignment.Crop)

	p.SetDefaults()
	test.ExpectEquality(t, p.Calibration(), specification.DefaultCalibration)
}

func TestNoPreferencesFile(t *testing.T) {
	p, err := specification.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Override("calibration.luma.low::40"))
	test.ExpectEquality(t, p.Calibration().LumaLow, 40)
}

func TestFiles(t *testing.T) {
	f := specification.DefaultFiles
	test.ExpectEquality(t, f.Vectors, "pm5644_vectors.txt")
	test.ExpectEquality(t, f.Composite, "PM5644_Composite.png")
	test.ExpectEquality(t, len(f.Luma), 4)
}
