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

package scope_test

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/pm5644/romraster/logger"
	"github.com/pm5644/romraster/scope"
	"github.com/pm5644/romraster/test"
)

func plane(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Pix[img.PixOffset(x, y)] = uint8(x + 100*y)
		}
	}
	return img
}

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "scope.wav")

	sc, err := scope.New(fn)
	test.DemandSuccess(t, err)

	p := plane(8, 3)
	test.DemandSuccess(t, sc.AddRows(p, 1, 2))
	test.ExpectEquality(t, sc.Samples(), 16)
	test.ExpectEquality(t, sc.SampleRate(), 8*scope.LineFrequency)

	test.DemandSuccess(t, sc.Write(logger.Deny))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, int(dec.SampleRate), 8*scope.LineFrequency)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.DemandEquality(t, len(buf.Data), 16)

	// row 1 starts at 100 and row 2 at 200
	test.ExpectEquality(t, buf.Data[0], (100-128)*256)
	test.ExpectEquality(t, buf.Data[7], (107-128)*256)
	test.ExpectEquality(t, buf.Data[8], (200-128)*256)
}

func TestRowRange(t *testing.T) {
	sc, err := scope.New(filepath.Join(t.TempDir(), "scope.wav"))
	test.DemandSuccess(t, err)

	p := plane(8, 3)
	test.ExpectFailure(t, sc.AddRows(p, 2, 1))
	test.ExpectFailure(t, sc.AddRows(p, -1, 1))
	test.ExpectFailure(t, sc.AddRows(p, 0, 3))
	test.ExpectSuccess(t, sc.AddRows(p, 0, 0))

	// rows of a different width cannot be mixed
	test.ExpectFailure(t, sc.AddRows(plane(4, 3), 0, 0))
}

func TestEmpty(t *testing.T) {
	_, err := scope.New("")
	test.ExpectFailure(t, err)

	sc, err := scope.New(filepath.Join(t.TempDir(), "scope.wav"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, sc.Write(logger.Deny))
}
