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

package main

import (
	"image"
	"strings"
	"testing"

	"github.com/pm5644/romraster/conversion"
	"github.com/pm5644/romraster/levels"
	"github.com/pm5644/romraster/rom"
	"github.com/pm5644/romraster/test"
)

func TestParseRows(t *testing.T) {
	first, last, err := parseRows("10:20")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, first, 10)
	test.ExpectEquality(t, last, 20)

	first, last, err = parseRows(" 7 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, first, 7)
	test.ExpectEquality(t, last, 7)

	_, _, err = parseRows("a:2")
	test.ExpectFailure(t, err)
	_, _, err = parseRows("1:")
	test.ExpectFailure(t, err)
}

func TestPlainReport(t *testing.T) {
	res := &conversion.Result{}
	res.Raw[rom.Luma] = image.NewGray(image.Rect(0, 0, 864, 624))
	res.Aligned[rom.Luma] = image.NewGray(image.Rect(0, 0, 707, 574))
	res.Stats[rom.Luma] = levels.Stats{Group: rom.Luma, Min: 41, Max: 200, Clipped: 3, Samples: 100}
	res.Composite = image.NewNRGBA(image.Rect(0, 0, 707, 574))
	res.Digest = "abcdef"
	res.Written = []string{"out.png"}

	w := &test.Writer{}
	styles{plain: true}.report(w, "CONVERT", res)

	expected := strings.Join([]string{
		"CONVERT complete",
		"luma  raw plane 864x624",
		"luma  aligned plane 707x574 (luma: raw 41 to 200, 3 of 100 clipped)",
		"composite 707x574 abcdef",
		"out.png",
		"",
	}, "\n")

	if !w.Compare(expected) {
		t.Errorf("unexpected report:\n%s", w)
	}
}

func TestPlainInfo(t *testing.T) {
	w := &test.Writer{}
	styles{plain: true}.info(w, conversion.NewSettings("."))
	test.ExpectSuccess(t, strings.Contains(w.String(), "addressing  vector"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "313 lines of 216"))
}
