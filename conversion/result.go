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

package conversion

import (
	"fmt"
	"image"
	"strings"

	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/levels"
	"github.com/pm5644/romraster/rom"
)

// DigestMismatch is the sentinel pattern for a composite image that does not
// have the expected digest. The values are the expected and actual digests.
const DigestMismatch = "digest mismatch: expected %s: got %s"

// Result of a conversion. Planes and statistics are indexed by rom.Group.
// Fields of stages that were not run are nil or zero.
type Result struct {
	Raw     [3]*image.Gray
	Aligned [3]*image.Gray
	Stats   [3]levels.Stats

	Composite *image.NRGBA

	// hash of the composite image. see the digest package
	Digest string

	// the files written in the order they were written
	Written []string
}

func (res *Result) String() string {
	b := &strings.Builder{}
	for _, g := range rom.Groups {
		if res.Raw[g] != nil {
			fmt.Fprintf(b, "%v raw: %dx%d\n", g, res.Raw[g].Rect.Dx(), res.Raw[g].Rect.Dy())
		}
	}
	for _, g := range rom.Groups {
		if res.Aligned[g] != nil {
			fmt.Fprintf(b, "%v aligned: %dx%d (%v)\n", g, res.Aligned[g].Rect.Dx(), res.Aligned[g].Rect.Dy(), res.Stats[g])
		}
	}
	if res.Composite != nil {
		fmt.Fprintf(b, "composite: %dx%d %s\n", res.Composite.Rect.Dx(), res.Composite.Rect.Dy(), res.Digest)
	}
	return b.String()
}

// Verify compares the digest of the composite image with an expected value.
// The comparison is case insensitive.
func (res *Result) Verify(expected string) error {
	if res.Composite == nil {
		return curated.Errorf("conversion: no composite image to verify")
	}
	if !strings.EqualFold(res.Digest, strings.TrimSpace(expected)) {
		return curated.Errorf(DigestMismatch, expected, res.Digest)
	}
	return nil
}
