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

package rom

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pm5644/romraster/curated"
)

// Vectors is the recorded sequence of ROM addresses. The same sequence
// addresses every channel of every group.
type Vectors []uint16

// Markers are the lines that begin and end a header section in the vector
// dump.
type Markers struct {
	Begin string
	End   string
}

// ParseVectors reads a vector dump. Lines between the Begin and End markers
// (inclusive) are ignored. Every other non-empty line contributes its first
// whitespace delimited token, which is parsed as a hexadecimal 16-bit value.
//
// A dump may have more than one header section. A header that is never
// closed hides the remainder of the file.
func ParseVectors(r io.Reader, markers Markers) (Vectors, error) {
	vec := make(Vectors, 0, 1<<17)

	scanner := bufio.NewScanner(r)
	ignore := false
	ln := 0

	for scanner.Scan() {
		ln++
		s := strings.TrimSpace(scanner.Text())

		if markers.Begin != "" && s == markers.Begin {
			ignore = true
			continue
		}

		if markers.End != "" && s == markers.End {
			ignore = false
			continue
		}

		if ignore {
			continue
		}

		f := strings.Fields(s)
		if len(f) == 0 {
			continue
		}

		v, err := strconv.ParseUint(f[0], 16, 16)
		if err != nil {
			return nil, curated.Errorf(MalformedInput, "vectors",
				curated.Errorf("line %d: cannot parse address %q", ln, f[0]))
		}

		vec = append(vec, uint16(v))
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("vectors: %v", err)
	}

	return vec, nil
}

// Max returns the largest address in the sequence.
func (vec Vectors) Max() uint16 {
	var m uint16
	for _, v := range vec {
		if v > m {
			m = v
		}
	}
	return m
}
