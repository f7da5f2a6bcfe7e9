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

package specification

import "fmt"

// Segment is a part of a line in the vector table. Every line is made of the
// same list of segments.
type Segment struct {
	Name   string
	Length int
}

// Geometry of the vector table.
type Geometry struct {
	// segments in the order they are drawn
	Segments []Segment

	// the number of lines in each field. the last line of each field is not
	// drawn
	NumLines int
}

// the segments of the PM5644 line
const (
	BackSpriteLength  = 64
	RasterLength      = 120
	FrontSpriteLength = 32
	NumLines          = 313
)

// PM5644 is the geometry of the recorded PM5644 vector table.
var PM5644 = NewGeometry(BackSpriteLength, RasterLength, FrontSpriteLength, NumLines)

// NewGeometry creates a geometry with the three standard segments.
func NewGeometry(backSprite, raster, frontSprite, numLines int) Geometry {
	return Geometry{
		Segments: []Segment{
			{Name: "back sprite", Length: backSprite},
			{Name: "raster", Length: raster},
			{Name: "front sprite", Length: frontSprite},
		},
		NumLines: numLines,
	}
}

// LineWidth is the number of vectors in a single line.
func (g Geometry) LineWidth() int {
	var w int
	for _, s := range g.Segments {
		w += s.Length
	}
	return w
}

// FieldLength is the number of vectors in a single field.
func (g Geometry) FieldLength() int {
	return g.LineWidth() * g.NumLines
}

// MinVectors is the minimum length of a vector sequence. Two complete
// fields.
func (g Geometry) MinVectors() int {
	return 2 * g.FieldLength()
}

// DrawnLines is the number of lines drawn from each field.
func (g Geometry) DrawnLines() int {
	return g.NumLines - 1
}

// Rows is the height of a de-interlaced plane.
func (g Geometry) Rows() int {
	return 2 * g.DrawnLines()
}

// Validate checks that the geometry can be drawn.
func (g Geometry) Validate() error {
	if len(g.Segments) == 0 {
		return fmt.Errorf("geometry: no segments")
	}
	for _, s := range g.Segments {
		if s.Length <= 0 {
			return fmt.Errorf("geometry: %s segment length must be positive (%d)", s.Name, s.Length)
		}
	}
	if g.NumLines < 2 {
		return fmt.Errorf("geometry: at least two lines per field are required (%d)", g.NumLines)
	}
	return nil
}

func (g Geometry) String() string {
	s := fmt.Sprintf("%d lines of %d", g.NumLines, g.LineWidth())
	for i, seg := range g.Segments {
		if i == 0 {
			s = fmt.Sprintf("%s (%s %d", s, seg.Name, seg.Length)
		} else {
			s = fmt.Sprintf("%s, %s %d", s, seg.Name, seg.Length)
		}
	}
	return s + ")"
}
