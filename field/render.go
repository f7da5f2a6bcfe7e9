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

package field

import (
	"image"

	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/logger"
	"github.com/pm5644/romraster/rom"
	"github.com/pm5644/romraster/specification"
)

const logTag = "field"

// Renderer draws de-interlaced planes from the vector table.
type Renderer struct {
	perm       logger.Permission
	geom       specification.Geometry
	addressing Addressing
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(perm logger.Permission, geom specification.Geometry, addressing Addressing) (*Renderer, error) {
	if err := geom.Validate(); err != nil {
		return nil, curated.Errorf("field: %v", err)
	}
	return &Renderer{
		perm:       perm,
		geom:       geom,
		addressing: addressing,
	}, nil
}

// Size returns the dimensions of the plane for the group.
func (r *Renderer) Size(g rom.Group) image.Point {
	return image.Pt(r.geom.LineWidth()*g.Channels(), r.geom.Rows())
}

// VectorIndex returns the index into the vector table of a position in a
// line of a field.
func (r *Renderer) VectorIndex(field, line, pos int) int {
	return field*r.geom.FieldLength() + line*r.geom.LineWidth() + pos
}

// Locate returns the plane coordinates of the sample taken from a channel
// for the position in a line of a field.
func (r *Renderer) Locate(g rom.Group, field, line, pos, channel int) image.Point {
	return image.Pt(pos*g.Channels()+channel, 2*line+field)
}

// Source is the inverse of Locate(). It returns the field, line, position
// and channel that a pixel of the plane was taken from.
func (r *Renderer) Source(g rom.Group, p image.Point) (field, line, pos, channel int) {
	n := g.Channels()
	return p.Y % 2, p.Y / 2, p.X / n, p.X % n
}

// Render the plane for a channel group. An error is returned if the vector
// table is too short or if any address is beyond the end of the ROM data.
func (r *Renderer) Render(g rom.Group, set *rom.ChannelSet, vec rom.Vectors) (*image.Gray, error) {
	if err := set.ValidateGroup(g); err != nil {
		return nil, curated.Errorf("field: %v", err)
	}

	if len(vec) < r.geom.MinVectors() {
		return nil, curated.Errorf(rom.MalformedInput, "field",
			curated.Errorf("%v: vector sequence too short (%d vectors, %d required)", g, len(vec), r.geom.MinVectors()))
	}

	channels := set.Channels(g)
	romSize := len(channels[0])

	img := image.NewGray(image.Rectangle{Max: r.Size(g)})

	for field := 0; field < 2; field++ {
		for line := 0; line < r.geom.DrawnLines(); line++ {
			pos := 0
			for _, seg := range r.geom.Segments {
				first := r.VectorIndex(field, line, pos)

				var base int
				if r.addressing == Span {
					start := int(vec[first])
					end := int(vec[first+seg.Length-1])
					if end-start+1 != seg.Length {
						return nil, curated.Errorf(rom.MalformedInput, "field",
							curated.Errorf("%v: field %d line %d %s: address run %#04x to %#04x does not match segment length (%d)",
								g, field+1, line, seg.Name, start, end, seg.Length))
					}
					base = start
				}

				for i := 0; i < seg.Length; i++ {
					var addr int
					if r.addressing == Span {
						addr = base + i
					} else {
						addr = int(vec[first+i])
					}

					if addr >= romSize {
						return nil, curated.Errorf(rom.MalformedInput, "field",
							curated.Errorf("%v: field %d line %d %s: address %#04x at vector %d is beyond the end of the ROM (%d bytes)",
								g, field+1, line, seg.Name, addr, first+i, romSize))
					}

					p := r.Locate(g, field, line, pos+i, 0)
					o := img.PixOffset(p.X, p.Y)
					for c := range channels {
						img.Pix[o+c] = channels[c][addr]
					}
				}

				pos += seg.Length
			}
		}
	}

	logger.Logf(r.perm, logTag, "%v: rendered %dx%d plane using %s addressing", g, img.Rect.Dx(), img.Rect.Dy(), r.addressing)

	return img, nil
}
