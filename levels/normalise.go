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

package levels

import (
	"fmt"
	"image"

	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/logger"
	"github.com/pm5644/romraster/rom"
	"github.com/pm5644/romraster/specification"
)

const logTag = "levels"

// Stats summarises the raw samples of a normalised plane.
type Stats struct {
	Group rom.Group

	// the smallest and largest raw sample values
	Min uint8
	Max uint8

	// the number of luma samples clipped to black. always zero for the
	// chroma groups
	Clipped int

	Samples int
}

func (s Stats) String() string {
	if s.Group.IsChroma() {
		return fmt.Sprintf("%v: raw %d to %d", s.Group, s.Min, s.Max)
	}
	return fmt.Sprintf("%v: raw %d to %d, %d of %d clipped", s.Group, s.Min, s.Max, s.Clipped, s.Samples)
}

// Normaliser applies the level functions to entire planes.
type Normaliser struct {
	perm logger.Permission
	cal  specification.Calibration
}

// NewNormaliser is the preferred method of initialisation for the Normaliser
// type.
func NewNormaliser(perm logger.Permission, cal specification.Calibration) (*Normaliser, error) {
	if err := cal.Validate(); err != nil {
		return nil, curated.Errorf("levels: %v", err)
	}
	return &Normaliser{
		perm: perm,
		cal:  cal,
	}, nil
}

// Range returns the chroma range used for the group.
func (n *Normaliser) Range(g rom.Group) float64 {
	if g == rom.BminusY {
		return n.cal.RangeBminusY
	}
	return n.cal.RangeRminusY
}

// Normalise returns a new plane of the same shape as the raw plane. The raw
// plane is not changed. The first sample that overshoots fails the entire
// plane and no plane is returned.
func (n *Normaliser) Normalise(g rom.Group, raw *image.Gray) (*image.Gray, Stats, error) {
	stats := Stats{Group: g, Min: 255}

	b := raw.Bounds()
	img := image.NewGray(b)

	chroma := g.IsChroma()
	rng := n.Range(g)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := raw.Pix[raw.PixOffset(b.Min.X, y):]
		dst := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			s := src[x]

			stats.Samples++
			if s < stats.Min {
				stats.Min = s
			}
			if s > stats.Max {
				stats.Max = s
			}

			var v uint8
			var err error
			if chroma {
				v, err = SaturateChroma(s, rng, n.cal.ChromaHeadroom)
			} else {
				if _, clipped := saturateY(s, n.cal); clipped {
					stats.Clipped++
				}
				v, err = SaturateY(s, n.cal)
			}
			if err != nil {
				return nil, Stats{}, curated.Errorf("levels: %v: pixel (%d, %d): %v", g, b.Min.X+x, y, err)
			}

			dst[x] = v
		}
	}

	if stats.Samples == 0 {
		stats.Min = 0
	}

	logger.Logf(n.perm, logTag, "%v", stats)

	return img, stats, nil
}
