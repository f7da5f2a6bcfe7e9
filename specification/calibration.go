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

// the luma window observed in the ROM data
const (
	LumaLow  = 41
	LumaHigh = 181
)

// ChromaHeadroom reduces clipping in the RGB conversion to near-zero. The
// result is a saturation of around 75%.
const ChromaHeadroom = 32.0

// the amount chrominance is observed to deviate from the neutral value 128
// in the ROM data
const (
	RangeRminusY = 65.0
	RangeBminusY = 46.0
)

// Calibration of the ROM sample levels.
type Calibration struct {
	LumaLow  int
	LumaHigh int

	// a LumaGain of zero means that the gain is chosen so that the luma
	// window maps exactly to the 0 to 255 display range
	LumaGain float64

	ChromaHeadroom float64
	RangeRminusY   float64
	RangeBminusY   float64
}

// DefaultCalibration for the PM5644 ROM set.
var DefaultCalibration = Calibration{
	LumaLow:        LumaLow,
	LumaHigh:       LumaHigh,
	ChromaHeadroom: ChromaHeadroom,
	RangeRminusY:   RangeRminusY,
	RangeBminusY:   RangeBminusY,
}

// Gain returns the effective luma gain.
func (c Calibration) Gain() float64 {
	if c.LumaGain != 0 {
		return c.LumaGain
	}
	return 255.0 / float64(c.LumaHigh-c.LumaLow)
}

// Validate checks that the calibration values can be used.
func (c Calibration) Validate() error {
	if c.LumaLow < 0 || c.LumaHigh > 255 || c.LumaLow >= c.LumaHigh {
		return fmt.Errorf("calibration: luma window is invalid (%d to %d)", c.LumaLow, c.LumaHigh)
	}
	if c.LumaGain < 0 {
		return fmt.Errorf("calibration: luma gain cannot be negative (%v)", c.LumaGain)
	}
	if c.ChromaHeadroom < 0 || c.ChromaHeadroom >= 128 {
		return fmt.Errorf("calibration: chroma headroom must be in the range 0 to 127 (%v)", c.ChromaHeadroom)
	}
	if c.RangeRminusY <= 0 {
		return fmt.Errorf("calibration: R-Y range must be positive (%v)", c.RangeRminusY)
	}
	if c.RangeBminusY <= 0 {
		return fmt.Errorf("calibration: B-Y range must be positive (%v)", c.RangeBminusY)
	}
	return nil
}

func (c Calibration) String() string {
	return fmt.Sprintf("luma %d to %d (gain %.4f), chroma headroom %v, R-Y range %v, B-Y range %v",
		c.LumaLow, c.LumaHigh, c.Gain(), c.ChromaHeadroom, c.RangeRminusY, c.RangeBminusY)
}
