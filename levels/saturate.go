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
	"math"

	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/specification"
)

// CalibrationOvershoot is the sentinel pattern for samples that fall outside
// the calibrated window. The values are the sample kind and a description of
// the sample.
const CalibrationOvershoot = "calibration overshoot: %s: %v"

// the neutral chroma value
const neutral = 128.0

// SaturateY inverts and stretches a raw luma sample. The result is
// truncated. Results below zero are clipped to zero.
func SaturateY(raw uint8, cal specification.Calibration) (uint8, error) {
	v, clipped := saturateY(raw, cal)
	if v > 255 {
		return 0, curated.Errorf(CalibrationOvershoot, "luma",
			curated.Errorf("raw value %d saturates to %.2f", raw, v))
	}
	if clipped {
		return 0, nil
	}
	return uint8(v), nil
}

// saturateY returns the truncated but unclamped luma value and whether it
// was below zero.
func saturateY(raw uint8, cal specification.Calibration) (float64, bool) {
	span := float64(cal.LumaHigh - cal.LumaLow)
	adjusted := span - float64(int(raw)-cal.LumaLow)

	var v float64
	if cal.LumaGain == 0 {
		// dividing last keeps the top of the window at exactly 255
		v = adjusted * 255.0 / span
	} else {
		v = adjusted * cal.LumaGain
	}

	v = math.Trunc(v)
	return v, v < 0
}

// SaturateChroma inverts and scales a raw chroma sample. The rng argument is
// the largest observed deviation of the group from the neutral value. The
// result is truncated.
func SaturateChroma(raw uint8, rng float64, headroom float64) (uint8, error) {
	limit := neutral - headroom
	adjusted := -(float64(raw)-neutral)*limit/rng + neutral

	if math.Abs(adjusted-neutral) > limit {
		return 0, curated.Errorf(CalibrationOvershoot, "chroma",
			curated.Errorf("raw value %d deviates by %.2f (limit %.0f)", raw, math.Abs(adjusted-neutral), limit))
	}

	return uint8(adjusted), nil
}
