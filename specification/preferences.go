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

import (
	"image"

	"github.com/pm5644/romraster/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory. See paths.ResourcePath().
const DefaultPrefsFile = "romraster.prefs"

// Preferences binds the overridable values of the calibration and alignment
// to a prefs.Disk.
type Preferences struct {
	dsk *prefs.Disk

	LumaLow        prefs.Int
	LumaHigh       prefs.Int
	LumaGain       prefs.Float
	ChromaHeadroom prefs.Float
	RangeRminusY   prefs.Float
	RangeBminusY   prefs.Float

	CropLeft        prefs.Int
	CropTop         prefs.Int
	CropWidth       prefs.Int
	CropHeight      prefs.Int
	ChromaOffset    prefs.Int
	ChromaExpansion prefs.Int
	Scaler          prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The prefs file is loaded if it exists. An empty path
// means no file is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	bindings := []struct {
		key string
		val interface {
			Set(prefs.Value) error
			Get() prefs.Value
			String() string
		}
	}{
		{"calibration.luma.low", &p.LumaLow},
		{"calibration.luma.high", &p.LumaHigh},
		{"calibration.luma.gain", &p.LumaGain},
		{"calibration.chroma.headroom", &p.ChromaHeadroom},
		{"calibration.chroma.range.rminusy", &p.RangeRminusY},
		{"calibration.chroma.range.bminusy", &p.RangeBminusY},
		{"alignment.crop.left", &p.CropLeft},
		{"alignment.crop.top", &p.CropTop},
		{"alignment.crop.width", &p.CropWidth},
		{"alignment.crop.height", &p.CropHeight},
		{"alignment.chroma.offset", &p.ChromaOffset},
		{"alignment.chroma.expansion", &p.ChromaExpansion},
		{"alignment.chroma.scaler", &p.Scaler},
	}

	for _, b := range bindings {
		err = p.dsk.Add(b.key, b.val)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults sets every preference to the PM5644 default.
func (p *Preferences) SetDefaults() {
	p.LumaLow.Set(DefaultCalibration.LumaLow)
	p.LumaHigh.Set(DefaultCalibration.LumaHigh)
	p.LumaGain.Set(DefaultCalibration.LumaGain)
	p.ChromaHeadroom.Set(DefaultCalibration.ChromaHeadroom)
	p.RangeRminusY.Set(DefaultCalibration.RangeRminusY)
	p.RangeBminusY.Set(DefaultCalibration.RangeBminusY)

	p.CropLeft.Set(DefaultAlignment.Crop.Min.X)
	p.CropTop.Set(DefaultAlignment.Crop.Min.Y)
	p.CropWidth.Set(DefaultAlignment.Crop.Dx())
	p.CropHeight.Set(DefaultAlignment.Crop.Dy())
	p.ChromaOffset.Set(DefaultAlignment.ChromaOffset)
	p.ChromaExpansion.Set(DefaultAlignment.ChromaExpansion)
	p.Scaler.Set(DefaultAlignment.Scaler)
}

// Override applies a command line preference string. See prefs.Disk.Override().
func (p *Preferences) Override(s string) error {
	return p.dsk.Override(s)
}

// Save the preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Calibration returns the current calibration values.
func (p *Preferences) Calibration() Calibration {
	return Calibration{
		LumaLow:        p.LumaLow.Get().(int),
		LumaHigh:       p.LumaHigh.Get().(int),
		LumaGain:       p.LumaGain.Get().(float64),
		ChromaHeadroom: p.ChromaHeadroom.Get().(float64),
		RangeRminusY:   p.RangeRminusY.Get().(float64),
		RangeBminusY:   p.RangeBminusY.Get().(float64),
	}
}

// Alignment returns the current alignment values.
func (p *Preferences) Alignment() Alignment {
	l := p.CropLeft.Get().(int)
	t := p.CropTop.Get().(int)
	return Alignment{
		Crop:            image.Rect(l, t, l+p.CropWidth.Get().(int), t+p.CropHeight.Get().(int)),
		ChromaOffset:    p.ChromaOffset.Get().(int),
		ChromaExpansion: p.ChromaExpansion.Get().(int),
		Scaler:          p.Scaler.Get().(string),
	}
}

func (p *Preferences) String() string {
	return p.dsk.String()
}
