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
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/pm5644/romraster/composite"
	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/digest"
	"github.com/pm5644/romraster/field"
	"github.com/pm5644/romraster/imagefile"
	"github.com/pm5644/romraster/levels"
	"github.com/pm5644/romraster/logger"
	"github.com/pm5644/romraster/rom"
)

const logTag = "conversion"

// Conversion runs the stages of a conversion with a fixed set of Settings.
type Conversion struct {
	perm     logger.Permission
	settings Settings

	renderer   *field.Renderer
	normaliser *levels.Normaliser
	aligner    *composite.Aligner
}

// NewConversion is the preferred method of initialisation for the
// Conversion type.
func NewConversion(perm logger.Permission, settings Settings) (*Conversion, error) {
	con := &Conversion{
		perm:     perm,
		settings: settings,
	}

	var err error

	con.renderer, err = field.NewRenderer(perm, settings.Geometry, settings.Addressing)
	if err != nil {
		return nil, curated.Errorf("conversion: %v", err)
	}

	con.normaliser, err = levels.NewNormaliser(perm, settings.Calibration)
	if err != nil {
		return nil, curated.Errorf("conversion: %v", err)
	}

	con.aligner, err = composite.NewAligner(perm, settings.Alignment)
	if err != nil {
		return nil, curated.Errorf("conversion: %v", err)
	}

	return con, nil
}

// Settings returns the settings used by the conversion.
func (con *Conversion) Settings() Settings {
	return con.settings
}

// Generate renders and saves the raw plane of every group.
func (con *Conversion) Generate() (*Result, error) {
	res := &Result{}
	if err := con.generate(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Recompose loads the raw planes and saves the aligned planes and the
// composite image.
func (con *Conversion) Recompose() (*Result, error) {
	res := &Result{}

	files := con.rawFiles()
	for _, g := range rom.Groups {
		var err error
		res.Raw[g], err = imagefile.LoadPlane(con.settings.output(files[g]))
		if err != nil {
			return nil, curated.Errorf("conversion: %v", err)
		}
		logger.Logf(con.perm, logTag, "%v: loaded raw plane from %s", g, files[g])
	}

	if err := con.recompose(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Convert is the equivalent of Generate() followed by Recompose() except
// that the raw planes are not read back from disk.
func (con *Conversion) Convert() (*Result, error) {
	res := &Result{}
	if err := con.generate(res); err != nil {
		return nil, err
	}
	if err := con.recompose(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (con *Conversion) generate(res *Result) error {
	set, vec, err := rom.Load(con.perm, con.settings.Dir, con.settings.Files)
	if err != nil {
		return curated.Errorf("conversion: %v", err)
	}

	var grp errgroup.Group
	for _, g := range rom.Groups {
		g := g
		grp.Go(func() error {
			img, err := con.renderer.Render(g, set, vec)
			if err != nil {
				return err
			}
			res.Raw[g] = img
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return curated.Errorf("conversion: %v", err)
	}

	files := con.rawFiles()
	for _, g := range rom.Groups {
		if err := con.save(res, files[g], res.Raw[g]); err != nil {
			return err
		}
	}

	return nil
}

func (con *Conversion) recompose(res *Result) error {
	var grp errgroup.Group
	for _, g := range rom.Groups {
		g := g
		grp.Go(func() error {
			img, stats, err := con.normaliser.Normalise(g, res.Raw[g])
			if err != nil {
				return err
			}
			res.Stats[g] = stats

			res.Aligned[g], err = con.aligner.Align(g, img)
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return curated.Errorf("conversion: %v", err)
	}

	var err error
	res.Composite, err = composite.Compose(res.Aligned[rom.Luma], res.Aligned[rom.BminusY], res.Aligned[rom.RminusY])
	if err != nil {
		return curated.Errorf("conversion: %v", err)
	}
	res.Digest = digest.Of(res.Composite)

	files := con.alignedFiles()
	for _, g := range rom.Groups {
		if err := con.save(res, files[g], res.Aligned[g]); err != nil {
			return err
		}
	}
	if err := con.save(res, con.settings.Files.Composite, res.Composite); err != nil {
		return err
	}

	logger.Logf(con.perm, logTag, "composite digest %s", res.Digest)

	return nil
}

func (con *Conversion) save(res *Result, name string, img image.Image) error {
	pth := con.settings.output(name)
	if err := imagefile.SavePNG(pth, img); err != nil {
		return curated.Errorf("conversion: %v", err)
	}
	res.Written = append(res.Written, pth)
	logger.Logf(con.perm, logTag, "saved %s", pth)
	return nil
}

// file names indexed by rom.Group
func (con *Conversion) rawFiles() [3]string {
	f := con.settings.Files
	return [3]string{f.LumaRaw, f.RminusYRaw, f.BminusYRaw}
}

func (con *Conversion) alignedFiles() [3]string {
	f := con.settings.Files
	return [3]string{f.LumaAligned, f.RminusYAligned, f.BminusYAligned}
}
