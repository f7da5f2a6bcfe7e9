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
	"io"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/pm5644/romraster/field"
	"github.com/pm5644/romraster/specification"
)

// Settings for a conversion.
type Settings struct {
	// directory containing the ROM dumps and the vector dump
	Dir string

	// directory that images are written to and that Recompose() reads the
	// raw images from. if empty then Dir is used
	Output string

	Files       specification.Files
	Geometry    specification.Geometry
	Addressing  field.Addressing
	Calibration specification.Calibration
	Alignment   specification.Alignment
}

// NewSettings returns the PM5644 settings for the directory.
func NewSettings(dir string) Settings {
	return Settings{
		Dir:         dir,
		Files:       specification.DefaultFiles,
		Geometry:    specification.PM5644,
		Addressing:  field.PerVector,
		Calibration: specification.DefaultCalibration,
		Alignment:   specification.DefaultAlignment,
	}
}

// output returns the path of an output file.
func (s Settings) output(name string) string {
	if s.Output == "" {
		return filepath.Join(s.Dir, name)
	}
	return filepath.Join(s.Output, name)
}

func (s Settings) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "geometry: %v\n", s.Geometry)
	fmt.Fprintf(b, "addressing: %v\n", s.Addressing)
	fmt.Fprintf(b, "calibration: %v\n", s.Calibration)
	fmt.Fprintf(b, "alignment: %v\n", s.Alignment)
	return b.String()
}

// DumpStructure writes a graphviz representation of the settings.
func (s Settings) DumpStructure(output io.Writer) {
	memviz.Map(output, &s)
}
