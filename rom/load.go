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
	"os"
	"path/filepath"

	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/logger"
	"github.com/pm5644/romraster/specification"
)

const logTag = "rom"

// Load the ROM dumps and the vector dump from the directory. The channel set
// is validated before it is returned.
func Load(perm logger.Permission, dir string, files specification.Files) (*ChannelSet, Vectors, error) {
	set := &ChannelSet{}

	read := func(name string) ([]byte, error) {
		pth := filepath.Join(dir, name)
		b, err := os.ReadFile(pth)
		if err != nil {
			return nil, curated.Errorf("rom: %v", err)
		}
		logger.Logf(perm, logTag, "read %d bytes from %s", len(b), pth)
		return b, nil
	}

	var err error

	for i, f := range files.Luma {
		set.Luma[i], err = read(f)
		if err != nil {
			return nil, nil, err
		}
	}
	for i, f := range files.RminusY {
		set.RminusY[i], err = read(f)
		if err != nil {
			return nil, nil, err
		}
	}
	for i, f := range files.BminusY {
		set.BminusY[i], err = read(f)
		if err != nil {
			return nil, nil, err
		}
	}

	if err := set.Validate(); err != nil {
		return nil, nil, err
	}

	pth := filepath.Join(dir, files.Vectors)
	f, err := os.Open(pth)
	if err != nil {
		return nil, nil, curated.Errorf("rom: %v", err)
	}
	defer f.Close()

	vec, err := ParseVectors(f, Markers{Begin: specification.HeaderBegin, End: specification.HeaderEnd})
	if err != nil {
		return nil, nil, curated.Errorf("rom: %v", err)
	}
	logger.Logf(perm, logTag, "read %d vectors from %s (highest address %#04x)", len(vec), pth, vec.Max())

	return set, vec, nil
}
