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

// Package paths contains functions to prepare paths for romraster resources.
//
// The ResourcePath() function returns the path to a resource. If a
// directory named ".romraster" exists in the working directory then
// resources are placed there. Otherwise they are placed in a "romraster"
// directory in the user's configuration directory, as returned by
// os.UserConfigDir().
//
// ResourcePath() does not create any directories. Functions that write to a
// resource path should create the parent directory first.
package paths

import (
	"os"
	"path/filepath"
)

// the local resource directory. takes precedence over the configuration
// directory if it exists
const localResourcePath = ".romraster"

// the name of the resource directory in the user's configuration directory
const configResourcePath = "romraster"

// ResourcePath returns the path to the resource. The resource arguments are
// joined to form the path.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath(os.UserConfigDir))
	p = append(p, resource...)
	return filepath.Join(p...)
}

func basePath(configDir func() (string, error)) string {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath
	}

	cnf, err := configDir()
	if err != nil {
		return localResourcePath
	}
	return filepath.Join(cnf, configResourcePath)
}
