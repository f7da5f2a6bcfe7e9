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

package prefs

import (
	"fmt"
	"strings"
)

// ParseCommandLine divides a command line preference string into key/value
// pairs. The format of the string is:
//
//	key::value; key::value
//
// Empty parts are ignored. A part without the "::" separator is an error.
func ParseCommandLine(s string) (map[string]string, error) {
	kv := make(map[string]string)

	for _, p := range strings.Split(s, ";") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		key, value, ok := strings.Cut(p, "::")
		if !ok {
			return nil, fmt.Errorf("prefs: malformed command line preference (%s)", p)
		}
		kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return kv, nil
}

// Override applies a command line preference string to the bound entries.
// Unknown keys are an error.
func (dsk *Disk) Override(s string) error {
	kv, err := ParseCommandLine(s)
	if err != nil {
		return err
	}

	for key, value := range kv {
		p, ok := dsk.entries[key]
		if !ok {
			return fmt.Errorf("prefs: unknown preference (%s)", key)
		}
		if err := p.Set(value); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}

	return nil
}
