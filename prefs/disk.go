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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// separates key and value in the prefs file.
const keySep = " :: "

// Disk binds preference values to keys and to a file on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// entries in the prefs file that have not been bound with Add(). they are
	// kept so that saving the file doesn't destroy them
	unbound map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file at path need not exist. An empty path means the Disk will never read
// or write a file but can still be used for command line overrides.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
		unbound: make(map[string]string),
	}
	return dsk, nil
}

// Add a preference value to the Disk under the specified key.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: empty key")
	}
	if strings.Contains(key, "::") || strings.Contains(key, ";") {
		return fmt.Errorf("prefs: illegal character in key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Keys returns the list of bound keys in alphabetical order.
func (dsk *Disk) Keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Load the prefs file. A missing file is not an error.
func (dsk *Disk) Load() error {
	if dsk.path == "" {
		return nil
	}

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	return dsk.read(f)
}

func (dsk *Disk) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		key, value, ok := strings.Cut(s, strings.TrimSpace(keySep))
		if !ok {
			return fmt.Errorf("prefs: %s: line %d: missing separator", dsk.path, ln)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if p, ok := dsk.entries[key]; ok {
			if err := p.Set(value); err != nil {
				return fmt.Errorf("prefs: %s: line %d: %w", dsk.path, ln, err)
			}
		} else {
			dsk.unbound[key] = value
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Save all bound and unbound entries to the prefs file.
func (dsk *Disk) Save() (rerr error) {
	if dsk.path == "" {
		return fmt.Errorf("prefs: no file to save to")
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("prefs: %w", err)
		}
	}()

	return dsk.write(f)
}

func (dsk *Disk) write(w io.Writer) error {
	all := make(map[string]string, len(dsk.entries)+len(dsk.unbound))
	for k, v := range dsk.unbound {
		all[k] = v
	}
	for k, p := range dsk.entries {
		all[k] = p.String()
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := io.WriteString(w, fmt.Sprintf("%s%s%s\n", k, keySep, all[k])); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return nil
}

// String returns the bound entries in the same format as the prefs file.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.Keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}
