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

// Package prefs holds typed preference values and the means to load and save
// them. Values are bound to a key in a Disk instance:
//
//	var gain prefs.Float
//	dsk, _ := prefs.NewDisk("romraster.prefs")
//	dsk.Add("calibration.luma.gain", &gain)
//	dsk.Load()
//
// The file format is one "key :: value" entry per line. Keys that are in the
// file but not bound to the Disk instance are preserved when the file is
// saved.
//
// Command line preferences are a string of "key::value" pairs separated by
// semi-colons. They are applied with Disk.Override() after the file has been
// loaded and are never saved to disk unless Save() is called explicitly.
package prefs
