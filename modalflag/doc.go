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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes, which are sub-commands selected by
// the first non-flag argument. For example:
//
//	romraster -log GENERATE -dir Resources
//
// The top level flags (-log) are parsed first, then the mode (GENERATE) is
// chosen from the list of sub-modes, then the flags for that mode (-dir) are
// parsed. The first sub-mode in the list is the default and is selected when
// no mode is named on the command line.
//
// Typical usage:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RECOMPOSE", "GENERATE")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "GENERATE":
//		md.NewMode()
//		dir := md.AddString("dir", ".", "working directory")
//		...
//	}
//
// Help messages are produced automatically for the -help flag and include the
// list of sub-modes and any additional help text.
package modalflag
