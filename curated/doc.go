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

// Package curated wraps the plain Go error type with pattern matching.
//
// Curated errors are created with the Errorf() function. It takes the same
// arguments as fmt.Errorf() but the formatting pattern is remembered so that
// the error can later be identified by that pattern:
//
//	e := curated.Errorf("overshoot: %s: raw value %d", group, v)
//
//	if curated.Is(e, "overshoot: %s: raw value %d") {
//		...
//	}
//
// Has() is similar but searches for the pattern anywhere in the chain of
// wrapped curated errors:
//
//	f := curated.Errorf("normalise: %v", e)
//
//	curated.Has(f, "overshoot: %s: raw value %d") // true
//	curated.Is(f, "overshoot: %s: raw value %d")  // false
//
// Chains are made of parts separated by ': '. The Error() function
// normalises the chain by removing duplicate adjacent parts, so a stage can
// wrap an error with its own name without worrying whether a lower stage has
// already done so:
//
//	render: render: vector sequence too short
//
// is reported as:
//
//	render: vector sequence too short
//
// Sentinel patterns belong to the package that raises them and are stored as
// exported string constants. For example, rom.MalformedInput.
//
// Curated errors implement Unwrap() so the errors package in the standard
// library can also walk the chain.
package curated
