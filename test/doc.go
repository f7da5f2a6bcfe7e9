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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a test error and carry on. The Demand*()
// functions stop the test immediately and should be used when later parts of
// the test depend on the value being correct, for example the dimensions of a
// plane before iterating over its pixels.
//
// Success and failure are judged by type. A bool is a success when true and
// an error is a success when nil. The nil value is also considered a success
// because that is how errors work in Go.
//
// The Writer type implements io.Writer and should be used to capture output
// that is compared against an expected string.
package test
