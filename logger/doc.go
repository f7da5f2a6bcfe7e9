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

// Package logger is the central log for the application. Every entry is a
// tag and a detail string. Adjacent entries with the same tag and detail are
// folded into a single entry with a repeat count.
//
// Logging requests carry a Permission. Pipeline stages are handed a
// Permission by their caller so that noisy stages can be silenced without
// any change to the stage itself. The logger.Allow value always permits.
//
// The central logger is safe for concurrent use. Channel groups are rendered
// in parallel and each group logs from its own goroutine.
package logger
