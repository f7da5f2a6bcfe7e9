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

// Package scope writes rows of a plane as a WAV file. The samples of a row
// are the samples of one line of the generator output, so loading the file
// into an audio editor shows the line as it would appear on a waveform
// monitor.
package scope

import (
	"fmt"
	"image"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/logger"
)

const logTag = "scope"

// LineFrequency is the number of lines per second in the 625 line system. A
// row of a plane lasts for one line period so the sample rate of a row
// depends on its width.
const LineFrequency = 15625

const bitDepth = 16

// Scope collects plane rows for writing to a WAV file.
type Scope struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the Scope type.
func New(filename string) (*Scope, error) {
	if filename == "" {
		return nil, curated.Errorf("scope: no filename")
	}
	return &Scope{
		filename: filename,
		buffer:   make([]int, 0),
	}, nil
}

// SampleRate returns the sample rate of the rows that have been added. Zero
// if no rows have been added.
func (sc *Scope) SampleRate() int {
	return sc.sampleRate
}

// Samples returns the number of samples that have been added.
func (sc *Scope) Samples() int {
	return len(sc.buffer)
}

// AddRows appends the rows from first to last inclusive. All rows added to a
// Scope must be of the same width.
func (sc *Scope) AddRows(plane *image.Gray, first, last int) error {
	b := plane.Bounds()
	if first > last || first < 0 || last >= b.Dy() {
		return curated.Errorf("scope: rows %d to %d are outside of the plane (%d rows)", first, last, b.Dy())
	}

	rate := b.Dx() * LineFrequency
	if sc.sampleRate != 0 && sc.sampleRate != rate {
		return curated.Errorf("scope: plane width (%d) differs from previous rows", b.Dx())
	}
	sc.sampleRate = rate

	for y := first; y <= last; y++ {
		row := plane.Pix[plane.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < b.Dx(); x++ {
			// centre the byte range on zero and scale to the bit depth
			sc.buffer = append(sc.buffer, (int(row[x])-128)<<(bitDepth-8))
		}
	}

	return nil
}

// Write the samples to the WAV file.
func (sc *Scope) Write(perm logger.Permission) (rerr error) {
	if len(sc.buffer) == 0 {
		return curated.Errorf("scope: no samples to write")
	}

	f, err := os.Create(sc.filename)
	if err != nil {
		return curated.Errorf("scope: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("scope: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sc.sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sc.sampleRate,
		},
		Data:           sc.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(perm, logTag, "writing %d samples at %dHz to %s", len(sc.buffer), sc.sampleRate, sc.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("scope: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("scope: %v", err)
	}

	return nil
}

func (sc *Scope) String() string {
	return fmt.Sprintf("%s: %d samples at %dHz", sc.filename, len(sc.buffer), sc.sampleRate)
}
