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

// Package digest creates fingerprints of the images produced by a
// conversion. A fingerprint can be compared with an expected value to detect
// changes in the output.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

// Digest implementations return a hash of the data added to them.
type Digest interface {
	Hash() string
	ResetDigest()
}

const pixelDepth = 3

// Image is a chained fingerprint of one or more images. Each image added is
// hashed along with the previous digest value.
type Image struct {
	digest [sha1.Size]byte
	pixels []byte
}

// Hash implements the Digest interface.
func (dig *Image) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Image) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Add an image to the digest. The dimensions of the image are part of the
// fingerprint as well as the RGB value of every pixel.
func (dig *Image) Add(img image.Image) {
	b := img.Bounds()

	// previous digest followed by the dimensions of the image
	l := len(dig.digest) + 8 + b.Dx()*b.Dy()*pixelDepth
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	i := copy(dig.pixels, dig.digest[:])
	binary.BigEndian.PutUint32(dig.pixels[i:], uint32(b.Dx()))
	binary.BigEndian.PutUint32(dig.pixels[i+4:], uint32(b.Dy()))
	i += 8

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dig.pixels[i] = c.R
			dig.pixels[i+1] = c.G
			dig.pixels[i+2] = c.B
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
}

// Of returns the hash of a single image.
func Of(img image.Image) string {
	var dig Image
	dig.Add(img)
	return dig.Hash()
}
