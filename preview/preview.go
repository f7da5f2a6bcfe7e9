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

// Package preview opens a window showing the result of a conversion. The
// window is closed with the escape key or by the window manager.
package preview

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/logger"
)

const logTag = "preview"

// Window shows a single image.
type Window struct {
	perm  logger.Permission
	img   image.Image
	scale int
	title string

	tex *ebiten.Image
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(perm logger.Permission, img image.Image, scale int, title string) (*Window, error) {
	if scale < 1 {
		return nil, curated.Errorf("preview: scale must be at least 1 (%d)", scale)
	}
	if img.Bounds().Empty() {
		return nil, curated.Errorf("preview: image is empty")
	}
	return &Window{
		perm:  perm,
		img:   img,
		scale: scale,
		title: title,
	}, nil
}

// Size returns the initial size of the window.
func (win *Window) Size() (int, int) {
	b := win.img.Bounds()
	return b.Dx() * win.scale, b.Dy() * win.scale
}

// Run opens the window and blocks until it is closed.
func (win *Window) Run() error {
	ebiten.SetWindowTitle(win.title)
	ebiten.SetWindowSize(win.Size())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Logf(win.perm, logTag, "opening %s", win)

	err := ebiten.RunGame(win)
	if err != nil {
		return curated.Errorf("preview: %v", err)
	}
	return nil
}

// Update implements the ebiten.Game interface.
func (win *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements the ebiten.Game interface.
func (win *Window) Draw(screen *ebiten.Image) {
	if win.tex == nil {
		win.tex = ebiten.NewImageFromImage(win.img)
	}
	screen.DrawImage(win.tex, nil)
}

// Layout implements the ebiten.Game interface. The logical screen is always
// the size of the image and is scaled to fit the window.
func (win *Window) Layout(_, _ int) (int, int) {
	b := win.img.Bounds()
	return b.Dx(), b.Dy()
}

func (win *Window) String() string {
	w, h := win.Size()
	return fmt.Sprintf("%s (%dx%d)", win.title, w, h)
}
