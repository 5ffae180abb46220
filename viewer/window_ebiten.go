// seehuhn.de/go/mdl - an animation interpreter for scene descriptions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

//go:build cgo

// Package viewer opens a desktop window showing rendered frames.
package viewer

import (
	"image"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window is a desktop window which shows the most recently displayed
// frame. Show may be called from any goroutine; Run must be called from
// the main goroutine.
type Window struct {
	width, height int

	mu    sync.Mutex
	img   *image.RGBA
	dirty bool

	ebImg *ebiten.Image
}

// NewWindow returns a window for frames of the given size.
func NewWindow(width, height int) *Window {
	return &Window{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Show replaces the window contents by img.
func (w *Window) Show(img image.Image) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	draw.Draw(w.img, w.img.Bounds(), img, img.Bounds().Min, draw.Src)
	w.dirty = true
	return nil
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetTPS(30)
	return ebiten.RunGame(w)
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(dst *ebiten.Image) {
	if w.ebImg == nil {
		w.ebImg = ebiten.NewImage(w.width, w.height)
	}
	w.mu.Lock()
	if w.dirty {
		w.ebImg.WritePixels(w.img.Pix)
		w.dirty = false
	}
	w.mu.Unlock()
	dst.DrawImage(w.ebImg, nil)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
