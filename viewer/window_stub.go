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

//go:build !cgo

package viewer

import (
	"errors"
	"image"
)

// Window is unavailable in builds without cgo.
type Window struct{}

// NewWindow returns a window which cannot be opened.
func NewWindow(width, height int) *Window {
	return &Window{}
}

// Show discards img.
func (w *Window) Show(img image.Image) error {
	return nil
}

// Run reports that no window system is available.
func (w *Window) Run(title string) error {
	return errors.New("display needs a build with cgo enabled")
}
