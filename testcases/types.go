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

// Package testcases holds a catalogue of small scene programs together
// with pixels whose state is known after rendering.
//
// The cases are used by the tests of the mdl package, and can be
// written out as .mdl files by the export command.
package testcases

// TestCase is a scene program with pixels into its rendered frames.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Source string // program text

	Width, Height int // canvas size, 64x64 if zero
	Supersample   int // samples per pixel and axis, 1 if zero

	// Files are additional files, such as meshes, which the program
	// refers to. Keys are file names relative to the program.
	Files map[string]string

	Frames int // number of frames the program renders
	Pixels []Pixel
}

// Pixel describes the state of one pixel after rendering.
type Pixel struct {
	Frame int
	X, Y  int // screen coordinates, y counts up from the bottom row

	// Drawn is set if the pixel differs from the background, and clear
	// if the pixel shows the background.
	Drawn bool
}

// Size returns the canvas size of the test case.
func (tc *TestCase) Size() (int, int) {
	w, h := tc.Width, tc.Height
	if w == 0 {
		w = 64
	}
	if h == 0 {
		h = 64
	}
	return w, h
}

func lit(frame, x, y int) Pixel {
	return Pixel{Frame: frame, X: x, Y: y, Drawn: true}
}

func empty(frame, x, y int) Pixel {
	return Pixel{Frame: frame, X: x, Y: y}
}
