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

package testcases

var strokeCases = []TestCase{
	{
		Name:   "horizontal",
		Source: "line 0 32.5 0 64 32.5 0\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 1, 32), lit(0, 32, 32), empty(0, 32, 40), empty(0, 32, 25)},
	},
	{
		Name:   "vertical",
		Source: "line 20.5 4 0 20.5 60 0\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 20, 10), lit(0, 20, 58), empty(0, 30, 32), empty(0, 20, 62)},
	},
	{
		Name:   "diagonal",
		Source: "line 0 0 0 64 64 0\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), lit(0, 5, 5), empty(0, 10, 50), empty(0, 50, 10)},
	},
	{
		// lines follow the coordinate system like solids do
		Name:   "scaled",
		Source: "scale 2 2 1\nline 0 16.25 0 32 16.25 0\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), empty(0, 32, 16), empty(0, 32, 48)},
	},
	{
		Name:   "in_front",
		Source: "box 10 54 0 44 44 44\nline 32.5 0 10 32.5 64 10\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 2), lit(0, 32, 32), lit(0, 32, 61), empty(0, 5, 5)},
	},
}
