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

const square = "box 10 54 0 44 44 44\n"

var lightCases = []TestCase{
	{
		Name:   "constants",
		Source: "constants red 1 0 0 0 0 0 0 0 0\nbox red 10 54 0 44 44 44\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), empty(0, 5, 5)},
	},
	{
		// a surface which reflects nothing looks like the background
		Name:   "black",
		Source: "constants black 0 0 0 0 0 0 0 0 0\nbox black 10 54 0 44 44 44\n",
		Frames: 1,
		Pixels: []Pixel{empty(0, 32, 32), empty(0, 5, 5)},
	},
	{
		Name:   "light_front",
		Source: "ambient 0 0 0\nlight front 255 255 255 0 0 1\n" + square,
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), empty(0, 5, 5)},
	},
	{
		Name:   "light_behind",
		Source: "ambient 0 0 0\nlight back 255 255 255 0 0 -1\n" + square,
		Frames: 1,
		Pixels: []Pixel{empty(0, 32, 32), empty(0, 5, 5)},
	},
	{
		Name:   "ambient_only",
		Source: "ambient 100 100 100\nlight off 0 0 0 0 0 1\n" + square,
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), empty(0, 5, 5)},
	},
	{
		// the reflectance of one primitive does not carry over to the next
		Name: "constants_reset",
		Source: `constants black 0 0 0 0 0 0 0 0 0
box black 4 60 0 24 56 10
box 36 60 0 24 56 10
`,
		Frames: 1,
		Pixels: []Pixel{empty(0, 16, 32), lit(0, 48, 32)},
	},
}
