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

var ctmCases = []TestCase{
	{
		Name:   "translate",
		Source: "move 32 32 0\nbox -10 10 0 20 20 20\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), lit(0, 23, 40), empty(0, 10, 10), empty(0, 45, 32)},
	},
	{
		Name:   "scale",
		Source: "scale 2 2 1\nbox 5 27 0 22 22 22\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), lit(0, 50, 50), empty(0, 5, 5), empty(0, 58, 32)},
	},
	{
		// a diamond, the corners of the unrotated square stay empty
		Name:   "rotate_z",
		Source: "move 32 32 0\nrotate z 45\nbox -10 10 0 20 20 20\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), lit(0, 32, 44), lit(0, 44, 32), empty(0, 40, 40), empty(0, 23, 23)},
	},
	{
		// the box is seen corner on
		Name:   "rotate_y",
		Source: "move 32 32 0\nrotate y -45\nbox -10 10 10 20 20 20\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), empty(0, 50, 32), empty(0, 14, 32)},
	},
	{
		Name:   "push_pop",
		Source: "push\nmove 100 0 0\npop\nbox 10 54 0 44 44 44\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), empty(0, 5, 5)},
	},
	{
		Name: "nested",
		Source: `move 16 16 0
push
move 32 32 0
box -4 4 0 8 8 8
pop
box -4 4 0 8 8 8
`,
		Frames: 1,
		Pixels: []Pixel{lit(0, 16, 16), lit(0, 48, 48), empty(0, 32, 32), empty(0, 48, 16)},
	},
	{
		// transforms compose in program order
		Name:   "compose",
		Source: "move 32 32 0\nscale 0.5 0.5 0.5\nbox -20 20 0 40 40 40\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), lit(0, 40, 40), empty(0, 44, 44), empty(0, 20, 20)},
	},
}
