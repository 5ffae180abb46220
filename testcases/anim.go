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

var animCases = []TestCase{
	{
		Name: "slide",
		Source: `frames 4
basename slide
vary k 0 4 0 1
move 40 0 0 k
box 4 40 0 16 16 16
`,
		Frames: 4,
		Pixels: []Pixel{
			lit(0, 12, 32), empty(0, 42, 32),
			lit(3, 42, 32), empty(3, 12, 32),
		},
	},
	{
		Name: "grow",
		Source: `frames 5
vary s 0 5 0.2 1 exponential
move 32 32 0
scale 1 1 1 s
box -20 20 0 40 40 40
`,
		Frames: 5,
		Pixels: []Pixel{
			lit(0, 32, 32), empty(0, 44, 32),
			lit(4, 44, 32), empty(4, 2, 2),
		},
	},
	{
		Name: "path",
		Source: `frames 4
path p 0 4 8 8 8 56 56 56 56 8
move path p
box -4 4 0 8 8 8
`,
		Frames: 4,
		Pixels: []Pixel{
			lit(0, 8, 8), empty(0, 32, 44),
			lit(2, 32, 44), empty(2, 8, 8),
		},
	},
	{
		// setknobs overrides the values of the vary command
		Name: "setknobs",
		Source: `frames 2
vary k 0 2 0 1
setknobs 1
move 30 0 0 k
box 4 40 0 16 16 16
`,
		Frames: 2,
		Pixels: []Pixel{
			lit(0, 42, 32), empty(0, 12, 32),
			lit(1, 42, 32), empty(1, 12, 32),
		},
	},
	{
		// the knob keeps its last value after the vary span ends
		Name: "hold",
		Source: `frames 4
vary k 0 2 0 1
move 40 0 0 k
box 4 40 0 16 16 16
`,
		Frames: 4,
		Pixels: []Pixel{
			lit(0, 12, 32),
			lit(3, 34, 32), empty(3, 12, 32),
		},
	},
}
