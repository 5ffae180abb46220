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

var complexCases = []TestCase{
	{
		Name: "robot",
		Source: `// base
move 32 0 0
box -12 8 0 24 8 8
push
move 0 8 0
// arm
box -3 36 0 6 36 6
move 0 36 0
// head
sphere 0 0 0 6
pop
`,
		Frames: 1,
		Pixels: []Pixel{
			lit(0, 32, 4), lit(0, 32, 30), lit(0, 32, 47),
			empty(0, 10, 30), empty(0, 50, 50),
		},
	},
	{
		Name: "orbit",
		Source: `frames 3
basename orbit
vary r 0 3 0 1
move 32 32 0
sphere 0 0 0 8
rotate z 360 r
move 20 0 0
sphere 0 0 0 4
`,
		Frames: 3,
		Pixels: []Pixel{
			lit(0, 32, 32), lit(0, 52, 32), empty(0, 22, 49),
			lit(1, 32, 32), lit(1, 22, 49), empty(1, 52, 32),
		},
	},
	{
		Name: "stairs",
		Source: `move 4 0 0
box 0 8 0 12 8 8
move 12 8 0
box 0 8 0 12 8 8
move 12 8 0
box 0 8 0 12 8 8
move 12 8 0
box 0 8 0 12 8 8
// handrail
line -36 -24 10 12 8 10
`,
		Frames: 1,
		Pixels: []Pixel{
			lit(0, 10, 4), lit(0, 22, 12), lit(0, 34, 20), lit(0, 46, 28),
			empty(0, 10, 32), empty(0, 46, 8),
		},
	},
}
