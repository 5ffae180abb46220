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

var fillCases = []TestCase{
	{
		Name:   "box_front",
		Source: "box 10 54 0 44 44 44\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), lit(0, 11, 52), empty(0, 5, 5), empty(0, 60, 60)},
	},
	{
		Name:   "sphere",
		Source: "sphere 32 32 0 20\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), lit(0, 32, 45), empty(0, 2, 2), empty(0, 32, 56)},
	},
	{
		// the ring lies in the xy plane after the rotation
		Name:   "torus",
		Source: "move 32 32 0\nrotate x 90\ntorus 0 0 0 6 20\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 52, 32), lit(0, 11, 32), empty(0, 32, 32), empty(0, 2, 2)},
	},
	{
		Name:   "cylinder",
		Source: "cylinder 32 12 0 15 40\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), lit(0, 20, 14), empty(0, 10, 32), empty(0, 32, 58)},
	},
	{
		Name:   "cone",
		Source: "cone 32 12 0 20 40\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 20), lit(0, 32, 45), empty(0, 10, 50), empty(0, 54, 50)},
	},
	{
		Name:   "mesh_quad",
		Source: "mesh :quad\n",
		Files: map[string]string{
			"quad.obj": "v 10 10 0\nv 54 10 0\nv 54 54 0\nv 10 54 0\nf 1 2 3 4\n",
		},
		Frames: 1,
		Pixels: []Pixel{lit(0, 32, 32), lit(0, 12, 50), empty(0, 5, 32), empty(0, 58, 58)},
	},
	{
		// only part of the box is shown by the canvas
		Name:   "clipped",
		Source: "box -20 84 0 50 100 10\n",
		Frames: 1,
		Pixels: []Pixel{lit(0, 0, 0), lit(0, 29, 63), empty(0, 31, 32), empty(0, 63, 0)},
	},
	{
		Name:        "supersampled",
		Source:      "sphere 32 32 0 20\n",
		Supersample: 3,
		Frames:      1,
		Pixels:      []Pixel{lit(0, 32, 32), empty(0, 2, 2), empty(0, 61, 61)},
	},
}
