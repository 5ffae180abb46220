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

// Package script holds the in-memory form of a scene program: the
// ordered list of operations, the table of named symbols, and a parser
// for the textual MDL syntax.
package script

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mdl/geometry"
	"seehuhn.de/go/mdl/light"
)

// Program is a parsed scene program.
type Program struct {
	Ops     []Op
	Symbols Symbols

	// Dir is the directory relative to which mesh files are found.
	Dir string
}

// Op is one operation of a program. The concrete types are the structs
// in this file.
type Op interface {
	isOp()
}

// Push duplicates the top of the transform stack.
type Push struct{}

// Pop discards the top of the transform stack.
type Pop struct{}

// Move translates the current coordinate system. If Path is set, the
// translation is the frame's sample of that path and X, Y, Z are unused.
// Otherwise X, Y, Z are multiplied by the value of Knob, if set.
type Move struct {
	X, Y, Z float64
	Knob    string
	Path    string
}

// Scale scales the current coordinate system, optionally multiplied by
// a knob value.
type Scale struct {
	X, Y, Z float64
	Knob    string
}

// Rotate rotates the current coordinate system. The angle is given in
// degrees and is multiplied by the value of Knob, if set.
type Rotate struct {
	Axis    geometry.Axis
	Degrees float64
	Knob    string
}

// Box draws an axis-aligned box from its top-left-front corner.
type Box struct {
	Constants string
	X, Y, Z   float64
	W, H, D   float64
}

// Sphere draws a sphere.
type Sphere struct {
	Constants string
	X, Y, Z   float64
	R         float64
}

// Torus draws a torus around the y axis. R0 is the tube radius and R1
// the distance from the centre to the middle of the tube.
type Torus struct {
	Constants string
	X, Y, Z   float64
	R0, R1    float64
}

// Cylinder draws a closed cylinder standing on (X, Y, Z).
type Cylinder struct {
	Constants string
	X, Y, Z   float64
	R, H      float64
}

// Cone draws a closed cone standing on (X, Y, Z).
type Cone struct {
	Constants string
	X, Y, Z   float64
	R, H      float64
}

// Line draws an unlit line segment.
type Line struct {
	Constants  string
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// Mesh draws the triangles of an OBJ file.
type Mesh struct {
	Constants string
	File      string
}

// Display shows the current screen.
type Display struct{}

// Save writes the current screen to a file.
type Save struct {
	File string
}

// Basename sets the name of the animation frames.
type Basename struct {
	Name string
}

// Frames sets the number of frames.
type Frames struct {
	N int
}

// Interpolation selects how Vary moves between its end values.
type Interpolation int

// The interpolation laws.
const (
	Linear Interpolation = iota
	Exponential
	Logarithmic
)

func (k Interpolation) String() string {
	switch k {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	case Logarithmic:
		return "logarithmic"
	default:
		return "unknown"
	}
}

// Vary animates a knob: the value is From at frame Start and moves
// towards To over the frames before End.
type Vary struct {
	Knob       string
	Start, End int
	From, To   float64
	Kind       Interpolation
}

// Path animates a 2D point along a cubic Bézier curve, sampled once per
// frame in [Start, End).
type Path struct {
	Name       string
	Start, End int
	Points     [4]vec.Vec2
}

// Set assigns a value to a knob for the rest of the frame.
type Set struct {
	Knob  string
	Value float64
}

// SetKnobs assigns a value to every knob for the rest of the frame.
type SetKnobs struct {
	Value float64
}

// Ambient sets the ambient light for the rest of the frame.
type Ambient struct {
	Color light.RGB
}

func (Push) isOp()     {}
func (Pop) isOp()      {}
func (Move) isOp()     {}
func (Scale) isOp()    {}
func (Rotate) isOp()   {}
func (Box) isOp()      {}
func (Sphere) isOp()   {}
func (Torus) isOp()    {}
func (Cylinder) isOp() {}
func (Cone) isOp()     {}
func (Line) isOp()     {}
func (Mesh) isOp()     {}
func (Display) isOp()  {}
func (Save) isOp()     {}
func (Basename) isOp() {}
func (Frames) isOp()   {}
func (Vary) isOp()     {}
func (Path) isOp()     {}
func (Set) isOp()      {}
func (SetKnobs) isOp() {}
func (Ambient) isOp()  {}
