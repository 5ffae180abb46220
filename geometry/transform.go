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

// Package geometry builds object-space triangle meshes and edges for the
// scene primitives, and the 4x4 homogeneous transforms which place them
// in the world.
package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis names a coordinate axis for rotations.
type Axis byte

// The rotation axes.
const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

func (a Axis) String() string {
	return string(rune(a))
}

// Translate returns the matrix which moves points by (x, y, z).
func Translate(x, y, z float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, y, z)
}

// Scale returns the matrix which scales the coordinate axes.
func Scale(x, y, z float64) mgl64.Mat4 {
	return mgl64.Scale3D(x, y, z)
}

// Rotate returns the matrix which rotates counter-clockwise about the
// given axis, looking from the positive axis towards the origin.
// Unknown axes rotate about z.
func Rotate(axis Axis, degrees float64) mgl64.Mat4 {
	theta := mgl64.DegToRad(degrees)
	switch axis {
	case AxisX:
		return mgl64.HomogRotate3DX(theta)
	case AxisY:
		return mgl64.HomogRotate3DY(theta)
	default:
		return mgl64.HomogRotate3DZ(theta)
	}
}

// Apply transforms the point p by m.
func Apply(m *mgl64.Mat4, p r3.Vec) r3.Vec {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if w := v[3]; w != 1 && w != 0 {
		return r3.Vec{X: v[0] / w, Y: v[1] / w, Z: v[2] / w}
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// TransformTriangles applies m to every vertex, in place.
func TransformTriangles(m *mgl64.Mat4, tris []r3.Triangle) {
	for i := range tris {
		for j := range tris[i] {
			tris[i][j] = Apply(m, tris[i][j])
		}
	}
}

// TransformEdges applies m to both ends of every edge, in place.
func TransformEdges(m *mgl64.Mat4, edges []Edge) {
	for i := range edges {
		edges[i].A = Apply(m, edges[i].A)
		edges[i].B = Apply(m, edges[i].B)
	}
}

// Normal returns the (unnormalised) normal of t. A triangle whose
// vertices appear counter-clockwise when seen from outside has an
// outward normal.
func Normal(t *r3.Triangle) r3.Vec {
	return r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
}
