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

package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Edge is a line segment.
type Edge struct {
	A, B r3.Vec
}

// MinSteps is the smallest tessellation resolution accepted by the
// curved primitives.
const MinSteps = 3

// degenerateArea is the smallest doubled area of a generated triangle.
const degenerateArea = 1e-12

// Box returns the 12 triangles of the axis-aligned box whose
// top-left-front corner is (x, y, z) and which extends w along +x,
// h along -y and d along -z.
func Box(x, y, z, w, h, d float64) []r3.Triangle {
	x0, x1 := x, x+w
	y0, y1 := y-h, y
	z0, z1 := z-d, z

	v := func(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

	var tris []r3.Triangle
	quad := func(a, b, c, d r3.Vec) {
		tris = addTriangle(tris, a, b, c)
		tris = addTriangle(tris, a, c, d)
	}
	quad(v(x0, y0, z1), v(x1, y0, z1), v(x1, y1, z1), v(x0, y1, z1)) // front
	quad(v(x1, y0, z0), v(x0, y0, z0), v(x0, y1, z0), v(x1, y1, z0)) // back
	quad(v(x1, y0, z1), v(x1, y0, z0), v(x1, y1, z0), v(x1, y1, z1)) // right
	quad(v(x0, y0, z0), v(x0, y0, z1), v(x0, y1, z1), v(x0, y1, z0)) // left
	quad(v(x0, y1, z1), v(x1, y1, z1), v(x1, y1, z0), v(x0, y1, z0)) // top
	quad(v(x0, y0, z0), v(x1, y0, z0), v(x1, y0, z1), v(x0, y0, z1)) // bottom
	return tris
}

// Sphere returns a triangulated sphere with the given centre and radius.
// steps is the number of divisions around the equator.
func Sphere(cx, cy, cz, r float64, steps int) []r3.Triangle {
	steps = max(steps, MinSteps)
	return surface(nil, steps, max(steps/2, 2), func(u, v float64) r3.Vec {
		sinTheta, cosTheta := math.Sincos(2 * math.Pi * u)
		sinPhi, cosPhi := math.Sincos(math.Pi * v)
		return r3.Vec{
			X: cx + r*sinPhi*cosTheta,
			Y: cy + r*cosPhi,
			Z: cz + r*sinPhi*sinTheta,
		}
	})
}

// Torus returns a triangulated torus around the y axis through
// (cx, cy, cz). r0 is the radius of the tube and r1 the distance from the
// centre to the middle of the tube.
func Torus(cx, cy, cz, r0, r1 float64, steps int) []r3.Triangle {
	steps = max(steps, MinSteps)
	return surface(nil, steps, steps, func(u, v float64) r3.Vec {
		sinPhi, cosPhi := math.Sincos(2 * math.Pi * u)
		sinTheta, cosTheta := math.Sincos(2 * math.Pi * v)
		ring := r1 + r0*cosPhi
		return r3.Vec{
			X: cx + ring*cosTheta,
			Y: cy + r0*sinPhi,
			Z: cz + ring*sinTheta,
		}
	})
}

// Cylinder returns a closed cylinder of radius r whose base is centred on
// (cx, cy, cz) and which extends h along +y.
func Cylinder(cx, cy, cz, r, h float64, steps int) []r3.Triangle {
	steps = max(steps, MinSteps)
	tris := surface(nil, 1, steps, func(u, v float64) r3.Vec {
		sin, cos := math.Sincos(2 * math.Pi * v)
		return r3.Vec{X: cx + r*cos, Y: cy + h*u, Z: cz + r*sin}
	})
	tris = disk(tris, r3.Vec{X: cx, Y: cy + h, Z: cz}, r, steps, true)
	return disk(tris, r3.Vec{X: cx, Y: cy, Z: cz}, r, steps, false)
}

// Cone returns a closed cone of radius r whose base is centred on
// (cx, cy, cz) and whose apex lies h above the base along +y.
func Cone(cx, cy, cz, r, h float64, steps int) []r3.Triangle {
	steps = max(steps, MinSteps)
	tris := surface(nil, 1, steps, func(u, v float64) r3.Vec {
		sin, cos := math.Sincos(2 * math.Pi * v)
		s := r * (1 - u)
		return r3.Vec{X: cx + s*cos, Y: cy + h*u, Z: cz + s*sin}
	})
	return disk(tris, r3.Vec{X: cx, Y: cy, Z: cz}, r, steps, false)
}

// Line returns the single edge from (x0, y0, z0) to (x1, y1, z1).
func Line(x0, y0, z0, x1, y1, z1 float64) []Edge {
	return []Edge{{
		A: r3.Vec{X: x0, Y: y0, Z: z0},
		B: r3.Vec{X: x1, Y: y1, Z: z1},
	}}
}

// surface tessellates the parametric surface f over [0,1]x[0,1] using
// nu by nv quads. Each triangle is oriented so that its normal points
// along ∂f/∂u × ∂f/∂v. Degenerate triangles, as found at the poles of a
// sphere, are dropped.
func surface(dst []r3.Triangle, nu, nv int, f func(u, v float64) r3.Vec) []r3.Triangle {
	for i := range nu {
		u0 := float64(i) / float64(nu)
		u1 := float64(i+1) / float64(nu)
		for j := range nv {
			v0 := float64(j) / float64(nv)
			v1 := float64(j+1) / float64(nv)

			p00, p10 := f(u0, v0), f(u1, v0)
			p01, p11 := f(u0, v1), f(u1, v1)
			dst = addTriangle(dst, p00, p10, p11)
			dst = addTriangle(dst, p00, p11, p01)
		}
	}
	return dst
}

// disk adds a horizontal triangle fan around c. The face looks along +y
// if up is set, and along -y otherwise.
func disk(dst []r3.Triangle, c r3.Vec, r float64, steps int, up bool) []r3.Triangle {
	rim := func(i int) r3.Vec {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(steps))
		return r3.Vec{X: c.X + r*cos, Y: c.Y, Z: c.Z + r*sin}
	}
	for i := range steps {
		a, b := rim(i), rim(i+1)
		if up {
			dst = addTriangle(dst, c, b, a)
		} else {
			dst = addTriangle(dst, c, a, b)
		}
	}
	return dst
}

func addTriangle(dst []r3.Triangle, a, b, c r3.Vec) []r3.Triangle {
	t := r3.Triangle{a, b, c}
	if r3.Norm(Normal(&t)) < degenerateArea {
		return dst
	}
	return append(dst, t)
}
