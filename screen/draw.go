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

package screen

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mdl/geometry"
	"seehuhn.de/go/mdl/light"
)

// DrawPolygons draws flat-shaded triangles given in screen coordinates.
// Triangles facing away from the viewer are skipped.
func (s *Screen) DrawPolygons(tris []r3.Triangle, lights *light.Model, k *light.Constants) {
	var pts [3]vec.Vec2
	for i := range tris {
		t := &tris[i]
		n := geometry.Normal(t)
		if !lights.Visible(n) {
			continue
		}
		col := lights.Shade(n, k)

		for j, p := range t {
			pts[j] = vec.Vec2{X: p.X, Y: p.Y}
		}
		s.fillTriangle(t, pts[:], col)

		it := item{n: 3, color: col, z: (t[0].Z + t[1].Z + t[2].Z) / 3}
		for j, p := range pts {
			it.pts[j] = [2]float64{p.X, p.Y}
		}
		s.list = append(s.list, it)
	}
}

func (s *Screen) fillTriangle(t *r3.Triangle, pts []vec.Vec2, col color.RGBA) {
	// depth as a function of device coordinates
	d0, d1, d2 := s.ras.Device(pts[0]), s.ras.Device(pts[1]), s.ras.Device(pts[2])
	ux, uy := d1.X-d0.X, d1.Y-d0.Y
	vx, vy := d2.X-d0.X, d2.Y-d0.Y
	det := ux*vy - vx*uy
	if math.Abs(det) < 1e-12 {
		return
	}
	dz1, dz2 := t[1].Z-t[0].Z, t[2].Z-t[0].Z
	a := (dz1*vy - dz2*uy) / det
	b := (ux*dz2 - vx*dz1) / det
	zMin := min(t[0].Z, t[1].Z, t[2].Z)
	zMax := max(t[0].Z, t[1].Z, t[2].Z)

	w := s.Width * s.k
	s.ras.Polygon(pts, func(y, xMin int, coverage []float32) {
		cy := float64(y) + 0.5 - d0.Y
		for i, c := range coverage {
			if c <= 0 {
				continue
			}
			x := xMin + i
			z := t[0].Z + a*(float64(x)+0.5-d0.X) + b*cy
			s.plot(y*w+x, min(max(z, zMin), zMax), c, col)
		}
	})
}

// DrawLines draws unlit line segments given in screen coordinates.
func (s *Screen) DrawLines(edges []geometry.Edge, col color.RGBA) {
	s.ras.Width = s.LineWidth
	s.ras.Cap = s.LineCap
	w := s.Width * s.k

	for _, e := range edges {
		a := vec.Vec2{X: e.A.X, Y: e.A.Y}
		b := vec.Vec2{X: e.B.X, Y: e.B.Y}
		da, db := s.ras.Device(a), s.ras.Device(b)
		dx, dy := db.X-da.X, db.Y-da.Y
		ll := dx*dx + dy*dy

		s.ras.Line(a, b, func(y, xMin int, coverage []float32) {
			for i, c := range coverage {
				if c <= 0 {
					continue
				}
				x := xMin + i
				t := 0.0
				if ll > 0 {
					t = ((float64(x)+0.5-da.X)*dx + (float64(y)+0.5-da.Y)*dy) / ll
					t = min(max(t, 0), 1)
				}
				z := e.A.Z + t*(e.B.Z-e.A.Z)

				idx := y*w + x
				if z < s.depth[idx] {
					continue
				}
				s.blend(idx, col, c)
				if c >= 0.5 {
					s.depth[idx] = z
				}
			}
		})

		s.list = append(s.list, item{
			pts:   [3][2]float64{{a.X, a.Y}, {b.X, b.Y}},
			n:     2,
			z:     (e.A.Z + e.B.Z) / 2,
			color: col,
			width: s.LineWidth,
		})
	}
}
