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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Line strokes the segment from a to b using Width and Cap.
//
// A zero-length segment has no direction; it produces a square or a
// circle for square and round caps, and nothing for butt caps.
func (r *Rasterizer) Line(a, b vec.Vec2, emit EmitFunc) {
	d := r.Width / 2
	if d <= 0 {
		return
	}
	o := &r.outline
	o.reset()

	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			x, y := vec.Vec2{X: 1}, vec.Vec2{Y: 1}
			o.moveTo(a.Add(x.Mul(d)))
			o.arc(a, d, x, y)
			o.arc(a, d, y, x.Mul(-1))
			o.arc(a, d, x.Mul(-1), y.Mul(-1))
			o.arc(a, d, y.Mul(-1), x)
			o.close()
		case graphics.LineCapSquare:
			o.square(a, vec.Vec2{X: 1}, d)
		default:
			return
		}
		r.Fill(o.path(), emit)
		return
	}

	T := delta.Mul(1 / length)
	N := vec.Vec2{X: -T.Y, Y: T.X} // 90° CCW from T

	switch r.Cap {
	case graphics.LineCapRound:
		// half circles around both ends, passing through the outward
		// tangent
		o.moveTo(a.Add(N.Mul(d)))
		o.lineTo(b.Add(N.Mul(d)))
		o.arc(b, d, N, T)
		o.arc(b, d, T, N.Mul(-1))
		o.lineTo(a.Sub(N.Mul(d)))
		o.arc(a, d, N.Mul(-1), T.Mul(-1))
		o.arc(a, d, T.Mul(-1), N)
		o.close()
	case graphics.LineCapSquare:
		a = a.Sub(T.Mul(d))
		b = b.Add(T.Mul(d))
		fallthrough
	default:
		o.moveTo(a.Add(N.Mul(d)))
		o.lineTo(b.Add(N.Mul(d)))
		o.lineTo(b.Sub(N.Mul(d)))
		o.lineTo(a.Sub(N.Mul(d)))
		o.close()
	}
	r.Fill(o.path(), emit)
}

// kappa places the control points of a cubic Bézier approximating a
// quarter circle.
const kappa = 0.5522847498307936

// outline is a shape under construction in user space. Each command
// takes its points from coords in order, one for moveTo and lineTo,
// three for cubeTo and none for close.
type outline struct {
	cmds   []path.Command
	coords []vec.Vec2
}

func (o *outline) reset() {
	o.cmds = o.cmds[:0]
	o.coords = o.coords[:0]
}

func (o *outline) moveTo(p vec.Vec2) {
	o.cmds = append(o.cmds, path.CmdMoveTo)
	o.coords = append(o.coords, p)
}

func (o *outline) lineTo(p vec.Vec2) {
	o.cmds = append(o.cmds, path.CmdLineTo)
	o.coords = append(o.coords, p)
}

func (o *outline) close() {
	o.cmds = append(o.cmds, path.CmdClose)
}

// arc appends the quarter circle around center from direction u to
// direction v. u and v must be orthogonal unit vectors.
func (o *outline) arc(center vec.Vec2, radius float64, u, v vec.Vec2) {
	k := radius * kappa
	o.cmds = append(o.cmds, path.CmdCubeTo)
	o.coords = append(o.coords,
		center.Add(u.Mul(radius)).Add(v.Mul(k)),
		center.Add(v.Mul(radius)).Add(u.Mul(k)),
		center.Add(v.Mul(radius)),
	)
}

// square appends a square of side 2d centred on center and oriented
// along T.
func (o *outline) square(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	o.moveTo(center.Add(T.Mul(d)).Add(N.Mul(d)))
	o.lineTo(center.Add(T.Mul(d)).Sub(N.Mul(d)))
	o.lineTo(center.Sub(T.Mul(d)).Sub(N.Mul(d)))
	o.lineTo(center.Sub(T.Mul(d)).Add(N.Mul(d)))
	o.close()
}

// path returns the outline as a path. The path is only valid until the
// outline is modified.
func (o *outline) path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		i := 0
		for _, cmd := range o.cmds {
			n := 0
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if !yield(cmd, o.coords[i:i+n]) {
				return
			}
			i += n
		}
	}
}
