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

// Package raster converts projected polygons and line segments into
// anti-aliased pixel coverage.
//
// Geometry is given in user space and mapped to device space by the CTM.
// Coverage is reported scanline by scanline through an emit callback, so
// that the caller can combine it with a depth test.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. coverage[i] is the
// fraction of pixel (xMin+i, y) covered by the shape, in [0, 1].
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yRange() (float64, float64) {
	return min(e.y0, e.y1), max(e.y0, e.y1)
}

// Rasterizer computes the fraction of each pixel covered by a shape,
// using the nonzero winding rule. Create one instance per screen and
// reuse it; internal buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve and arc approximation in device pixels.
	Flatness float64

	// Width is the line width in user-space units, used by Line.
	Width float64

	// Cap is the style for line endpoints.
	Cap graphics.LineCapStyle

	cover   []float32 // per-pixel change of winding; reused as output
	area    []float32 // per-pixel partial area
	edges   []edge    // edges of the current shape, device space
	active  []int     // indices into edges
	outline outline   // polygon or line outline, user space

	bboxEmpty                      bool
	bboxX0, bboxX1, bboxY0, bboxY1 float64
}

// New returns a Rasterizer with the given clip rectangle, an identity
// CTM, and a line width of one unit with butt caps.
func New(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapButt,
	}
}

// Device maps a user-space point to device space.
func (r *Rasterizer) Device(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// linear applies only the 2x2 part of the CTM.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// Fill fills the interior of p. Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p path.Path, emit EmitFunc) {
	r.beginEdges()

	var current, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
			open = true
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			// raise to cubic
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3))
			r.flattenCubic(current, c1, c2, pts[1], r.addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}

	r.scan(emit)
}

// Polygon fills the closed polygon with the given user-space vertices.
func (r *Rasterizer) Polygon(pts []vec.Vec2, emit EmitFunc) {
	if len(pts) < 3 {
		return
	}
	o := &r.outline
	o.reset()
	o.moveTo(pts[0])
	for _, p := range pts[1:] {
		o.lineTo(p)
	}
	o.close()
	r.Fill(o.path(), emit)
}

// flattenCubic splits a cubic Bézier into line segments, choosing the
// segment count with Wang's formula for the device-space tolerance.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		pt := cubicPoint(p0, p1, p2, p3, float64(i)/float64(n))
		emit(prev, pt)
		prev = pt
	}
}

// cubicPoint evaluates the Bézier curve with control points p0, ..., p3
// at parameter t.
func cubicPoint(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return p0.Mul(s * s * s).
		Add(p1.Mul(3 * s * s * t)).
		Add(p2.Mul(3 * s * t * t)).
		Add(p3.Mul(t * t * t))
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms a user-space segment to device space and records it.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	p := r.Device(a)
	q := r.Device(b)

	dy := q.Y - p.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxX0, r.bboxX1 = min(p.X, q.X), max(p.X, q.X)
		r.bboxY0, r.bboxY1 = min(p.Y, q.Y), max(p.Y, q.Y)
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, p.X, q.X)
	r.bboxX1 = max(r.bboxX1, p.X, q.X)
	r.bboxY0 = min(r.bboxY0, p.Y, q.Y)
	r.bboxY1 = max(r.bboxY1, p.Y, q.Y)
}

// bounds returns the pixel range touched by the collected edges,
// clamped to the clip rectangle.
func (r *Rasterizer) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxY0)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan walks the scanlines of the collected edges with an active edge
// list and emits the coverage of every non-empty row.
//
// Each edge crossing a pixel adds its signed vertical extent to cover and
// the part of that extent which lies right of the crossing to area. The
// coverage of pixel i is then |sum(cover[:i]) + area[i]|, clamped to 1.
func (r *Rasterizer) scan(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		aTop, _ := a.yRange()
		bTop, _ := b.yRange()
		return cmp.Compare(aTop, bTop)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) {
			top, _ := r.edges[next].yRange()
			if top >= yBot {
				break
			}
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if _, bot := e.yRange(); bot <= yTop {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the contribution of e within scanline y to the cover
// and area buffers, which are indexed by x - xMin. It reports whether the
// edge overlaps the scanline at all.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	top, bot := e.yRange()
	y0 := max(float64(y), top)
	y1 := min(float64(y+1), bot)
	if y1 <= y0 {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(y0-e.y0)
	xb := e.x0 + e.dxdy*(y1-e.y0)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	if right < xMin {
		// everything is left of the buffer: full cover for pixel 0
		c := sign * float32(y1-y0)
		r.cover[0] += c
		r.area[0] += c
		return true
	}
	if left >= xMax {
		return true
	}

	if left == right {
		r.addSpan(e, y0, y1, sign, left, xMin, xMax)
		return true
	}

	// The edge crosses several pixel columns. Split it at the column
	// boundaries and add each piece separately.
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		s0 := max(min(ya, yb), y0)
		s1 := min(max(ya, yb), y1)
		if s1 <= s0 {
			continue
		}
		r.addSpan(e, s0, s1, sign, pix, xMin, xMax)
	}
	return true
}

// addSpan adds the piece of e between y0 and y1, which lies in pixel
// column pix.
func (r *Rasterizer) addSpan(e *edge, y0, y1 float64, sign float32, pix, xMin, xMax int) {
	c := sign * float32(y1-y0)
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrate turns accumulated cover and area values into coverage using
// the nonzero winding rule. The result overwrites cover.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the non-zero part of row and its offset, or nil if
// the whole row is zero.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a line segment.
	zeroLengthThreshold = 1e-10
)
