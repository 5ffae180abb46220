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

package anim

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mdl/script"
)

// Frame holds the knob values assigned to one frame. Only knobs whose
// animation span contains the frame are present.
type Frame struct {
	Index   int
	Scalars map[string]float64
	Points  map[string]vec.Vec2
}

// Table holds one Frame per frame of the animation.
type Table []Frame

// Knobs evaluates all vary and path commands for an animation of n
// frames. Where several commands assign the same knob in one frame, the
// later command wins.
func Knobs(ops []script.Op, n int) (Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: frame count %d", script.ErrConfiguration, n)
	}

	t := make(Table, n)
	for i := range t {
		t[i] = Frame{
			Index:   i,
			Scalars: make(map[string]float64),
			Points:  make(map[string]vec.Vec2),
		}
	}

	for _, op := range ops {
		switch op := op.(type) {
		case script.Vary:
			if err := checkSpan("vary "+op.Knob, op.Start, op.End, n); err != nil {
				return nil, err
			}
			a, b := float64(op.Start), float64(op.End)
			for i := op.Start; i < op.End; i++ {
				t[i].Scalars[op.Knob] = Interpolate(op.Kind, a, b, op.From, op.To, float64(i))
			}

		case script.Path:
			if err := checkSpan("path "+op.Name, op.Start, op.End, n); err != nil {
				return nil, err
			}
			pts := Bezier(op.Points, op.End-op.Start)
			for i, p := range pts {
				t[op.Start+i].Points[op.Name] = p
			}
		}
	}
	return t, nil
}

// Scalar returns the value of a knob in frame i. If no vary command
// covers frame i, the value from the most recent earlier frame is
// used.
func (t Table) Scalar(i int, name string) (float64, bool) {
	for j := min(i, len(t)-1); j >= 0; j-- {
		if v, ok := t[j].Scalars[name]; ok {
			return v, true
		}
	}
	return 0, false
}

// Point returns the sample of a path in frame i, falling back to the
// most recent earlier frame like Scalar.
func (t Table) Point(i int, name string) (vec.Vec2, bool) {
	for j := min(i, len(t)-1); j >= 0; j-- {
		if p, ok := t[j].Points[name]; ok {
			return p, true
		}
	}
	return vec.Vec2{}, false
}

// Interpolate evaluates the curve through (a, c) and (b, d) at x.
//
// The exponential law is y = u·exp(k·x) + v with k = 1.5·(d-c)/(b-a),
// the logarithmic law uses -k instead. Both reproduce c at a and d at b.
func Interpolate(kind script.Interpolation, a, b, c, d, x float64) float64 {
	switch kind {
	case script.Exponential, script.Logarithmic:
		if c == d {
			return c
		}
		k := 1.5 * (d - c) / (b - a)
		if kind == script.Logarithmic {
			k = -k
		}
		return c + (d-c)*expRatio(k, x-a, b-a)
	default:
		return c + (d-c)/(b-a)*(x-a)
	}
}

// expRatio returns (exp(k·s) - 1) / (exp(k·w) - 1), evaluated so that
// it does not overflow for large k·w.
func expRatio(k, s, w float64) float64 {
	if k > 0 {
		return math.Exp(k*(s-w)) * math.Expm1(-k*s) / math.Expm1(-k*w)
	}
	return math.Expm1(k*s) / math.Expm1(k*w)
}

// Bezier samples the cubic Bézier curve with control points p at the n
// parameter values i/n, i = 0, ..., n-1. The first sample is p[0]; the
// end point p[3] is not included.
func Bezier(p [4]vec.Vec2, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range res {
		t := float64(i) / float64(n)
		s := 1 - t
		b0, b1, b2, b3 := s*s*s, 3*s*s*t, 3*s*t*t, t*t*t
		res[i] = vec.Vec2{
			X: b0*p[0].X + b1*p[1].X + b2*p[2].X + b3*p[3].X,
			Y: b0*p[0].Y + b1*p[1].Y + b2*p[2].Y + b3*p[3].Y,
		}
	}
	return res
}
