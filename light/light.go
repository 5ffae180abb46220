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

// Package light evaluates the flat reflectance model used to colour
// polygons: ambient light plus diffuse and specular reflection of point
// light sources.
package light

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SpecularExponent controls the size of specular highlights.
const SpecularExponent = 4

// Coefficients are the ambient, diffuse and specular reflection of one
// colour channel.
type Coefficients struct {
	Ambient, Diffuse, Specular float64
}

// Constants describe how a surface reflects red, green and blue light.
type Constants struct {
	Red, Green, Blue Coefficients
}

// White is the default surface.
var White = Constants{
	Red:   Coefficients{0.2, 0.5, 0.5},
	Green: Coefficients{0.2, 0.5, 0.5},
	Blue:  Coefficients{0.2, 0.5, 0.5},
}

// RGB is a colour with channel values in [0, 255].
// Values outside this range are clamped on conversion.
type RGB [3]float64

// RGBA converts c to an opaque 8-bit colour.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: clampByte(c[0]), G: clampByte(c[1]), B: clampByte(c[2]), A: 255}
}

func clampByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Source is a point light. Location is the direction towards the light.
type Source struct {
	Location r3.Vec
	Color    RGB
}

// Model is the lighting environment of a frame.
type Model struct {
	View    r3.Vec // direction towards the viewer
	Ambient RGB
	Sources []Source
}

// Default returns the lighting used when a program does not set up its
// own: a grey ambient term and one white light above and to the right of
// the viewer.
func Default() Model {
	return Model{
		View:    r3.Vec{X: 0, Y: 0, Z: 1},
		Ambient: RGB{50, 50, 50},
		Sources: []Source{{
			Location: r3.Vec{X: 0.5, Y: 0.75, Z: 1},
			Color:    RGB{255, 255, 255},
		}},
	}
}

// Shade returns the colour of a surface with the given normal.
// The normal does not need to be normalised.
func (m *Model) Shade(normal r3.Vec, k *Constants) color.RGBA {
	n := unit(normal)
	v := unit(m.View)

	ka := RGB{k.Red.Ambient, k.Green.Ambient, k.Blue.Ambient}
	kd := RGB{k.Red.Diffuse, k.Green.Diffuse, k.Blue.Diffuse}
	ks := RGB{k.Red.Specular, k.Green.Specular, k.Blue.Specular}

	var res RGB
	for c := range res {
		res[c] = m.Ambient[c] * ka[c]
	}

	for _, src := range m.Sources {
		l := unit(src.Location)
		nl := r3.Dot(n, l)
		diffuse := max(nl, 0)

		// reflection of l about n
		refl := r3.Sub(r3.Scale(2*nl, n), l)
		specular := 0.0
		if s := r3.Dot(refl, v); s > 0 && nl > 0 {
			specular = math.Pow(s, SpecularExponent)
		}

		for c := range res {
			res[c] += src.Color[c] * (kd[c]*diffuse + ks[c]*specular)
		}
	}
	return res.RGBA()
}

// Visible reports whether a surface with the given normal faces the
// viewer.
func (m *Model) Visible(normal r3.Vec) bool {
	return r3.Dot(normal, m.View) > 0
}

func unit(v r3.Vec) r3.Vec {
	if n := r3.Norm(v); n > 0 {
		return r3.Scale(1/n, v)
	}
	return v
}
