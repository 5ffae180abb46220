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

// Package screen implements the pixel buffer of a frame: polygon and
// line drawing with a depth test, image and PDF output, and assembly of
// saved frames into an animated GIF.
//
// Screen coordinates have their origin in the bottom-left corner, with x
// pointing right and y pointing up. Larger z values are closer to the
// viewer.
package screen

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/mdl/raster"
)

// Screen is the drawing surface of one frame.
//
// A Screen is not safe for concurrent use.
type Screen struct {
	Width, Height int

	// LineWidth and LineCap are used by DrawLines. The width is given
	// in screen units.
	LineWidth float64
	LineCap   graphics.LineCapStyle

	k     int // supersampling factor
	pix   *image.RGBA
	depth []float64
	bg    color.RGBA
	ras   *raster.Rasterizer

	list []item
}

// item is a drawn shape, kept for vector output.
type item struct {
	pts   [3][2]float64
	n     int // 3 for a triangle, 2 for a line
	z     float64
	color color.RGBA
	width float64
}

// New allocates a screen of the given size, cleared to black. Internally
// every pixel is sampled supersample x supersample times.
func New(width, height, supersample int) *Screen {
	k := max(supersample, 1)
	w, h := width*k, height*k

	s := &Screen{
		Width:     width,
		Height:    height,
		LineWidth: 1,
		LineCap:   graphics.LineCapButt,
		k:         k,
		pix:       image.NewRGBA(image.Rect(0, 0, w, h)),
		depth:     make([]float64, w*h),
		bg:        color.RGBA{A: 255},
	}
	s.ras = raster.New(rect.Rect{URx: float64(w), URy: float64(h)})
	s.ras.CTM = s.ctm()
	s.Clear()
	return s
}

// Clear fills the screen with the background colour and resets the
// depth buffer and the display list.
func (s *Screen) Clear() {
	xdraw.Draw(s.pix, s.pix.Bounds(), image.NewUniform(s.bg), image.Point{}, xdraw.Src)
	for i := range s.depth {
		s.depth[i] = math.Inf(-1)
	}
	s.list = s.list[:0]
}

// SetBackground changes the background colour and clears the screen.
func (s *Screen) SetBackground(c color.RGBA) {
	s.bg = c
	s.Clear()
}

// Image returns the contents of the screen at its nominal size.
func (s *Screen) Image() *image.RGBA {
	if s.k == 1 {
		return s.pix
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), s.pix, s.pix.Bounds(), xdraw.Src, nil)
	return dst
}

// Depth returns the depth buffer value at screen pixel (x, y), where y
// counts up from the bottom row. For supersampled screens the largest
// sample value is returned. Pixels which have not been drawn have depth
// -Inf.
func (s *Screen) Depth(x, y int) float64 {
	d := math.Inf(-1)
	w := s.Width * s.k
	row0 := (s.Height - 1 - y) * s.k
	for j := range s.k {
		for i := range s.k {
			d = max(d, s.depth[(row0+j)*w+x*s.k+i])
		}
	}
	return d
}

// ctm maps screen coordinates to device pixels.
func (s *Screen) ctm() matrix.Matrix {
	k := float64(s.k)
	return matrix.Matrix{k, 0, 0, -k, 0, k * float64(s.Height)}
}

// blend mixes c into the device pixel at index i with weight a.
func (s *Screen) blend(i int, c color.RGBA, a float32) {
	p := s.pix.Pix[4*i : 4*i+4 : 4*i+4]
	if a >= 1 {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 255
		return
	}
	mix := func(dst, src uint8) uint8 {
		return uint8(float32(dst)*(1-a) + float32(src)*a + 0.5)
	}
	p[0] = mix(p[0], c.R)
	p[1] = mix(p[1], c.G)
	p[2] = mix(p[2], c.B)
	p[3] = 255
}

// opaqueCoverage is the smallest coverage at which a polygon fragment is
// drawn opaque. It is slightly below one half, so that pixels split
// evenly between two polygons are not left to rounding.
const opaqueCoverage = 0.499

// plot applies the depth test to one polygon fragment of coverage c and
// depth z.
//
// Opaque fragments update the depth buffer. Smaller fragments only blend
// into pixels where nothing has been drawn yet; this anti-aliases
// silhouettes without letting the background show through the seams
// between adjacent polygons.
func (s *Screen) plot(i int, z float64, c float32, col color.RGBA) {
	d := s.depth[i]
	switch {
	case c >= opaqueCoverage:
		if z >= d {
			s.blend(i, col, 1)
			s.depth[i] = z
		}
	case c > 0 && math.IsInf(d, -1):
		s.blend(i, col, c)
	}
}
