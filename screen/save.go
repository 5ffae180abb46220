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
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// ErrFormat is returned when a file name asks for an output format which
// is not supported.
var ErrFormat = errors.New("unsupported image format")

type encoder func(w io.Writer, img image.Image) error

var encoders = map[string]encoder{
	"png": png.Encode,
	"gif": func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	},
	"jpg":  encodeJPEG,
	"jpeg": encodeJPEG,
	"bmp":  bmp.Encode,
	"tif":  encodeTIFF,
	"tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Formats lists the file extensions accepted by Save.
func Formats() []string {
	res := []string{"pdf"}
	for ext := range encoders {
		res = append(res, ext)
	}
	slices.Sort(res)
	return res
}

// Save writes the screen to the named file. The format is chosen by the
// file name extension; if the name has no extension, "." + format is
// appended first. The name of the written file is returned.
//
// A ".pdf" file receives a vector rendition of the shapes drawn so far,
// painted back to front.
func (s *Screen) Save(name, format string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		ext = format
		name += "." + format
	}
	ext = strings.ToLower(ext)

	if ext == "pdf" {
		return name, s.savePDF(name)
	}
	enc, ok := encoders[ext]
	if !ok {
		return name, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	return name, writeFile(name, func(w io.Writer) error {
		return enc(w, s.Image())
	})
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func (s *Screen) savePDF(name string) error {
	w, h := float64(s.Width), float64(s.Height)
	page, err := document.CreateSinglePage(name, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(rgb(s.bg))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF user space has the same orientation as screen space
	list := slices.Clone(s.list)
	slices.SortStableFunc(list, func(a, b item) int {
		return cmp.Compare(a.z, b.z)
	})
	page.SetLineCap(s.LineCap)
	for _, it := range list {
		switch it.n {
		case 3:
			page.SetFillColor(rgb(it.color))
			page.MoveTo(it.pts[0][0], it.pts[0][1])
			page.LineTo(it.pts[1][0], it.pts[1][1])
			page.LineTo(it.pts[2][0], it.pts[2][1])
			page.ClosePath()
			page.Fill()
		case 2:
			page.SetStrokeColor(rgb(it.color))
			page.SetLineWidth(it.width)
			page.MoveTo(it.pts[0][0], it.pts[0][1])
			page.LineTo(it.pts[1][0], it.pts[1][1])
			page.Stroke()
		}
	}
	return page.Close()
}

func rgb(c color.RGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
