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
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// FrameName returns the file name used for frame i of an animation.
func FrameName(dir, base string, i int, format string) string {
	return filepath.Join(dir, fmt.Sprintf("%s%03d.%s", base, i, format))
}

// AssembleAnimation combines the n frames base000.format, base001.format,
// ... in dir into the animated GIF dir/base.gif. Every one of the n
// frames must exist; other files in dir are ignored. delay is the time
// between frames in 100ths of a second. The name of the GIF is returned.
func AssembleAnimation(dir, base, format string, delay, n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("no frames for animation %s", base)
	}
	out := &gif.GIF{}
	for i := range n {
		img, err := readImage(FrameName(dir, base, i, format), format)
		if err != nil {
			return "", err
		}

		pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, img.Bounds().Min)
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	name := filepath.Join(dir, base+".gif")
	err := writeFile(name, func(w io.Writer) error {
		return gif.EncodeAll(w, out)
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

func readImage(name, format string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image.Image
	switch format {
	case "bmp":
		img, err = bmp.Decode(f)
	case "tif", "tiff":
		img, err = tiff.Decode(f)
	default:
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}
