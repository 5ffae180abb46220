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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadOBJ reads the faces of a Wavefront OBJ mesh as triangles.
//
// Only the records needed for flat shading are interpreted: "v" defines a
// vertex, and "f" a face given by 1-based vertex indices. A face
// reference of the form "i/t/n" uses only i; negative indices count back
// from the most recent vertex. Faces with more than three vertices are
// split into a fan around their first vertex, faces with less than three
// are ignored. Normals ("vn") are checked for syntax only; all other
// records are skipped.
func ReadOBJ(r io.Reader) ([]r3.Triangle, error) {
	var verts []r3.Vec
	var tris []r3.Triangle
	var face []r3.Vec

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v", "vn":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %q needs three coordinates", lineNo, fields[0])
			}
			var xyz [3]float64
			for i := range xyz {
				x, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid coordinate %q", lineNo, fields[i+1])
				}
				xyz[i] = x
			}
			if fields[0] == "v" {
				verts = append(verts, r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
			}

		case "f":
			face = face[:0]
			for _, ref := range fields[1:] {
				idx, _, _ := strings.Cut(ref, "/")
				i, err := strconv.Atoi(idx)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex index %q", lineNo, ref)
				}
				if i < 0 {
					i += len(verts) + 1
				}
				if i < 1 || i > len(verts) {
					return nil, fmt.Errorf("line %d: vertex index %s out of range", lineNo, idx)
				}
				face = append(face, verts[i-1])
			}
			for i := 2; i < len(face); i++ {
				tris = append(tris, r3.Triangle{face[0], face[i-1], face[i]})
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return tris, nil
}

// LoadOBJ reads the named OBJ file.
func LoadOBJ(name string) (tris []r3.Triangle, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	tris, err = ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tris, nil
}
