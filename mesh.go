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

package mdl

import (
	"fmt"
	"path/filepath"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/mdl/geometry"
)

// meshCache loads every mesh file once per run.
type meshCache struct {
	dir string

	mu     sync.Mutex
	meshes map[string][]r3.Triangle
}

func newMeshCache(dir string) *meshCache {
	return &meshCache{dir: dir, meshes: make(map[string][]r3.Triangle)}
}

// resolve maps a mesh name from a program to a file name. Names without
// an extension refer to ".obj" files.
func (c *meshCache) resolve(name string) string {
	if filepath.Ext(name) == "" {
		name += ".obj"
	}
	if !filepath.IsAbs(name) && c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// Get returns a copy of the triangles of the named mesh, with each face
// included in both orientations so that it is visible from either side.
func (c *meshCache) Get(name string) ([]r3.Triangle, error) {
	file := c.resolve(name)

	c.mu.Lock()
	defer c.mu.Unlock()

	tris, ok := c.meshes[file]
	if !ok {
		var err error
		tris, err = geometry.LoadOBJ(file)
		if err != nil {
			return nil, fmt.Errorf("%w: mesh %q: %w", ErrResource, name, err)
		}
		c.meshes[file] = tris
	}

	res := make([]r3.Triangle, 0, 2*len(tris))
	for _, t := range tris {
		res = append(res, t, r3.Triangle{t[2], t[1], t[0]})
	}
	return res, nil
}
