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

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/mdl/geometry"
	"seehuhn.de/go/mdl/light"
	"seehuhn.de/go/mdl/screen"
	"seehuhn.de/go/mdl/script"
)

// frame is the state of one replay of the program.
type frame struct {
	*renderer
	index int

	// stack is never empty. The last element maps the current coordinate
	// system to screen coordinates.
	stack []mgl64.Mat4

	screen  *screen.Screen
	lights  light.Model
	reflect string // name of the active reflectance constants
	scope   *scope
}

// exec executes a single operation.
func (f *frame) exec(op script.Op) error {
	switch op := op.(type) {
	case script.Push:
		f.stack = append(f.stack, f.top())
	case script.Pop:
		return f.pop()
	case script.Move:
		return f.move(op)
	case script.Scale:
		v := f.multiplier(op.Knob)
		f.apply(geometry.Scale(op.X*v, op.Y*v, op.Z*v))
	case script.Rotate:
		f.apply(geometry.Rotate(op.Axis, op.Degrees*f.multiplier(op.Knob)))

	case script.Box:
		return f.solid(op.Constants, geometry.Box(op.X, op.Y, op.Z, op.W, op.H, op.D))
	case script.Sphere:
		return f.solid(op.Constants, geometry.Sphere(op.X, op.Y, op.Z, op.R, f.cfg.Steps))
	case script.Torus:
		return f.solid(op.Constants, geometry.Torus(op.X, op.Y, op.Z, op.R0, op.R1, f.cfg.Steps))
	case script.Cylinder:
		return f.solid(op.Constants, geometry.Cylinder(op.X, op.Y, op.Z, op.R, op.H, f.cfg.Steps))
	case script.Cone:
		return f.solid(op.Constants, geometry.Cone(op.X, op.Y, op.Z, op.R, op.H, f.cfg.Steps))
	case script.Mesh:
		return f.mesh(op)
	case script.Line:
		f.line(op)

	case script.Display:
		return f.screen.Show(f.cfg.Viewer)
	case script.Save:
		return f.save(op)

	case script.Set:
		f.scope.Set(op.Knob, op.Value)
	case script.SetKnobs:
		f.scope.SetAll(op.Value)
	case script.Ambient:
		f.lights.Ambient = op.Color

	case script.Basename, script.Frames, script.Vary, script.Path:
		// used before the replay
	default:
		return fmt.Errorf("unsupported operation %T", op)
	}
	return nil
}

func (f *frame) top() mgl64.Mat4 {
	return f.stack[len(f.stack)-1]
}

// apply composes local with the current coordinate system. local acts
// first, so that later commands are interpreted in the coordinate system
// set up by earlier ones.
func (f *frame) apply(local mgl64.Mat4) {
	i := len(f.stack) - 1
	f.stack[i] = f.stack[i].Mul4(local)
}

func (f *frame) pop() error {
	if len(f.stack) <= 1 {
		return ErrStackUnderflow
	}
	f.stack = f.stack[:len(f.stack)-1]
	return nil
}

// multiplier returns the value of the named knob, or 1 if no knob is
// given.
func (f *frame) multiplier(knob string) float64 {
	if knob == "" {
		return 1
	}
	return f.scope.Knob(knob)
}

func (f *frame) move(op script.Move) error {
	if op.Path != "" {
		p, err := f.scope.Point(op.Path)
		if err != nil {
			return err
		}
		f.apply(geometry.Translate(p.X, p.Y, 0))
		return nil
	}
	v := f.multiplier(op.Knob)
	f.apply(geometry.Translate(op.X*v, op.Y*v, op.Z*v))
	return nil
}

// solid draws the triangles of a primitive. A constants name given with
// the primitive is used for this primitive only.
func (f *frame) solid(constants string, tris []r3.Triangle) error {
	name := f.reflect
	if constants != "" {
		name = constants
	}
	f.reflect = script.White
	return f.draw(name, tris)
}

// mesh draws the triangles of a mesh file. A constants name given with
// the mesh stays active for later primitives.
func (f *frame) mesh(op script.Mesh) error {
	if op.Constants != "" {
		f.reflect = op.Constants
	}
	tris, err := f.meshes.Get(op.File)
	if err != nil {
		return err
	}
	return f.draw(f.reflect, tris)
}

func (f *frame) draw(constants string, tris []r3.Triangle) error {
	k, err := f.prog.Symbols.Constants(constants)
	if err != nil {
		return err
	}
	m := f.top()
	geometry.TransformTriangles(&m, tris)
	f.screen.DrawPolygons(tris, &f.lights, k)
	return nil
}

func (f *frame) line(op script.Line) {
	edges := geometry.Line(op.X0, op.Y0, op.Z0, op.X1, op.Y1, op.Z1)
	m := f.top()
	geometry.TransformEdges(&m, edges)
	f.screen.DrawLines(edges, f.cfg.LineColor.RGBA())
}

func (f *frame) save(op script.Save) error {
	name, err := f.screen.Save(op.File, f.cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResource, err)
	}
	f.log.Printf("frame %d: saved %s", f.index, name)
	return nil
}
