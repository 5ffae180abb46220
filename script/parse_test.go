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

package script

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mdl/geometry"
	"seehuhn.de/go/mdl/light"
)

func TestParse(t *testing.T) {
	src := `// a small animation
constants shiny 0.1 0.2 0.3 0.4 0.5 0.6 0.7 0.8 0.9
frames 10
basename spin   # trailing comment

push
move 250 250 0
rotate y 360 turn
scale 1 1 1 grow
box shiny 0 0 0 100 100 100
sphere 0 0 0 50
torus 0 0 0 10 40
cylinder c2 0 0 0 10 20
cone 0 0 0 10 20
line 0 0 0 1 1 1
mesh :model
pop
move path orbit
vary turn 0 10 0 1
vary grow 0 10 1 2 exponential
path orbit 0 10 0 0 1 0 1 1 0 1
set turn 0.5
setknobs 1
ambient 10 20 30
display
save out.png
`
	prog, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	want := []Op{
		Frames{N: 10},
		Basename{Name: "spin"},
		Push{},
		Move{X: 250, Y: 250},
		Rotate{Axis: geometry.AxisY, Degrees: 360, Knob: "turn"},
		Scale{X: 1, Y: 1, Z: 1, Knob: "grow"},
		Box{Constants: "shiny", W: 100, H: 100, D: 100},
		Sphere{R: 50},
		Torus{R0: 10, R1: 40},
		Cylinder{Constants: "c2", R: 10, H: 20},
		Cone{R: 10, H: 20},
		Line{X1: 1, Y1: 1, Z1: 1},
		Mesh{File: "model"},
		Pop{},
		Move{Path: "orbit"},
		Vary{Knob: "turn", End: 10, To: 1},
		Vary{Knob: "grow", End: 10, From: 1, To: 2, Kind: Exponential},
		Path{Name: "orbit", End: 10, Points: [4]vec.Vec2{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}},
		Set{Knob: "turn", Value: 0.5},
		SetKnobs{Value: 1},
		Ambient{Color: light.RGB{10, 20, 30}},
		Display{},
		Save{File: "out.png"},
	}
	if len(prog.Ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(prog.Ops), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(prog.Ops[i], want[i]) {
			t.Errorf("op %d: got %#v, want %#v", i, prog.Ops[i], want[i])
		}
	}

	k, err := prog.Symbols.Constants("shiny")
	if err != nil {
		t.Fatal(err)
	}
	if k.Green.Diffuse != 0.5 || k.Blue.Specular != 0.9 {
		t.Errorf("wrong constants %v", k)
	}
	if _, err := prog.Symbols.Constants(White); err != nil {
		t.Errorf("builtin reflectance missing: %v", err)
	}
	for _, name := range []string{"turn", "grow"} {
		if _, ok := prog.Symbols[name].(Knob); !ok {
			t.Errorf("knob %q not registered", name)
		}
	}
}

func TestParseLights(t *testing.T) {
	src := "light b 0 0 255 0 1 0\nlight a 255 0 0 1 0 0\n"
	prog, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Ops) != 0 {
		t.Errorf("unexpected ops %v", prog.Ops)
	}
	lights := prog.Symbols.Lights()
	if len(lights) != 2 {
		t.Fatalf("got %d lights, want 2", len(lights))
	}
	if lights[0].Color != (light.RGB{255, 0, 0}) || lights[1].Location.Y != 1 {
		t.Errorf("lights not sorted by name: %v", lights)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"unknown", "flip 1 2 3\n", 1},
		{"arity", "push\nmove 1 2\n", 2},
		{"number", "sphere 0 0 zero 1\n", 1},
		{"axis", "rotate w 90\n", 1},
		{"fractional_frames", "frames 2.5\n", 1},
		{"interpolation", "vary k 0 1 0 1 cubic\n", 1},
		{"mesh_name", "mesh model\n", 1},
		{"path_arity", "\n\npath p 0 1 0 0 1 1\n", 3},
		{"extra_args", "display now\n", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src))
			if !errors.Is(err, ErrParse) {
				t.Fatalf("got %v, want a parse error", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("%v is not a *ParseError", err)
			}
			if perr.Line != tc.line {
				t.Errorf("error on line %d, want %d", perr.Line, tc.line)
			}
		})
	}
}

func TestUnknownConstants(t *testing.T) {
	s := NewSymbols()
	s["k"] = Knob{Value: 2}
	if _, err := s.Constants("missing"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("missing constants: got %v", err)
	}
	if _, err := s.Constants("k"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("knob used as constants: got %v", err)
	}
	if s.Knob("k") != 2 || s.Knob("missing") != 0 {
		t.Error("wrong knob values")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "scene.mdl")
	if err := os.WriteFile(name, []byte("box 0 0 0 1 1 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	prog, err := ParseFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if prog.Dir != dir {
		t.Errorf("Dir = %q, want %q", prog.Dir, dir)
	}
}
