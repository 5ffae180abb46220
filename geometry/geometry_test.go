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
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < eps
}

func centroid(t *r3.Triangle) r3.Vec {
	return r3.Scale(1.0/3, r3.Add(r3.Add(t[0], t[1]), t[2]))
}

func area(tris []r3.Triangle) float64 {
	var sum float64
	for i := range tris {
		sum += r3.Norm(Normal(&tris[i])) / 2
	}
	return sum
}

// checkOutward verifies that every triangle of a convex solid faces away
// from the interior point c.
func checkOutward(t *testing.T, tris []r3.Triangle, c r3.Vec) {
	t.Helper()
	for i := range tris {
		n := Normal(&tris[i])
		if d := r3.Dot(n, r3.Sub(centroid(&tris[i]), c)); d <= 0 {
			t.Fatalf("triangle %d %v faces inwards", i, tris[i])
		}
	}
}

func TestBox(t *testing.T) {
	tris := Box(1, 2, 3, 4, 5, 6)
	if len(tris) != 12 {
		t.Fatalf("got %d triangles, want 12", len(tris))
	}

	corners := make(map[r3.Vec]bool)
	for _, x := range []float64{1, 5} {
		for _, y := range []float64{2, -3} {
			for _, z := range []float64{3, -3} {
				corners[r3.Vec{X: x, Y: y, Z: z}] = false
			}
		}
	}
	for _, tri := range tris {
		for _, p := range tri {
			if _, ok := corners[p]; !ok {
				t.Fatalf("vertex %v is not a corner", p)
			}
			corners[p] = true
		}
	}
	for p, seen := range corners {
		if !seen {
			t.Errorf("corner %v unused", p)
		}
	}

	checkOutward(t, tris, r3.Vec{X: 3, Y: -0.5, Z: 0})
	if got, want := area(tris), 2*(4*5+4*6+5*6.0); math.Abs(got-want) > eps {
		t.Errorf("surface area %g, want %g", got, want)
	}
}

func TestSphere(t *testing.T) {
	c := r3.Vec{X: 10, Y: -4, Z: 2}
	const r = 3
	tris := Sphere(c.X, c.Y, c.Z, r, 100)

	for _, tri := range tris {
		for _, p := range tri {
			if d := r3.Norm(r3.Sub(p, c)); math.Abs(d-r) > eps {
				t.Fatalf("vertex %v at distance %g from the centre", p, d)
			}
		}
	}
	checkOutward(t, tris, c)

	want := 4 * math.Pi * r * r
	if got := area(tris); math.Abs(got-want)/want > 0.01 {
		t.Errorf("surface area %g, want %g", got, want)
	}
}

func TestCylinder(t *testing.T) {
	tris := Cylinder(0, 1, 0, 2, 5, 40)
	for _, tri := range tris {
		for _, p := range tri {
			if p.Y < 1-eps || p.Y > 6+eps {
				t.Fatalf("vertex %v outside the height range", p)
			}
		}
	}
	checkOutward(t, tris, r3.Vec{X: 0, Y: 3.5, Z: 0})
}

func TestCone(t *testing.T) {
	tris := Cone(1, 0, 1, 2, 4, 40)
	checkOutward(t, tris, r3.Vec{X: 1, Y: 1, Z: 1})

	apex := r3.Vec{X: 1, Y: 4, Z: 1}
	found := false
	for _, tri := range tris {
		for _, p := range tri {
			if near(p, apex) {
				found = true
			}
		}
	}
	if !found {
		t.Error("no triangle touches the apex")
	}
}

func TestTorus(t *testing.T) {
	const r0, r1 = 1, 4
	tris := Torus(0, 0, 0, r0, r1, 30)
	for i := range tris {
		// the closest point on the centre circle of the tube
		m := centroid(&tris[i])
		d := math.Hypot(m.X, m.Z)
		ring := r3.Vec{X: m.X * r1 / d, Z: m.Z * r1 / d}
		if r3.Dot(Normal(&tris[i]), r3.Sub(m, ring)) <= 0 {
			t.Fatalf("triangle %d faces inwards", i)
		}
	}
}

func TestTransformOrder(t *testing.T) {
	// scale first, then translate: the translation is scaled too
	m := Scale(2, 2, 2).Mul4(Translate(1, 0, 0))
	if got := Apply(&m, r3.Vec{}); !near(got, r3.Vec{X: 2}) {
		t.Errorf("origin maps to %v, want (2,0,0)", got)
	}
}

func TestRotate(t *testing.T) {
	cases := []struct {
		axis Axis
		in   r3.Vec
		want r3.Vec
	}{
		{AxisX, r3.Vec{Y: 1}, r3.Vec{Z: 1}},
		{AxisY, r3.Vec{Z: 1}, r3.Vec{X: 1}},
		{AxisZ, r3.Vec{X: 1}, r3.Vec{Y: 1}},
	}
	for _, tc := range cases {
		m := Rotate(tc.axis, 90)
		if got := Apply(&m, tc.in); !near(got, tc.want) {
			t.Errorf("rotate %s 90: %v -> %v, want %v", tc.axis, tc.in, got, tc.want)
		}
	}
}

func TestTransformInPlace(t *testing.T) {
	m := mgl64.Translate3D(0, 0, 5)
	tris := Box(0, 0, 0, 1, 1, 1)
	TransformTriangles(&m, tris)
	for _, tri := range tris {
		for _, p := range tri {
			if p.Z < 4-eps || p.Z > 5+eps {
				t.Fatalf("vertex %v not moved", p)
			}
		}
	}

	edges := Line(0, 0, 0, 1, 1, 1)
	TransformEdges(&m, edges)
	if !near(edges[0].A, r3.Vec{Z: 5}) || !near(edges[0].B, r3.Vec{X: 1, Y: 1, Z: 6}) {
		t.Errorf("edge not moved: %v", edges[0])
	}
}

func TestReadOBJ(t *testing.T) {
	src := `# a unit square and a triangle
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
f -4 -3 -2
f 1 2
`
	tris, err := ReadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []r3.Triangle{
		{{}, {X: 1}, {X: 1, Y: 1}},
		{{}, {X: 1, Y: 1}, {Y: 1}},
		{{}, {X: 1}, {X: 1, Y: 1}},
	}
	if len(tris) != len(want) {
		t.Fatalf("got %d triangles, want %d", len(tris), len(want))
	}
	for i := range want {
		if tris[i] != want[i] {
			t.Errorf("triangle %d: got %v, want %v", i, tris[i], want[i])
		}
	}
}

func TestReadOBJErrors(t *testing.T) {
	bad := map[string]string{
		"short_vertex": "v 1 2\n",
		"bad_number":   "v 1 x 2\n",
		"bad_index":    "v 0 0 0\nf 1 a 1\n",
		"out_of_range": "v 0 0 0\nv 1 0 0\nf 1 2 3\n",
	}
	for name, src := range bad {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadOBJ(strings.NewReader(src)); err == nil {
				t.Error("missing error")
			}
		})
	}
}

func TestLoadOBJ(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(name, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tris, err := LoadOBJ(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 1 {
		t.Errorf("got %d triangles, want 1", len(tris))
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("missing file did not fail")
	}
}
