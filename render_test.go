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
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/mdl/anim"
	"seehuhn.de/go/mdl/geometry"
	"seehuhn.de/go/mdl/light"
	"seehuhn.de/go/mdl/script"
)

func parse(t *testing.T, src string) *script.Program {
	t.Helper()
	prog, err := script.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

// testConfig returns a small configuration writing into a temporary
// directory.
func testConfig(t *testing.T) *Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 100
	cfg.Steps = 20
	cfg.FramesDir = filepath.Join(t.TempDir(), "anim")
	return cfg
}

// testFrame prepares the replay of frame i of prog.
func testFrame(t *testing.T, prog *script.Program, i int) *frame {
	t.Helper()
	_, n := anim.Plan(prog.Ops)
	table, err := anim.Knobs(prog.Ops, n)
	if err != nil {
		t.Fatal(err)
	}
	r := &renderer{
		prog:   prog,
		cfg:    testConfig(t),
		base:   "a",
		table:  table,
		meshes: newMeshCache(prog.Dir),
		log:    log.New(io.Discard, "", 0),
	}
	f, err := r.newFrame(i)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func exec(t *testing.T, f *frame, ops ...script.Op) {
	t.Helper()
	for _, op := range ops {
		if err := f.exec(op); err != nil {
			t.Fatalf("%#v: %v", op, err)
		}
	}
}

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < 1e-9
}

func TestPushPop(t *testing.T) {
	f := testFrame(t, parse(t, ""), 0)
	exec(t, f, script.Move{X: 3, Y: 4, Z: 5}, script.Rotate{Axis: geometry.AxisZ, Degrees: 30})
	before := f.top()

	exec(t, f, script.Push{})
	if len(f.stack) != 2 || f.top() != before {
		t.Fatal("push does not duplicate the top")
	}
	exec(t, f, script.Scale{X: 2, Y: 2, Z: 2}, script.Pop{})
	if len(f.stack) != 1 || f.top() != before {
		t.Error("pop does not restore the parent")
	}
}

func TestTransformOrder(t *testing.T) {
	f := testFrame(t, parse(t, ""), 0)
	exec(t, f, script.Scale{X: 2, Y: 2, Z: 2}, script.Move{X: 1})
	m := f.top()
	if got := geometry.Apply(&m, r3.Vec{}); !near(got, r3.Vec{X: 2}) {
		t.Errorf("origin maps to %v, want (2,0,0)", got)
	}
}

func TestPopUnderflow(t *testing.T) {
	f := testFrame(t, parse(t, ""), 0)
	if err := f.exec(script.Pop{}); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("got %v, want stack underflow", err)
	}
	if len(f.stack) != 1 || f.top() != mgl64.Ident4() {
		t.Error("failed pop modified the stack")
	}

	_, err := Render(context.Background(), parse(t, "push\npop\npop\n"), testConfig(t))
	if !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("Render: got %v, want stack underflow", err)
	}
}

func TestReflectance(t *testing.T) {
	prog := parse(t, "constants shiny 0.1 0.2 0.3 0.1 0.2 0.3 0.1 0.2 0.3\n")

	f := testFrame(t, prog, 0)
	exec(t, f, script.Box{Constants: "shiny", W: 10, H: 10, D: 10})
	if f.reflect != script.White {
		t.Errorf("after box: active reflectance %q", f.reflect)
	}

	exec(t, f, script.Sphere{Constants: "shiny", R: 5})
	if f.reflect != script.White {
		t.Errorf("after sphere: active reflectance %q", f.reflect)
	}

	if err := f.exec(script.Box{Constants: "missing", W: 1, H: 1, D: 1}); !errors.Is(err, script.ErrConfiguration) {
		t.Errorf("unknown constants: got %v", err)
	}
}

func TestMeshReflectance(t *testing.T) {
	dir := t.TempDir()
	obj := "v 0 0 0\nv 10 0 0\nv 10 10 0\nv 0 10 0\nf 1 2 3 4\n"
	if err := os.WriteFile(filepath.Join(dir, "quad.obj"), []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}
	prog := parse(t, "constants shiny 0.1 0.2 0.3 0.1 0.2 0.3 0.1 0.2 0.3\n")
	prog.Dir = dir

	f := testFrame(t, prog, 0)
	exec(t, f, script.Mesh{Constants: "shiny", File: "quad"})
	if f.reflect != "shiny" {
		t.Errorf("mesh constants not kept: %q", f.reflect)
	}
	if c := at(f.screen.Image(), 5, 5); c == (color.RGBA{A: 255}) {
		t.Error("mesh not drawn")
	}

	err := f.exec(script.Mesh{File: "missing"})
	if !errors.Is(err, ErrResource) {
		t.Errorf("missing mesh: got %v", err)
	}
}

func TestKnobScope(t *testing.T) {
	prog := parse(t, `frames 4
vary k 0 2 10 20
vary j 0 4 1 4
`)
	prog.Symbols["base"] = script.Knob{Value: 7}

	f := testFrame(t, prog, 3)
	if v := f.scope.Knob("k"); v != 15 {
		t.Errorf("held value %g, want 15", v)
	}
	if v := f.scope.Knob("j"); v != 3.25 {
		t.Errorf("table value %g, want 3.25", v)
	}
	if v := f.scope.Knob("base"); v != 7 {
		t.Errorf("base value %g, want 7", v)
	}

	exec(t, f, script.Set{Knob: "k", Value: 1})
	if v := f.scope.Knob("k"); v != 1 {
		t.Errorf("after set: %g, want 1", v)
	}
	exec(t, f, script.SetKnobs{Value: 2})
	if v := f.scope.Knob("k"); v != 2 {
		t.Errorf("after setknobs: %g, want 2", v)
	}
	exec(t, f, script.Set{Knob: "j", Value: 3})
	if f.scope.Knob("j") != 3 || f.scope.Knob("base") != 2 {
		t.Error("set after setknobs")
	}

	// other frames are not affected
	g := testFrame(t, prog, 3)
	if v := g.scope.Knob("k"); v != 15 {
		t.Errorf("fresh frame: %g, want 15", v)
	}
}

func TestKnobTransforms(t *testing.T) {
	prog := parse(t, `frames 2
vary k 0 2 1 3
path orbit 0 2 10 20 10 20 10 20 10 20
`)
	f := testFrame(t, prog, 1)
	exec(t, f, script.Push{}, script.Move{X: 1, Y: 2, Z: 3, Knob: "k"})
	m := f.top()
	if got := geometry.Apply(&m, r3.Vec{}); !near(got, r3.Vec{X: 2, Y: 4, Z: 6}) {
		t.Errorf("knob move: %v", got)
	}

	exec(t, f, script.Pop{}, script.Move{Path: "orbit"})
	m = f.top()
	if got := geometry.Apply(&m, r3.Vec{}); !near(got, r3.Vec{X: 10, Y: 20}) {
		t.Errorf("path move: %v", got)
	}

	if err := f.exec(script.Move{Path: "nowhere"}); !errors.Is(err, script.ErrConfiguration) {
		t.Errorf("unknown path: got %v", err)
	}
}

// recorder is a Viewer which counts the images shown.
type recorder struct {
	mu   sync.Mutex
	imgs []image.Image
}

func (r *recorder) Show(img image.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imgs = append(r.imgs, img)
	return nil
}

// at returns the pixel at screen coordinates (x, y).
func at(img image.Image, x, y int) color.RGBA {
	b := img.Bounds()
	return color.RGBAModel.Convert(img.At(b.Min.X+x, b.Max.Y-1-y)).(color.RGBA)
}

func loadPNG(t *testing.T, name string) image.Image {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRenderBox(t *testing.T) {
	cfg := testConfig(t)
	view := &recorder{}
	cfg.Viewer = view

	prog := parse(t, "box 20 80 0 60 60 60\ndisplay\n")
	res, err := Render(context.Background(), prog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Frames) != 1 || res.Animation != "" {
		t.Fatalf("unexpected result %+v", res)
	}
	if want := filepath.Join(cfg.FramesDir, "a000.png"); res.Frames[0] != want {
		t.Errorf("frame saved as %q, want %q", res.Frames[0], want)
	}
	if len(view.imgs) != 1 {
		t.Errorf("displayed %d times, want 1", len(view.imgs))
	}

	img := loadPNG(t, res.Frames[0])
	m := light.Default()
	front := m.Shade(r3.Vec{Z: 1}, &light.White)
	black := color.RGBA{A: 255}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{50, 50, front},
		{21, 21, front},
		{78, 78, front},
		{10, 50, black},
		{50, 90, black},
		{85, 85, black},
	}
	for _, c := range checks {
		if got := at(img, c.x, c.y); got != c.want {
			debugImage(t, "box", img)
			t.Errorf("pixel (%d,%d) is %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRenderAnimation(t *testing.T) {
	cfg := testConfig(t)
	cfg.Workers = 3
	prog := parse(t, `frames 4
basename slide
vary k 0 4 0 60
move 1 0 0 k
box 0 20 0 20 20 20
`)
	res, err := Render(context.Background(), prog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Frames) != 4 {
		t.Fatalf("got %d frames, want 4", len(res.Frames))
	}
	for i, name := range res.Frames {
		// the box moves right by 15 units per frame
		img := loadPNG(t, name)
		x := 15*i + 10
		if at(img, x, 10) == (color.RGBA{A: 255}) {
			t.Errorf("frame %d: box missing at x=%d", i, x)
		}
		if i > 0 && at(img, x-12, 10) != (color.RGBA{A: 255}) {
			t.Errorf("frame %d: box not moved", i)
		}
	}

	if res.Animation != filepath.Join(cfg.FramesDir, "slide.gif") {
		t.Fatalf("animation saved as %q", res.Animation)
	}
	f, err := os.Open(res.Animation)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 4 {
		t.Errorf("animation has %d frames, want 4", len(g.Image))
	}
}

// TestRenderReusedDir renders a shorter animation into a directory which
// still holds the frames of a longer one.
func TestRenderReusedDir(t *testing.T) {
	cfg := testConfig(t)
	for _, n := range []int{5, 3} {
		src := fmt.Sprintf("frames %d\nbasename s\nvary k 0 %d 0 1\nmove 50 0 0 k\nbox 0 60 0 20 20 20\n", n, n)
		res, err := Render(context.Background(), parse(t, src), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Frames) != n {
			t.Fatalf("got %d frames, want %d", len(res.Frames), n)
		}

		f, err := os.Open(res.Animation)
		if err != nil {
			t.Fatal(err)
		}
		g, err := gif.DecodeAll(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if len(g.Image) != n {
			t.Errorf("animation has %d frames, want %d", len(g.Image), n)
		}
	}
}

func TestRenderPDFFrames(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = "pdf"
	res, err := Render(context.Background(), parse(t, "frames 2\nbox 20 80 0 60 60 60\nline 0 0 0 100 100 0\n"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.Animation != "" {
		t.Errorf("animation %q written for pdf frames", res.Animation)
	}
	for i, name := range res.Frames {
		if want := filepath.Join(cfg.FramesDir, fmt.Sprintf("a%03d.pdf", i)); name != want {
			t.Errorf("frame %d saved as %q, want %q", i, name, want)
		}
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("%s is not a PDF file", name)
		}
	}
}

func TestRenderRejects(t *testing.T) {
	cases := map[string]string{
		"vary_without_frames": "vary k 0 2 0 1\nbox 0 0 0 1 1 1\n",
		"zero_frames":         "frames 0\n",
		"empty_span":          "frames 5\nvary k 2 2 0 1\n",
		"out_of_range":        "frames 5\npath p 0 6 0 0 1 1 2 2 3 3\n",
		"unknown_constants":   "box 0 0 0 1 1 1\nsave $DIR/early\nbox dull 0 0 0 1 1 1\n",
		"late_path":           "frames 4\npath p 2 4 0 0 1 1 2 2 3 3\nmove path p\n",
		"constants_as_knob":   "constants red 1 0 0 0 0 0 0 0 0\nmove 1 0 0 red\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			dir := t.TempDir()
			src = strings.ReplaceAll(src, "$DIR", dir)
			_, err := Render(context.Background(), parse(t, src), cfg)
			if !errors.Is(err, script.ErrConfiguration) {
				t.Fatalf("got %v, want a configuration error", err)
			}
			if _, err := os.Stat(cfg.FramesDir); !os.IsNotExist(err) {
				t.Error("output directory created for an invalid program")
			}
			if names, _ := filepath.Glob(filepath.Join(dir, "*")); len(names) != 0 {
				t.Errorf("invalid program wrote %v", names)
			}
		})
	}
}

func TestRenderSave(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	save := filepath.Join(dir, "snapshot")
	prog := parse(t, "sphere 50 50 0 30\nsave "+save+"\nsave "+save+".pdf\n")
	if _, err := Render(context.Background(), prog, cfg); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{save + ".png", save + ".pdf"} {
		if _, err := os.Stat(name); err != nil {
			t.Error(err)
		}
	}

	prog = parse(t, "save "+filepath.Join(dir, "x.unknown")+"\n")
	if _, err := Render(context.Background(), prog, cfg); !errors.Is(err, ErrResource) {
		t.Errorf("unknown format: got %v", err)
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := testConfig(t)
	_, err := Render(ctx, parse(t, "frames 3\nbox 0 0 0 1 1 1\n"), cfg)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if names, _ := filepath.Glob(filepath.Join(cfg.FramesDir, "*")); len(names) != 0 {
		t.Errorf("cancelled run wrote %v", names)
	}
}

func TestLoadConfig(t *testing.T) {
	src := `width: 64
height: 32
ambient: [10, 20, 30]
lights:
  - location: [0, 0, 1]
    color: [255, 0, 0]
line_cap: round
workers: 4
`
	cfg, err := LoadConfig(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 32 || cfg.Workers != 4 {
		t.Errorf("wrong values %+v", cfg)
	}
	if cfg.Ambient != (light.RGB{10, 20, 30}) {
		t.Errorf("ambient %v", cfg.Ambient)
	}
	if len(cfg.Lights) != 1 || cfg.Lights[0].Color != (light.RGB{255, 0, 0}) {
		t.Errorf("lights %v", cfg.Lights)
	}
	if cfg.Steps != 100 || cfg.Format != "png" {
		t.Error("defaults not kept")
	}

	empty, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if empty.Width != 500 {
		t.Error("empty input does not give the defaults")
	}

	bad := []string{
		"colour: red\n",
		"width: 0\n",
		"format: webp\n",
		"line_cap: pointy\n",
		"steps: 2\n",
	}
	for _, src := range bad {
		if _, err := LoadConfig(strings.NewReader(src)); !errors.Is(err, script.ErrConfiguration) {
			t.Errorf("%q: got %v", src, err)
		}
	}
}

func TestLightingOverride(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ambient = light.RGB{}
	prog := parse(t, `light red 255 0 0 0 0 1
ambient 0 0 0
box 20 80 0 60 60 60
`)
	res, err := Render(context.Background(), prog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	c := at(loadPNG(t, res.Frames[0]), 50, 50)
	if c.R == 0 || c.G != 0 || c.B != 0 {
		t.Errorf("pixel %v, want pure red", c)
	}
	if math.Abs(float64(c.R)-255) > 1 {
		t.Errorf("red channel %d, want 255", c.R)
	}
}

// debugImage writes img to the debug directory, for inspection after a
// failed test.
func debugImage(t *testing.T, name string, img image.Image) {
	if err := os.MkdirAll("debug", 0o755); err != nil {
		return
	}
	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err == nil {
		t.Logf("image written to debug/%s.png", name)
	}
}
