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
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mdl/geometry"
	"seehuhn.de/go/mdl/light"
)

// ParseFile reads a program from the named file. Mesh files used by the
// program are looked up relative to the directory containing it.
func ParseFile(name string) (*Program, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	prog, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	prog.Dir = filepath.Dir(name)
	return prog, nil
}

// Parse reads a program in MDL syntax.
//
// The program is a sequence of lines, each holding one command followed
// by its arguments, separated by white space. Text following "//" or "#"
// is ignored. Parse fails with a *ParseError on the first malformed line.
func Parse(r io.Reader) (*Program, error) {
	p := &parser{
		prog: &Program{Symbols: NewSymbols()},
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		fields := strings.Fields(stripComment(s.Text()))
		if len(fields) == 0 {
			continue
		}

		cmd, ok := commands[fields[0]]
		if !ok {
			return nil, p.errorf("unknown command %q", fields[0])
		}
		op, err := cmd(p, fields[1:])
		if err != nil {
			return nil, err
		}
		if op != nil {
			p.prog.Ops = append(p.prog.Ops, op)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return p.prog, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return line
}

type parser struct {
	prog *Program
	line int
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

// numbers parses all of args as floating point numbers.
func (p *parser) numbers(args []string) ([]float64, error) {
	res := make([]float64, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, p.errorf("invalid number %q", arg)
		}
		res[i] = x
	}
	return res, nil
}

func (p *parser) integer(arg string) (int, error) {
	x, err := strconv.ParseFloat(arg, 64)
	if err != nil || x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
		return 0, p.errorf("invalid frame number %q", arg)
	}
	return int(x), nil
}

func (p *parser) arity(cmd string, args []string, counts ...int) error {
	for _, n := range counts {
		if len(args) == n {
			return nil
		}
	}
	return p.errorf("wrong number of arguments for %s", cmd)
}

// knob registers the name as a knob, unless the name is already in use.
func (p *parser) knob(name string) {
	if _, ok := p.prog.Symbols[name]; !ok {
		p.prog.Symbols[name] = Knob{}
	}
}

// shape splits the arguments of a primitive into the optional constants
// name and n numbers.
func (p *parser) shape(cmd string, args []string, n int) (string, []float64, error) {
	var constants string
	if len(args) == n+1 {
		constants, args = args[0], args[1:]
	}
	if len(args) != n {
		return "", nil, p.errorf("wrong number of arguments for %s", cmd)
	}
	x, err := p.numbers(args)
	return constants, x, err
}

type command func(p *parser, args []string) (Op, error)

var commands = map[string]command{
	"push":      noArgs("push", Push{}),
	"pop":       noArgs("pop", Pop{}),
	"display":   noArgs("display", Display{}),
	"move":      parseMove,
	"scale":     parseScale,
	"rotate":    parseRotate,
	"box":       parseBox,
	"sphere":    parseSphere,
	"torus":     parseTorus,
	"cylinder":  parseCylinder,
	"cone":      parseCone,
	"line":      parseLine,
	"mesh":      parseMesh,
	"save":      parseSave,
	"basename":  parseBasename,
	"frames":    parseFrames,
	"vary":      parseVary,
	"path":      parsePath,
	"set":       parseSet,
	"setknobs":  parseSetKnobs,
	"constants": parseConstants,
	"light":     parseLight,
	"ambient":   parseAmbient,
}

func noArgs(name string, op Op) command {
	return func(p *parser, args []string) (Op, error) {
		if err := p.arity(name, args, 0); err != nil {
			return nil, err
		}
		return op, nil
	}
}

func parseMove(p *parser, args []string) (Op, error) {
	if len(args) == 2 && args[0] == "path" {
		return Move{Path: args[1]}, nil
	}
	if err := p.arity("move", args, 3, 4); err != nil {
		return nil, err
	}
	x, err := p.numbers(args[:3])
	if err != nil {
		return nil, err
	}
	op := Move{X: x[0], Y: x[1], Z: x[2]}
	if len(args) == 4 {
		op.Knob = args[3]
		p.knob(op.Knob)
	}
	return op, nil
}

func parseScale(p *parser, args []string) (Op, error) {
	if err := p.arity("scale", args, 3, 4); err != nil {
		return nil, err
	}
	x, err := p.numbers(args[:3])
	if err != nil {
		return nil, err
	}
	op := Scale{X: x[0], Y: x[1], Z: x[2]}
	if len(args) == 4 {
		op.Knob = args[3]
		p.knob(op.Knob)
	}
	return op, nil
}

func parseRotate(p *parser, args []string) (Op, error) {
	if err := p.arity("rotate", args, 2, 3); err != nil {
		return nil, err
	}
	var axis geometry.Axis
	switch strings.ToLower(args[0]) {
	case "x":
		axis = geometry.AxisX
	case "y":
		axis = geometry.AxisY
	case "z":
		axis = geometry.AxisZ
	default:
		return nil, p.errorf("invalid rotation axis %q", args[0])
	}
	x, err := p.numbers(args[1:2])
	if err != nil {
		return nil, err
	}
	op := Rotate{Axis: axis, Degrees: x[0]}
	if len(args) == 3 {
		op.Knob = args[2]
		p.knob(op.Knob)
	}
	return op, nil
}

func parseBox(p *parser, args []string) (Op, error) {
	c, x, err := p.shape("box", args, 6)
	if err != nil {
		return nil, err
	}
	return Box{Constants: c, X: x[0], Y: x[1], Z: x[2], W: x[3], H: x[4], D: x[5]}, nil
}

func parseSphere(p *parser, args []string) (Op, error) {
	c, x, err := p.shape("sphere", args, 4)
	if err != nil {
		return nil, err
	}
	return Sphere{Constants: c, X: x[0], Y: x[1], Z: x[2], R: x[3]}, nil
}

func parseTorus(p *parser, args []string) (Op, error) {
	c, x, err := p.shape("torus", args, 5)
	if err != nil {
		return nil, err
	}
	return Torus{Constants: c, X: x[0], Y: x[1], Z: x[2], R0: x[3], R1: x[4]}, nil
}

func parseCylinder(p *parser, args []string) (Op, error) {
	c, x, err := p.shape("cylinder", args, 5)
	if err != nil {
		return nil, err
	}
	return Cylinder{Constants: c, X: x[0], Y: x[1], Z: x[2], R: x[3], H: x[4]}, nil
}

func parseCone(p *parser, args []string) (Op, error) {
	c, x, err := p.shape("cone", args, 5)
	if err != nil {
		return nil, err
	}
	return Cone{Constants: c, X: x[0], Y: x[1], Z: x[2], R: x[3], H: x[4]}, nil
}

func parseLine(p *parser, args []string) (Op, error) {
	c, x, err := p.shape("line", args, 6)
	if err != nil {
		return nil, err
	}
	op := Line{Constants: c}
	op.X0, op.Y0, op.Z0 = x[0], x[1], x[2]
	op.X1, op.Y1, op.Z1 = x[3], x[4], x[5]
	return op, nil
}

func parseMesh(p *parser, args []string) (Op, error) {
	if err := p.arity("mesh", args, 1, 2); err != nil {
		return nil, err
	}
	var op Mesh
	if len(args) == 2 {
		op.Constants, args = args[0], args[1:]
	}
	file, ok := strings.CutPrefix(args[0], ":")
	if !ok || file == "" {
		return nil, p.errorf("mesh file must be given as :name")
	}
	op.File = file
	return op, nil
}

func parseSave(p *parser, args []string) (Op, error) {
	if err := p.arity("save", args, 1); err != nil {
		return nil, err
	}
	return Save{File: args[0]}, nil
}

func parseBasename(p *parser, args []string) (Op, error) {
	if err := p.arity("basename", args, 1); err != nil {
		return nil, err
	}
	return Basename{Name: args[0]}, nil
}

func parseFrames(p *parser, args []string) (Op, error) {
	if err := p.arity("frames", args, 1); err != nil {
		return nil, err
	}
	n, err := p.integer(args[0])
	if err != nil {
		return nil, err
	}
	return Frames{N: n}, nil
}

func parseVary(p *parser, args []string) (Op, error) {
	if err := p.arity("vary", args, 5, 6); err != nil {
		return nil, err
	}
	start, err := p.integer(args[1])
	if err != nil {
		return nil, err
	}
	end, err := p.integer(args[2])
	if err != nil {
		return nil, err
	}
	x, err := p.numbers(args[3:5])
	if err != nil {
		return nil, err
	}
	op := Vary{Knob: args[0], Start: start, End: end, From: x[0], To: x[1]}
	if len(args) == 6 {
		switch strings.ToLower(args[5]) {
		case "linear":
			op.Kind = Linear
		case "exponential":
			op.Kind = Exponential
		case "logarithmic":
			op.Kind = Logarithmic
		default:
			return nil, p.errorf("unknown interpolation %q", args[5])
		}
	}
	p.knob(op.Knob)
	return op, nil
}

func parsePath(p *parser, args []string) (Op, error) {
	if err := p.arity("path", args, 11); err != nil {
		return nil, err
	}
	start, err := p.integer(args[1])
	if err != nil {
		return nil, err
	}
	end, err := p.integer(args[2])
	if err != nil {
		return nil, err
	}
	x, err := p.numbers(args[3:])
	if err != nil {
		return nil, err
	}
	op := Path{Name: args[0], Start: start, End: end}
	for i := range op.Points {
		op.Points[i] = vec.Vec2{X: x[2*i], Y: x[2*i+1]}
	}
	return op, nil
}

func parseSet(p *parser, args []string) (Op, error) {
	if err := p.arity("set", args, 2); err != nil {
		return nil, err
	}
	x, err := p.numbers(args[1:])
	if err != nil {
		return nil, err
	}
	p.knob(args[0])
	return Set{Knob: args[0], Value: x[0]}, nil
}

func parseSetKnobs(p *parser, args []string) (Op, error) {
	if err := p.arity("setknobs", args, 1); err != nil {
		return nil, err
	}
	x, err := p.numbers(args)
	if err != nil {
		return nil, err
	}
	return SetKnobs{Value: x[0]}, nil
}

// parseConstants reads "constants name kar kdr ksr kag kdg ksg kab kdb ksb".
// An optional trailing colour is accepted and ignored.
func parseConstants(p *parser, args []string) (Op, error) {
	if err := p.arity("constants", args, 10, 13); err != nil {
		return nil, err
	}
	x, err := p.numbers(args[1:])
	if err != nil {
		return nil, err
	}
	k := light.Constants{
		Red:   light.Coefficients{Ambient: x[0], Diffuse: x[1], Specular: x[2]},
		Green: light.Coefficients{Ambient: x[3], Diffuse: x[4], Specular: x[5]},
		Blue:  light.Coefficients{Ambient: x[6], Diffuse: x[7], Specular: x[8]},
	}
	p.prog.Symbols[args[0]] = Constants{k}
	return nil, nil
}

func parseLight(p *parser, args []string) (Op, error) {
	if err := p.arity("light", args, 7); err != nil {
		return nil, err
	}
	x, err := p.numbers(args[1:])
	if err != nil {
		return nil, err
	}
	src := light.Source{
		Color:    light.RGB{x[0], x[1], x[2]},
		Location: r3.Vec{X: x[3], Y: x[4], Z: x[5]},
	}
	p.prog.Symbols[args[0]] = Light{src}
	return nil, nil
}

func parseAmbient(p *parser, args []string) (Op, error) {
	if err := p.arity("ambient", args, 3); err != nil {
		return nil, err
	}
	x, err := p.numbers(args)
	if err != nil {
		return nil, err
	}
	return Ambient{Color: light.RGB{x[0], x[1], x[2]}}, nil
}
