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

// Package anim computes the frame count of a program and the value of
// every animated knob in every frame.
package anim

import (
	"fmt"

	"seehuhn.de/go/mdl/script"
)

// DefaultBasename is used for the frame files when a program does not
// name them.
const DefaultBasename = "a"

// Plan returns the base name and the number of frames of a program.
// If a program sets either value more than once, the last setting wins.
func Plan(ops []script.Op) (base string, frames int) {
	base, frames = DefaultBasename, 1
	for _, op := range ops {
		switch op := op.(type) {
		case script.Basename:
			base = op.Name
		case script.Frames:
			frames = op.N
		}
	}
	return base, frames
}

// Validate checks a program before any of its frames is rendered. It
// returns an error wrapping script.ErrConfiguration if
//   - the frame count is not positive,
//   - vary or path is used without a frames command,
//   - an animation span is empty or reaches outside the frames of the
//     program,
//   - a primitive names constants which are not in symbols,
//   - a knob shares its name with constants or a light, or
//   - move path refers to a path which has no sample in the first frame.
func Validate(ops []script.Op, symbols script.Symbols) error {
	_, n := Plan(ops)
	if n < 1 {
		return fmt.Errorf("%w: frame count %d", script.ErrConfiguration, n)
	}

	hasFrames := false
	for _, op := range ops {
		if _, ok := op.(script.Frames); ok {
			hasFrames = true
			break
		}
	}

	for _, op := range ops {
		var what string
		var start, end int
		switch op := op.(type) {
		case script.Vary:
			what, start, end = "vary "+op.Knob, op.Start, op.End
		case script.Path:
			what, start, end = "path "+op.Name, op.Start, op.End
		default:
			continue
		}
		if !hasFrames {
			return fmt.Errorf("%w: %s used without frames", script.ErrConfiguration, what)
		}
		if err := checkSpan(what, start, end, n); err != nil {
			return err
		}
	}
	return checkReferences(ops, symbols)
}

// checkReferences checks the names used by ops against the symbol table.
// The symbol table does not change during a run, so every frame would
// fail in the same way.
func checkReferences(ops []script.Op, symbols script.Symbols) error {
	// frame in which the sampling of each path starts
	first := make(map[string]int)
	for _, op := range ops {
		if p, ok := op.(script.Path); ok {
			if s, seen := first[p.Name]; !seen || p.Start < s {
				first[p.Name] = p.Start
			}
		}
	}

	for _, op := range ops {
		var constants, knob string
		switch op := op.(type) {
		case script.Box:
			constants = op.Constants
		case script.Sphere:
			constants = op.Constants
		case script.Torus:
			constants = op.Constants
		case script.Cylinder:
			constants = op.Constants
		case script.Cone:
			constants = op.Constants
		case script.Line:
			constants = op.Constants
		case script.Mesh:
			constants = op.Constants
		case script.Move:
			if op.Path != "" {
				s, ok := first[op.Path]
				if !ok {
					return fmt.Errorf("%w: unknown path %q", script.ErrConfiguration, op.Path)
				}
				if s > 0 {
					return fmt.Errorf("%w: path %q has no value before frame %d",
						script.ErrConfiguration, op.Path, s)
				}
			}
			knob = op.Knob
		case script.Scale:
			knob = op.Knob
		case script.Rotate:
			knob = op.Knob
		case script.Vary:
			knob = op.Knob
		case script.Set:
			knob = op.Knob
		}

		if constants != "" {
			if _, err := symbols.Constants(constants); err != nil {
				return err
			}
		}
		if knob != "" {
			if sym, ok := symbols[knob]; ok {
				if _, isKnob := sym.(script.Knob); !isKnob {
					return fmt.Errorf("%w: %q is used as a knob", script.ErrConfiguration, knob)
				}
			}
		}
	}
	return nil
}

func checkSpan(what string, start, end, n int) error {
	if end <= start {
		return fmt.Errorf("%w: %s: empty frame span [%d, %d)",
			script.ErrConfiguration, what, start, end)
	}
	if start < 0 || end > n {
		return fmt.Errorf("%w: %s: frame span [%d, %d) outside [0, %d)",
			script.ErrConfiguration, what, start, end, n)
	}
	return nil
}
