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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mdl/anim"
	"seehuhn.de/go/mdl/script"
)

// scope resolves knob values inside one frame. Lookups go through the
// values set by the frame itself, then the knob table, then the base
// values of the symbol table. The table and the symbols are shared
// between frames and never modified.
type scope struct {
	table   anim.Table
	index   int
	symbols script.Symbols

	set map[string]float64
	all *float64 // value of the last setknobs
}

func newScope(table anim.Table, index int, symbols script.Symbols) *scope {
	return &scope{
		table:   table,
		index:   index,
		symbols: symbols,
		set:     make(map[string]float64),
	}
}

// Knob returns the current value of the named knob.
func (s *scope) Knob(name string) float64 {
	if v, ok := s.set[name]; ok {
		return v
	}
	if s.all != nil {
		return *s.all
	}
	if v, ok := s.table.Scalar(s.index, name); ok {
		return v
	}
	return s.symbols.Knob(name)
}

// Set assigns a value to one knob for the rest of the frame.
func (s *scope) Set(name string, v float64) {
	s.set[name] = v
}

// SetAll assigns a value to every knob for the rest of the frame.
func (s *scope) SetAll(v float64) {
	clear(s.set)
	s.all = &v
}

// Point returns the current sample of the named path.
func (s *scope) Point(name string) (vec.Vec2, error) {
	p, ok := s.table.Point(s.index, name)
	if !ok {
		return vec.Vec2{}, fmt.Errorf("%w: path %q has no value in frame %d",
			script.ErrConfiguration, name, s.index)
	}
	return p, nil
}
