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
	"fmt"
	"slices"

	"seehuhn.de/go/mdl/light"
)

// White is the name of the builtin reflectance used by unlabelled
// primitives.
const White = ".white"

// Symbol is a named entry of the symbol table. The concrete types are
// Constants, Light and Knob.
type Symbol interface {
	isSymbol()
}

// Constants is a named set of reflectance coefficients.
type Constants struct {
	light.Constants
}

// Light is a named point light.
type Light struct {
	light.Source
}

// Knob is an animation parameter. Value is used in frames where no
// vary command assigns a value.
type Knob struct {
	Value float64
}

func (Constants) isSymbol() {}
func (Light) isSymbol()     {}
func (Knob) isSymbol()      {}

// Symbols maps names to symbols.
type Symbols map[string]Symbol

// NewSymbols returns a table holding only the builtin reflectance.
func NewSymbols() Symbols {
	return Symbols{White: Constants{light.White}}
}

// Constants returns the reflectance with the given name.
func (s Symbols) Constants(name string) (*light.Constants, error) {
	sym, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown constants %q", ErrConfiguration, name)
	}
	c, ok := sym.(Constants)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a set of constants", ErrConfiguration, name)
	}
	return &c.Constants, nil
}

// Knob returns the base value of the named knob. Unknown knobs have
// value 0.
func (s Symbols) Knob(name string) float64 {
	if k, ok := s[name].(Knob); ok {
		return k.Value
	}
	return 0
}

// Lights returns the point lights of the table, sorted by name.
func (s Symbols) Lights() []light.Source {
	var names []string
	for name, sym := range s {
		if _, ok := sym.(Light); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	res := make([]light.Source, len(names))
	for i, name := range names {
		res[i] = s[name].(Light).Source
	}
	return res
}
