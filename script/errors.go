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
	"fmt"
)

var (
	// ErrParse is returned for malformed program text.
	ErrParse = errors.New("parse error")

	// ErrConfiguration is returned for programs which parse but cannot
	// be rendered: inconsistent frame counts, empty or out of range
	// animation spans, and references to unknown symbols.
	ErrConfiguration = errors.New("invalid configuration")
)

// ParseError describes a malformed line of program text.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap returns ErrParse.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
