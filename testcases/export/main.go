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

// Command export writes the test case programs to testdata/scenes, one
// directory per case, together with a JSON index of the expected pixels.
// Run from the mdl module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mdl/testcases"
)

const outDir = "testdata/scenes"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := write(name, &tc); err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, toJSON(name, &tc))
		}
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

// write stores the program and its auxiliary files in their own
// directory.
func write(name string, tc *testcases.TestCase) error {
	dir := filepath.Join(outDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	err := os.WriteFile(filepath.Join(dir, "scene.mdl"), []byte(tc.Source), 0o644)
	if err != nil {
		return err
	}
	for _, file := range slices.Sorted(maps.Keys(tc.Files)) {
		err := os.WriteFile(filepath.Join(dir, file), []byte(tc.Files[file]), 0o644)
		if err != nil {
			return err
		}
	}
	return nil
}

type jsonTestCase struct {
	Name        string      `json:"name"`
	Program     string      `json:"program"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Supersample int         `json:"supersample,omitempty"`
	Frames      int         `json:"frames"`
	Pixels      []jsonPixel `json:"pixels"`
}

type jsonPixel struct {
	Frame int  `json:"frame"`
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Drawn bool `json:"drawn"`
}

func toJSON(name string, tc *testcases.TestCase) jsonTestCase {
	w, h := tc.Size()
	jtc := jsonTestCase{
		Name:        name,
		Program:     filepath.ToSlash(filepath.Join(name, "scene.mdl")),
		Width:       w,
		Height:      h,
		Supersample: tc.Supersample,
		Frames:      tc.Frames,
	}
	for _, p := range tc.Pixels {
		jtc.Pixels = append(jtc.Pixels, jsonPixel{Frame: p.Frame, X: p.X, Y: p.Y, Drawn: p.Drawn})
	}
	return jtc
}
